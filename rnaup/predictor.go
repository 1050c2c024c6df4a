package rnaup

// Stats carries debug-only cell-accounting counters filled in during
// Predict when non-nil. It has no bearing on the predicted result and
// exists purely to let callers (or tests) observe how effective the
// pruner was on a given input. The zero Stats is valid and simply stays
// at all zeros until attached to a Predictor.
type Stats struct {
	CellsAllocated int
	CellsPruned    int
	CellsFilled    int
}

// Reset zeroes all counters so a Stats value can be reused across
// successive Predict calls.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	*s = Stats{}
}

// Predictor is the facade over the allocate/fill/traceback pipeline. A
// Predictor borrows its collaborators read-only for the duration of
// Predict and holds no state between calls, so one value can be reused
// for any number of predictions, concurrently, as long as each
// collaborator is itself safe for concurrent read use.
type Predictor struct {
	// Sequence supplies lengths, ambiguity and complementarity.
	Sequence SequenceView
	// Acc1 and Acc2 supply per-sequence blocking, accessibility and
	// reporting-coordinate conversion.
	Acc1, Acc2 Accessibility
	// Energy is the thermodynamic oracle consulted by the filler.
	Energy InteractionEnergy
	// Output receives the one Interaction each Predict call produces.
	Output OutputHandler
	// Stats, if non-nil, is updated with cell-accounting counters
	// during Predict. Optional; nil disables accounting entirely.
	Stats *Stats
}

// Predict computes the MFE interaction between the sub-ranges r1 of
// sequence 1 and r2 of sequence 2 and hands it to p.Output exactly
// once. It is idempotent: calling it twice with the same arguments on
// the same Predictor produces identical results, since no state
// survives between calls.
func (p *Predictor) Predict(r1, r2 IndexRange) error {
	if !r1.ascending() || !r2.ascending() {
		return ErrInvalidRange
	}
	len1, len2 := p.Sequence.Len1(), p.Sequence.Len2()
	if len1 == 0 || len2 == 0 {
		return ErrNoSequence
	}

	end1 := r1.end(len1)
	end2 := r2.end(len2)
	if r1.From < 0 || end1 >= len1 || r1.From > end1 {
		return ErrInvalidRange
	}
	if r2.From < 0 || end2 >= len2 || r2.From > end2 {
		return ErrInvalidRange
	}

	off1, off2 := r1.From, r2.From
	n1 := minInt(len1, end1-off1+1)
	n2 := minInt(len2, end2-off2+1)

	if p.Stats != nil {
		p.Stats.Reset()
	}

	t := allocate(p, n1, n2, off1, off2)
	fillHybridE(p, t, n1, n2, off1, off2)
	best := fillTotalE(p, t, n1, n2, off1, off2)

	if best.energy >= 0 {
		return p.Output.Add(Interaction{Energy: 0})
	}

	bp0 := BasePair{First: best.i1 + off1, Second: p.Acc2.ReversedIndex(best.i2 + off2)}
	bp1 := BasePair{First: best.j1 + off1, Second: p.Acc2.ReversedIndex(best.j2 + off2)}
	pairs := traceback(p, t, off1, off2, bp0, bp1)

	return p.Output.Add(Interaction{Energy: best.energy, BasePairs: pairs})
}
