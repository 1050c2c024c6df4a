package rnaup

// allocate builds the sparse tensor for one predict call: it decides
// which (i1,i2) starts can anchor a left-end base pair, sizes each
// allocated inner grid, and pre-marks the geometrically and
// energetically infeasible (w1,w2) slots as EInf before any fill
// arithmetic runs.
func allocate(p *Predictor, n1, n2, off1, off2 int) *tensor {
	t := newTensor(n1, n2)
	lmax1, lmax2 := p.Acc1.Lmax(), p.Acc2.Lmax()
	maxLoop1, maxLoop2 := p.Energy.MaxInternalLoopSize1(), p.Energy.MaxInternalLoopSize2()
	bestInit, bestDangle := p.Energy.BestInitEnergy(), p.Energy.BestDangleEnergy()

	for i1 := 0; i1 < n1; i1++ {
		for i2 := 0; i2 < n2; i2++ {
			a1, a2 := i1+off1, i2+off2
			blocked := p.Sequence.Ambiguous1(a1) || p.Acc1.Blocked(a1) ||
				p.Sequence.Ambiguous2(a2) || p.Acc2.Blocked(a2)
			if blocked || !p.Sequence.Complementary(a1, a2) {
				continue
			}
			w1max := minInt(lmax1, n1-i1)
			w2max := minInt(lmax2, n2-i2)
			if w1max <= 0 || w2max <= 0 {
				continue
			}
			g := newGrid(w1max, w2max)
			t.setGrid(i1, i2, g)
			pruneGrid(p, g, i1, i2, off1, off2, maxLoop1, maxLoop2, bestInit, bestDangle)
			if p.Stats != nil {
				p.Stats.CellsAllocated++
			}
		}
	}
	return t
}

// pruneGrid marks the geometry- and dominance-infeasible (w1,w2) slots
// of one inner grid as EInf, walking sizes in descending order so the
// dominance prune's "all strictly larger slots are EInf" precondition
// can be tested against already-decided slots.
func pruneGrid(p *Predictor, g *grid, i1, i2, off1, off2, maxLoop1, maxLoop2 int, bestInit, bestDangle E) {
	w1max, w2max := g.w1max, g.w2max
	// suffixInf[w1][w2] says every slot in the quadrant w1'>=w1, w2'>=w2
	// (inclusive) is pruned. Border (one past either max) is vacuously
	// true, matching the empty-quadrant case.
	suffixInf := make([][]bool, w1max+1)
	for i := range suffixInf {
		suffixInf[i] = make([]bool, w2max+1)
	}
	for w1 := w1max - 1; w1 >= 0; w1-- {
		suffixInf[w1][w2max] = true
	}
	for w2 := w2max - 1; w2 >= 0; w2-- {
		suffixInf[w1max][w2] = true
	}

	for w1 := w1max - 1; w1 >= 0; w1-- {
		for w2 := w2max - 1; w2 >= 0; w2-- {
			prune := false
			if 1+w1*(maxLoop1+1) < w2 || 1+w2*(maxLoop2+1) < w1 {
				prune = true
			} else {
				allLargerInf := suffixInf[w1+1][w2] && suffixInf[w1][w2+1]
				if allLargerInf {
					edCost := p.Acc1.ED(i1+off1, i1+w1+off1) + p.Acc2.ED(i2+off2, i2+w2+off2)
					threshold := -(E(minInt(w1, w2))*p.Energy.BestStackingEnergy() + bestInit + bestDangle)
					if edCost > threshold {
						prune = true
					}
				}
			}
			if prune {
				g.setInf(w1, w2)
				if p.Stats != nil {
					p.Stats.CellsPruned++
				}
			}
			suffixInf[w1][w2] = prune && suffixInf[w1+1][w2] && suffixInf[w1][w2+1]
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
