package rnaup

import "math"

// E is a free energy value in kcal/mol. Any finite E is a real energy;
// EInf means "infeasible, never compute".
type E = float64

// EInf is the sentinel energy for an infeasible or not-yet-computed
// interaction. Comparisons against EInf treat it as +Inf.
var EInf E = math.Inf(1)

// Pos is a 0-based position on a sequence.
type Pos = int

// LastPos means "the last valid index of the sequence" when used as the
// upper bound of an IndexRange.
const LastPos Pos = -1

// IndexRange is an ascending, inclusive range of sequence positions.
type IndexRange struct {
	From Pos
	To   Pos
}

// FullRange spans an entire sequence; pass it for both r1 and r2 to
// predict over the whole input.
var FullRange = IndexRange{From: 0, To: LastPos}

func (r IndexRange) ascending() bool {
	if r.To == LastPos {
		return true
	}
	return r.From <= r.To
}

// end resolves LastPos against the sequence length and returns the
// inclusive upper bound of the range.
func (r IndexRange) end(seqLen int) Pos {
	if r.To == LastPos {
		return seqLen - 1
	}
	return r.To
}

// BasePair is an intermolecular base pair reported in original sequence
// coordinates: First indexes sequence 1, Second indexes sequence 2.
type BasePair struct {
	First  Pos
	Second Pos
}

// Interaction is the reported result of a prediction: a total free
// energy and the ascending-by-First base pairs that realize it. An
// Interaction with Energy == 0 and no base pairs means "no interaction
// beats not interacting".
type Interaction struct {
	Energy    E
	BasePairs []BasePair
}
