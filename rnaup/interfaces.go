package rnaup

// SequenceView is the minimal read-only surface the DP engine needs from
// a sequence pair: lengths and the complementarity predicate used to
// decide which (i1, i2) starts can form a left-end base pair.
type SequenceView interface {
	// Len1 and Len2 return the lengths of sequence 1 and sequence 2.
	Len1() int
	Len2() int
	// Ambiguous1/2 report whether position i holds an ambiguity code
	// (N and similar) that can never participate in a base pair.
	Ambiguous1(i Pos) bool
	Ambiguous2(i Pos) bool
	// Complementary reports whether position i on sequence 1 and
	// position j on sequence 2 can form a Watson-Crick or wobble pair.
	Complementary(i, j Pos) bool
}

// Accessibility is the per-sequence accessibility view: which positions
// are blocked from pairing, the unpairing (ED) penalty for a window, and
// the maximum window length the oracle is willing to price.
type Accessibility interface {
	// Blocked reports whether position i is forced single-stranded by an
	// external constraint and so can never anchor a base pair.
	Blocked(i Pos) bool
	// ED returns the free-energy penalty of making the closed window
	// [i..j] (inclusive) unpaired. Returns EInf if the window cannot be
	// made accessible at all.
	ED(i, j Pos) E
	// Lmax bounds the window length this sequence contributes to an
	// interaction.
	Lmax() int
	// ReversedIndex maps an internal index to the canonical reporting
	// coordinate. Sequence 1 implementations return i unchanged;
	// sequence 2 implementations reverse it, since sequence 2 is stored
	// 3'->5' internally (see rnaup/accessibility.Reversed).
	ReversedIndex(k Pos) Pos
}

// InteractionEnergy is the thermodynamic oracle the DP engine consults.
// All positions are 0-based; sequence-1 positions are in original
// orientation, sequence-2 positions are internal indices (sequence 2
// stored 3'->5', see Accessibility.ReversedIndex).
type InteractionEnergy interface {
	// InteriorLoopEnergy is the free energy of an interior loop whose
	// flanking pairs are (i1,i2) and (k1,k2). Arguments are given
	// (i1,k1,i2,k2), matching the loop's two strands interleaved. The
	// degenerate call InteriorLoopEnergy(j1,j1,j2,j2) yields the
	// closing-pair contribution alone.
	InteriorLoopEnergy(i1, k1, i2, k2 Pos) E
	// DanglingLeft returns the 5' dangling-end contribution for the
	// pair closing the interaction at (i1, i2).
	DanglingLeft(i1, i2 Pos) E
	// DanglingRight returns the 3' dangling-end contribution for the
	// pair closing the interaction at (j1, j2).
	DanglingRight(j1, j2 Pos) E
	// BestStackingEnergy, BestInitEnergy and BestDangleEnergy are lower
	// bounds (each <= 0) used only by the allocator's dominance prune.
	BestStackingEnergy() E
	BestInitEnergy() E
	BestDangleEnergy() E
	// MaxInternalLoopSize1/2 bound how many unpaired positions, on each
	// strand respectively, may separate two consecutive interior base
	// pairs before the loop is geometrically infeasible.
	MaxInternalLoopSize1() int
	MaxInternalLoopSize2() int
}

// OutputHandler receives completed predictions. Predict calls Add
// exactly once per call, even for a "no interaction" result.
type OutputHandler interface {
	Add(Interaction) error
}
