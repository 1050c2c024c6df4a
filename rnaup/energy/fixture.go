// Package energy provides InteractionEnergy implementations for the
// rnaup predictor: a constant-energy Fixture for deterministic tests
// and a NearestNeighbour oracle backed by Turner-style parameter
// tables.
package energy

import "github.com/TimothyStiles/rnaup/rnaup"

// Fixture is a constant-energy test double. It reproduces the toy
// thermodynamics used to hand-verify the allocator, filler and
// traceback against small sequences: adjacent base pairs stack at
// Stacking, pairs separated by a single-nucleotide bulge on both
// strands cost TwoGapLoop, and every base pair's own closing
// contribution is Closing. Gaps it has no opinion on cost zero;
// asymmetric gaps (a different number of unpaired positions on each
// strand) are treated as infeasible.
type Fixture struct {
	// Stacking is interLoopE for two immediately adjacent base pairs
	// (no unpaired positions on either strand).
	Stacking rnaup.E
	// TwoGapLoop is interLoopE for a symmetric 1x1 internal loop (one
	// unpaired position on each strand).
	TwoGapLoop rnaup.E
	// Closing is the degenerate interLoopE(x,x,y,y) closing-pair
	// contribution.
	Closing rnaup.E
	// MaxLoop1 and MaxLoop2 bound the interior-loop gap the allocator
	// and filler will ever try on each strand.
	MaxLoop1, MaxLoop2 int
}

// DefaultFixture matches the toy thermodynamics used throughout this
// package's tests: stacking -1, a 1x1 loop -0.5, a lone pair -0.5, and
// a bound of 2 unpaired positions per strand.
var DefaultFixture = Fixture{
	Stacking:   -1,
	TwoGapLoop: -0.5,
	Closing:    -0.5,
	MaxLoop1:   2,
	MaxLoop2:   2,
}

func (f Fixture) InteriorLoopEnergy(i1, k1, i2, k2 rnaup.Pos) rnaup.E {
	if i1 == k1 && i2 == k2 {
		return f.Closing
	}
	g1, g2 := k1-i1-1, k2-i2-1
	if g1 < 0 || g2 < 0 {
		return rnaup.EInf
	}
	if g1 != g2 {
		return rnaup.EInf
	}
	switch g1 {
	case 0:
		return f.Stacking
	case 1:
		return f.TwoGapLoop
	default:
		return 0
	}
}

func (f Fixture) DanglingLeft(i1, i2 rnaup.Pos) rnaup.E  { return 0 }
func (f Fixture) DanglingRight(j1, j2 rnaup.Pos) rnaup.E { return 0 }

func (f Fixture) BestStackingEnergy() rnaup.E { return f.Stacking }
func (f Fixture) BestInitEnergy() rnaup.E     { return f.Closing }
func (f Fixture) BestDangleEnergy() rnaup.E   { return 0 }

func (f Fixture) MaxInternalLoopSize1() int { return f.MaxLoop1 }
func (f Fixture) MaxInternalLoopSize2() int { return f.MaxLoop2 }
