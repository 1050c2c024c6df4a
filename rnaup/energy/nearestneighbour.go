package energy

import (
	energyparams "github.com/TimothyStiles/rnaup/energy_params"
	"github.com/TimothyStiles/rnaup/rnaup"
)

// NucleotideSequence exposes the raw bases a NearestNeighbour oracle
// needs to look up stacking and loop parameters. i1/k1 index sequence 1,
// i2/k2 index sequence 2, both 0-based and in internal (already
// strand-2-reversed) orientation, matching the positions the rnaup
// engine passes to InteriorLoopEnergy.
type NucleotideSequence interface {
	Base1(i rnaup.Pos) byte
	Base2(i rnaup.Pos) byte
	Len1() int
	Len2() int
}

// NearestNeighbour is an InteractionEnergy oracle backed by a scaled
// Turner-style parameter table from the energy_params package. It
// approximates RNA-RNA duplex energies with the same stacking and
// generic-loop tables ViennaRNA uses for intramolecular structure:
// adjacent base pairs score by nearest-neighbour stacking, and any
// other interior loop gap scores by total loop size alone (mismatch
// corrections, which need the identity of the unpaired flanking bases,
// are not applied - see DESIGN.md for why that's an acceptable
// approximation here).
type NearestNeighbour struct {
	Sequence NucleotideSequence
	Params   *energyparams.EnergyParams
	MaxLoop1 int
	MaxLoop2 int
}

// NewNearestNeighbour builds a NearestNeighbour oracle from a named
// parameter set at the given temperature, as parsed by energy_params.
func NewNearestNeighbour(seq NucleotideSequence, set energyparams.EnergyParamsSet, temperatureCelsius float64, maxLoop1, maxLoop2 int) *NearestNeighbour {
	return &NearestNeighbour{
		Sequence: seq,
		Params:   energyparams.NewEnergyParams(set, temperatureCelsius),
		MaxLoop1: maxLoop1,
		MaxLoop2: maxLoop2,
	}
}

// centiKcalToE converts an energy_params int value, expressed in
// hundredths of a kcal/mol, to a float64 kcal/mol value.
func centiKcalToE(v int) rnaup.E {
	return rnaup.E(v) / 100.0
}

func (n *NearestNeighbour) basePairType(five, three byte) energyparams.BasePairType {
	return energyparams.EncodeBasePair(five, three)
}

// InteriorLoopEnergy prices the loop closed by (i1,i2) and (k1,k2). The
// degenerate call (i1==k1 && i2==k2) is the closing-pair contribution,
// which the Turner tables fold into stacking and loop terms rather than
// pricing separately, so it returns 0 here.
func (n *NearestNeighbour) InteriorLoopEnergy(i1, k1, i2, k2 rnaup.Pos) rnaup.E {
	if i1 == k1 && i2 == k2 {
		return 0
	}
	g1, g2 := k1-i1-1, k2-i2-1
	if g1 < 0 || g2 < 0 {
		return rnaup.EInf
	}
	if g1 > n.MaxLoop1 || g2 > n.MaxLoop2 {
		return rnaup.EInf
	}

	closingType := n.basePairType(n.Sequence.Base1(i1), n.Sequence.Base2(i2))
	if closingType == energyparams.NoPair {
		return rnaup.EInf
	}

	if g1 == 0 && g2 == 0 {
		innerType := n.basePairType(n.Sequence.Base1(k1), n.Sequence.Base2(k2))
		if innerType == energyparams.NoPair {
			return rnaup.EInf
		}
		return centiKcalToE(n.Params.StackingPair[closingType][innerType])
	}

	size := g1 + g2
	if size >= len(n.Params.InteriorLoop) {
		size = len(n.Params.InteriorLoop) - 1
	}
	return centiKcalToE(n.Params.InteriorLoop[size])
}

// DanglingLeft returns the 5' dangling-end contribution for the base
// pair closing the interaction at (i1,i2), using the base immediately
// upstream on strand 1 as the dangling nucleotide.
func (n *NearestNeighbour) DanglingLeft(i1, i2 rnaup.Pos) rnaup.E {
	pt := n.basePairType(n.Sequence.Base1(i1), n.Sequence.Base2(i2))
	if pt == energyparams.NoPair || i1 == 0 {
		return 0
	}
	return centiKcalToE(n.Params.DanglingEndsFivePrime[pt][nucleotideCode(n.Sequence.Base1(i1-1))])
}

// DanglingRight returns the 3' dangling-end contribution for the base
// pair closing the interaction at (j1,j2).
func (n *NearestNeighbour) DanglingRight(j1, j2 rnaup.Pos) rnaup.E {
	pt := n.basePairType(n.Sequence.Base1(j1), n.Sequence.Base2(j2))
	if pt == energyparams.NoPair || j2+1 >= n.Sequence.Len2() {
		return 0
	}
	return centiKcalToE(n.Params.DanglingEndsThreePrime[pt][nucleotideCode(n.Sequence.Base2(j2+1))])
}

func (n *NearestNeighbour) BestStackingEnergy() rnaup.E {
	best := 0
	for _, row := range n.Params.StackingPair {
		for _, v := range row {
			if v < best {
				best = v
			}
		}
	}
	return centiKcalToE(best)
}

func (n *NearestNeighbour) BestInitEnergy() rnaup.E   { return 0 }
func (n *NearestNeighbour) BestDangleEnergy() rnaup.E { return 0 }

func (n *NearestNeighbour) MaxInternalLoopSize1() int { return n.MaxLoop1 }
func (n *NearestNeighbour) MaxInternalLoopSize2() int { return n.MaxLoop2 }

// nucleotideCode maps a base to the 1-based index used by the dangling
// end tables (A=1,C=2,G=3,U=4), 0 ("N") for anything else.
func nucleotideCode(b byte) int {
	switch b {
	case 'A':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	case 'U':
		return 4
	default:
		return 0
	}
}
