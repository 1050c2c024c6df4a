package rnaup

import "testing"

type stubSeq struct {
	s1, s2 []byte
}

func (s stubSeq) Len1() int                     { return len(s.s1) }
func (s stubSeq) Len2() int                     { return len(s.s2) }
func (s stubSeq) Ambiguous1(i Pos) bool         { return s.s1[i] == 'N' }
func (s stubSeq) Ambiguous2(i Pos) bool         { return s.s2[i] == 'N' }
func (s stubSeq) Complementary(i, j Pos) bool {
	pairs := map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}
	return pairs[s.s1[i]] == s.s2[j]
}

type stubAcc struct {
	length, lmax int
	blocked      map[Pos]bool
}

func (a stubAcc) Blocked(i Pos) bool       { return a.blocked[i] }
func (a stubAcc) ED(i, j Pos) E            { return 0 }
func (a stubAcc) Lmax() int                { return a.lmax }
func (a stubAcc) ReversedIndex(k Pos) Pos  { return k }

type stubEnergy struct{}

func (stubEnergy) InteriorLoopEnergy(i1, k1, i2, k2 Pos) E {
	if i1 == k1 && i2 == k2 {
		return -0.5
	}
	if k1-i1 == 1 && k2-i2 == 1 {
		return -1
	}
	return 0
}
func (stubEnergy) DanglingLeft(i1, i2 Pos) E  { return 0 }
func (stubEnergy) DanglingRight(j1, j2 Pos) E { return 0 }
func (stubEnergy) BestStackingEnergy() E      { return -1 }
func (stubEnergy) BestInitEnergy() E          { return -0.5 }
func (stubEnergy) BestDangleEnergy() E        { return 0 }
func (stubEnergy) MaxInternalLoopSize1() int  { return 2 }
func (stubEnergy) MaxInternalLoopSize2() int  { return 2 }

func testPredictor() *Predictor {
	return &Predictor{
		Sequence: stubSeq{s1: []byte("ACGU"), s2: []byte("ACGU")},
		Acc1:     stubAcc{length: 4, lmax: 10},
		Acc2:     stubAcc{length: 4, lmax: 10},
		Energy:   stubEnergy{},
	}
}

// P1: every allocated inner grid has dimensions min(Lmax,N-i) on each
// side.
func TestAllocateGridDimensions(t *testing.T) {
	p := testPredictor()
	tensor := allocate(p, 4, 4, 0, 0)
	for i1 := 0; i1 < 4; i1++ {
		for i2 := 0; i2 < 4; i2++ {
			g := tensor.gridAt(i1, i2)
			if g == nil {
				continue
			}
			wantW1 := minInt(p.Acc1.Lmax(), 4-i1)
			wantW2 := minInt(p.Acc2.Lmax(), 4-i2)
			if g.w1max != wantW1 || g.w2max != wantW2 {
				t.Errorf("grid(%d,%d) = %dx%d, want %dx%d", i1, i2, g.w1max, g.w2max, wantW1, wantW2)
			}
		}
	}
}

// P2: H[i1][i2] is NULL iff the positions are blocked/ambiguous or not
// complementary.
func TestAllocateNullIffNotComplementary(t *testing.T) {
	p := testPredictor()
	tensor := allocate(p, 4, 4, 0, 0)
	for i1 := 0; i1 < 4; i1++ {
		for i2 := 0; i2 < 4; i2++ {
			g := tensor.gridAt(i1, i2)
			wantNonNil := p.Sequence.Complementary(i1, i2)
			if (g != nil) != wantNonNil {
				t.Errorf("gridAt(%d,%d) non-nil = %v, want %v", i1, i2, g != nil, wantNonNil)
			}
		}
	}
}

// P10: no grid ever exposes a width beyond Lmax.
func TestAllocateRespectsLmax(t *testing.T) {
	p := &Predictor{
		Sequence: stubSeq{s1: []byte("AAAAAA"), s2: []byte("UUUUUU")},
		Acc1:     stubAcc{length: 6, lmax: 2},
		Acc2:     stubAcc{length: 6, lmax: 2},
		Energy:   stubEnergy{},
	}
	tensor := allocate(p, 6, 6, 0, 0)
	for i1 := 0; i1 < 6; i1++ {
		for i2 := 0; i2 < 6; i2++ {
			g := tensor.gridAt(i1, i2)
			if g == nil {
				continue
			}
			if g.w1max > 2 || g.w2max > 2 {
				t.Errorf("gridAt(%d,%d) exceeds Lmax: %dx%d", i1, i2, g.w1max, g.w2max)
			}
		}
	}
}

// Blocking a start position must null its grid even when the
// nucleotides would otherwise be complementary.
func TestAllocateBlockedPositionIsNull(t *testing.T) {
	p := testPredictor()
	p.Acc1 = stubAcc{length: 4, lmax: 10, blocked: map[Pos]bool{1: true}}
	tensor := allocate(p, 4, 4, 0, 0)
	if tensor.gridAt(1, 2) != nil {
		t.Fatalf("expected blocked start (1,2) to be unallocated")
	}
}
