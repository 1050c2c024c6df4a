package rnaup

// slotState records what, if anything, is known about one (w1, w2) cell
// of a window's energy grid. It exists so the allocator and filler can
// distinguish "never visited" from "visited and pruned" from "holds a
// real energy"; it is kept in a state slice parallel to the energies.
type slotState uint8

const (
	// slotUnset means the filler has not written this cell yet.
	slotUnset slotState = iota
	// slotPrunedInf means the cell was explicitly ruled out by the
	// geometry or accessibility-dominance prune, or pass 1 found the
	// right boundary non-complementary.
	slotPrunedInf
	// slotFinite means the cell holds a real, fill-computed energy.
	slotFinite
)

// grid is the inner w1max x w2max matrix rooted at one (i1, i2) start
// position. w1 and w2 are 0-based: w1==0 means the window is a single
// base pair (the diagonal stub).
type grid struct {
	w1max, w2max int
	energy       []E
	state        []slotState
}

func newGrid(w1max, w2max int) *grid {
	n := w1max * w2max
	return &grid{
		w1max:  w1max,
		w2max:  w2max,
		energy: make([]E, n),
		state:  make([]slotState, n),
	}
}

func (g *grid) index(w1, w2 int) int {
	return w1*g.w2max + w2
}

func (g *grid) inBounds(w1, w2 int) bool {
	return w1 >= 0 && w1 < g.w1max && w2 >= 0 && w2 < g.w2max
}

// Energy returns the stored energy at (w1, w2), collapsing the unset and
// pruned states to EInf so callers never need to inspect state directly.
func (g *grid) Energy(w1, w2 int) E {
	if g == nil || !g.inBounds(w1, w2) {
		return EInf
	}
	idx := g.index(w1, w2)
	if g.state[idx] != slotFinite {
		return EInf
	}
	return g.energy[idx]
}

func (g *grid) set(w1, w2 int, e E) {
	idx := g.index(w1, w2)
	g.energy[idx] = e
	g.state[idx] = slotFinite
}

func (g *grid) setInf(w1, w2 int) {
	g.state[g.index(w1, w2)] = slotPrunedInf
}

func (g *grid) isPruned(w1, w2 int) bool {
	if !g.inBounds(w1, w2) {
		return true
	}
	return g.state[g.index(w1, w2)] == slotPrunedInf
}

func (g *grid) isUnset(w1, w2 int) bool {
	if !g.inBounds(w1, w2) {
		return true
	}
	return g.state[g.index(w1, w2)] == slotUnset
}

// tensor is the sparse 4D hybridization matrix H: one *grid per (i1, i2)
// start position, or nil where the allocator decided that start cannot
// form a left-end base pair.
type tensor struct {
	n1, n2 int
	grids  []*grid // n1*n2, row-major over i1 then i2
}

func newTensor(n1, n2 int) *tensor {
	return &tensor{
		n1:    n1,
		n2:    n2,
		grids: make([]*grid, n1*n2),
	}
}

func (t *tensor) rootIndex(i1, i2 int) int {
	return i1*t.n2 + i2
}

func (t *tensor) gridAt(i1, i2 int) *grid {
	if i1 < 0 || i1 >= t.n1 || i2 < 0 || i2 >= t.n2 {
		return nil
	}
	return t.grids[t.rootIndex(i1, i2)]
}

func (t *tensor) setGrid(i1, i2 int, g *grid) {
	t.grids[t.rootIndex(i1, i2)] = g
}

// Energy returns H[i1][i2][w1][w2], or EInf if that root has no grid or
// the slot was pruned or never filled.
func (t *tensor) Energy(i1, i2, w1, w2 int) E {
	return t.gridAt(i1, i2).Energy(w1, w2)
}
