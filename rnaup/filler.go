package rnaup

// fillHybridE is filler pass 1: it sweeps window sizes in ascending
// order and fills every slot the allocator did not already prune with
// the minimum pure-hybridization energy over all interior-loop
// decompositions, using only already-filled smaller slots.
func fillHybridE(p *Predictor, t *tensor, n1, n2, off1, off2 int) {
	maxW1 := minInt(p.Acc1.Lmax(), n1)
	maxW2 := minInt(p.Acc2.Lmax(), n2)
	maxLoop1, maxLoop2 := p.Energy.MaxInternalLoopSize1(), p.Energy.MaxInternalLoopSize2()

	for w1 := 0; w1 < maxW1; w1++ {
		for w2 := 0; w2 < maxW2; w2++ {
			for i1 := 0; i1+w1 < n1; i1++ {
				for i2 := 0; i2+w2 < n2; i2++ {
					g1 := t.gridAt(i1, i2)
					if g1 == nil || w1 >= g1.w1max || w2 >= g1.w2max {
						continue
					}
					j1, j2 := i1+w1, i2+w2
					g2 := t.gridAt(j1, j2)
					if g2 == nil {
						g1.setInf(w1, w2)
						continue
					}
					if g1.isPruned(w1, w2) {
						continue
					}

					base := p.Energy.InteriorLoopEnergy(i1+off1, j1+off1, i2+off2, j2+off2) +
						p.Energy.InteriorLoopEnergy(j1+off1, j1+off1, j2+off2, j2+off2)

					if w1 > 1 && w2 > 1 {
						k1Max := minInt(j1-1, i1+maxLoop1+1)
						k2Max := minInt(j2-1, i2+maxLoop2+1)
						for k1 := i1 + 1; k1 <= k1Max; k1++ {
							for k2 := i2 + 1; k2 <= k2Max; k2++ {
								gk := t.gridAt(k1, k2)
								if gk == nil {
									continue
								}
								sub := gk.Energy(j1-k1, j2-k2)
								if sub >= EInf {
									continue
								}
								candidate := p.Energy.InteriorLoopEnergy(i1+off1, k1+off1, i2+off2, k2+off2) + sub
								if candidate < base {
									base = candidate
								}
							}
						}
					}

					if base >= EInf {
						g1.setInf(w1, w2)
					} else {
						g1.set(w1, w2, base)
					}
					if p.Stats != nil {
						p.Stats.CellsFilled++
					}
				}
			}
		}
	}
}

// mfeCandidate is the running optimum tracked during pass 2.
type mfeCandidate struct {
	energy         E
	i1, j1, i2, j2 int
	found          bool
}

// fillTotalE is filler pass 2: it walks the same order as pass 1, adds
// dangling-end and accessibility corrections to every finite
// hybridization energy, and keeps the first-seen strictly-smallest
// total as the global optimum.
func fillTotalE(p *Predictor, t *tensor, n1, n2, off1, off2 int) mfeCandidate {
	maxW1 := minInt(p.Acc1.Lmax(), n1)
	maxW2 := minInt(p.Acc2.Lmax(), n2)
	best := mfeCandidate{energy: 0}

	for w1 := 0; w1 < maxW1; w1++ {
		for w2 := 0; w2 < maxW2; w2++ {
			for i1 := 0; i1+w1 < n1; i1++ {
				for i2 := 0; i2+w2 < n2; i2++ {
					g1 := t.gridAt(i1, i2)
					if g1 == nil || w1 >= g1.w1max || w2 >= g1.w2max {
						continue
					}
					hyb := g1.Energy(w1, w2)
					if hyb >= EInf {
						continue
					}
					j1, j2 := i1+w1, i2+w2
					total := hyb +
						p.Energy.DanglingLeft(i1+off1, i2+off2) +
						p.Energy.DanglingRight(j1+off1, j2+off2) +
						p.Acc1.ED(i1+off1, j1+off1) +
						p.Acc2.ED(i2+off2, j2+off2)
					if total < best.energy {
						best = mfeCandidate{energy: total, i1: i1, j1: j1, i2: i2, j2: j2, found: true}
					}
				}
			}
		}
	}
	return best
}
