package rnaup

// traceback reconstructs the full base-pair chain of the optimal
// interaction from the two boundary pairs pass 2 found, re-deriving
// each interior split by recomputing the same sums the filler computed
// and matching them bit-for-bit.
func traceback(p *Predictor, t *tensor, off1, off2 int, bp0, bp1 BasePair) []BasePair {
	if bp0.First == bp1.First {
		return []BasePair{bp0}
	}

	i1 := bp0.First - off1
	j1 := bp1.First - off1
	i2 := p.Acc2.ReversedIndex(bp0.Second) - off2
	j2 := p.Acc2.ReversedIndex(bp1.Second) - off2

	maxLoop1, maxLoop2 := p.Energy.MaxInternalLoopSize1(), p.Energy.MaxInternalLoopSize2()
	pairs := []BasePair{bp0}

	for {
		curE := t.Energy(i1, i2, j1-i1, j2-i2)
		closeOnly := p.Energy.InteriorLoopEnergy(i1+off1, j1+off1, i2+off2, j2+off2) +
			p.Energy.InteriorLoopEnergy(j1+off1, j1+off1, j2+off2, j2+off2)
		if curE == closeOnly {
			break
		}

		found := false
		k1Max := minInt(j1-1, i1+maxLoop1+1)
		k2Max := minInt(j2-1, i2+maxLoop2+1)
	searchSplit:
		for k1 := i1 + 1; k1 <= k1Max; k1++ {
			for k2 := i2 + 1; k2 <= k2Max; k2++ {
				gk := t.gridAt(k1, k2)
				if gk == nil {
					continue
				}
				candidate := p.Energy.InteriorLoopEnergy(i1+off1, k1+off1, i2+off2, k2+off2) +
					gk.Energy(j1-k1, j2-k2)
				if candidate == curE {
					pairs = append(pairs, BasePair{First: k1 + off1, Second: p.Acc2.ReversedIndex(k2 + off2)})
					i1, i2 = k1, k2
					found = true
					break searchSplit
				}
			}
		}
		if !found {
			panic("rnaup: internal: traceback could not find a matching split")
		}
	}

	pairs = append(pairs, bp1)
	return pairs
}
