// Package accessibility provides rnaup.Accessibility implementations:
// an unconstrained view for sequences with no structural context, a
// precomputed-table view for callers that already have ED values (for
// example from an RNAplfold-style partition function run), and a
// Reversed wrapper that adapts either one to sequence 2's
// reversed-internal-index convention.
package accessibility

import "github.com/TimothyStiles/rnaup/rnaup"

// Unconstrained is an rnaup.Accessibility with no unpairing cost and no
// blocked positions: every window is free to become single-stranded.
// It is the right choice when the caller has no structural probability
// model, or for tests that want to isolate hybridization energy from
// accessibility corrections.
type Unconstrained struct {
	Length   int
	MaxWidth int
}

func (u Unconstrained) Blocked(i rnaup.Pos) bool            { return false }
func (u Unconstrained) ED(i, j rnaup.Pos) rnaup.E           { return 0 }
func (u Unconstrained) Lmax() int                           { return u.MaxWidth }
func (u Unconstrained) ReversedIndex(k rnaup.Pos) rnaup.Pos { return k }

// Table is an rnaup.Accessibility backed by precomputed unpairing
// penalties, one entry per (i,j) window keyed by its start and end
// position. Windows not present in EDValues cost 0, as in
// Unconstrained.
type Table struct {
	Length     int
	MaxWidth   int
	BlockedSet map[rnaup.Pos]bool
	EDValues   map[[2]rnaup.Pos]rnaup.E
}

// NewTable returns an empty Table for a sequence of the given length
// and maximum interaction window.
func NewTable(length, maxWidth int) *Table {
	return &Table{
		Length:     length,
		MaxWidth:   maxWidth,
		BlockedSet: make(map[rnaup.Pos]bool),
		EDValues:   make(map[[2]rnaup.Pos]rnaup.E),
	}
}

// Block marks position i as unable to anchor a base pair.
func (t *Table) Block(i rnaup.Pos) { t.BlockedSet[i] = true }

// Set records the unpairing penalty for the closed window [i..j].
func (t *Table) Set(i, j rnaup.Pos, ed rnaup.E) { t.EDValues[[2]rnaup.Pos{i, j}] = ed }

func (t *Table) Blocked(i rnaup.Pos) bool { return t.BlockedSet[i] }

func (t *Table) ED(i, j rnaup.Pos) rnaup.E {
	if ed, ok := t.EDValues[[2]rnaup.Pos{i, j}]; ok {
		return ed
	}
	return 0
}

func (t *Table) Lmax() int { return t.MaxWidth }

func (t *Table) ReversedIndex(k rnaup.Pos) rnaup.Pos { return k }

// Reversed adapts an Accessibility built against forward-oriented
// positions to sequence 2's storage convention: sequence 2 is indexed
// internally 3'->5' so that increasing internal indices move the same
// direction as increasing sequence-1 indices across a duplex. Blocked
// and ED are translated from internal to original coordinates before
// being delegated; ReversedIndex maps an internal index back to the
// original transcript coordinate reported to callers.
type Reversed struct {
	Inner  rnaup.Accessibility
	Length int
}

func (r Reversed) original(i rnaup.Pos) rnaup.Pos { return r.Length - 1 - i }

func (r Reversed) Blocked(i rnaup.Pos) bool { return r.Inner.Blocked(r.original(i)) }

func (r Reversed) ED(i, j rnaup.Pos) rnaup.E {
	// the window [i..j] in internal coordinates covers [original(j)..original(i)]
	// in original orientation, since reversal flips endpoint order.
	return r.Inner.ED(r.original(j), r.original(i))
}

func (r Reversed) Lmax() int { return r.Inner.Lmax() }

func (r Reversed) ReversedIndex(k rnaup.Pos) rnaup.Pos { return r.original(k) }
