package rnaup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TimothyStiles/rnaup/rnaup"
	"github.com/TimothyStiles/rnaup/rnaup/accessibility"
	"github.com/TimothyStiles/rnaup/rnaup/energy"
	"github.com/TimothyStiles/rnaup/rnaup/output"
)

// seqView is a minimal rnaup.SequenceView over two already-oriented
// byte slices. seq2 is expected to already be reversed (3'->5'
// internal order), matching what the predictor requires.
type seqView struct {
	seq1, seq2 []byte
}

func (s seqView) Len1() int { return len(s.seq1) }
func (s seqView) Len2() int { return len(s.seq2) }

func (s seqView) Ambiguous1(i rnaup.Pos) bool { return !isACGU(s.seq1[i]) }
func (s seqView) Ambiguous2(i rnaup.Pos) bool { return !isACGU(s.seq2[i]) }

func (s seqView) Complementary(i, j rnaup.Pos) bool {
	return complementary(s.seq1[i], s.seq2[j])
}

func isACGU(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'U':
		return true
	}
	return false
}

func complementary(a, b byte) bool {
	switch {
	case a == 'A' && b == 'U', a == 'U' && b == 'A':
		return true
	case a == 'C' && b == 'G', a == 'G' && b == 'C':
		return true
	case a == 'G' && b == 'U', a == 'U' && b == 'G':
		return true
	}
	return false
}

func reversed(s string) []byte {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func newPredictor(s1, s2 string, fx energy.Fixture) (*rnaup.Predictor, *output.Collector) {
	seq := seqView{seq1: []byte(s1), seq2: reversed(s2)}
	collector := &output.Collector{}
	acc1 := accessibility.Unconstrained{Length: len(s1), MaxWidth: 10}
	acc2 := accessibility.Reversed{
		Inner:  accessibility.Unconstrained{Length: len(s2), MaxWidth: 10},
		Length: len(s2),
	}
	return &rnaup.Predictor{
		Sequence: seq,
		Acc1:     acc1,
		Acc2:     acc2,
		Energy:   fx,
		Output:   collector,
	}, collector
}

func TestPredictNoComplementarity(t *testing.T) {
	// P8: sequences share no complementary positions under the fixture
	// model, so the optimum is "don't interact".
	p, out := newPredictor("ACAC", "ACAC", energy.DefaultFixture)
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := rnaup.Interaction{Energy: 0}
	if diff := cmp.Diff(want, out.Interactions[0]); diff != "" {
		t.Errorf("unexpected interaction (-want +got):\n%s", diff)
	}
}

func TestPredictSinglePair(t *testing.T) {
	// S4: a lone complementary pair reports exactly one base pair at
	// twice the fixture's closing-pair energy (the degenerate closing
	// call is summed twice at w1 == w2 == 0).
	p, out := newPredictor("A", "U", energy.DefaultFixture)
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	got := out.Interactions[0]
	if got.Energy >= 0 {
		t.Fatalf("expected negative energy, got %v", got.Energy)
	}
	want := []rnaup.BasePair{{First: 0, Second: 0}}
	if diff := cmp.Diff(want, got.BasePairs); diff != "" {
		t.Errorf("unexpected base pairs (-want +got):\n%s", diff)
	}
}

func TestPredictStackedChain(t *testing.T) {
	// S1: a fully complementary run folds into one nested chain of
	// adjacent stacked pairs, diagonal in internal coordinates.
	p, out := newPredictor("AAAA", "UUUU", energy.DefaultFixture)
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	got := out.Interactions[0]
	if got.Energy >= 0 {
		t.Fatalf("expected negative energy, got %v", got.Energy)
	}
	want := []rnaup.BasePair{{First: 0, Second: 3}, {First: 1, Second: 2}, {First: 2, Second: 1}, {First: 3, Second: 0}}
	if diff := cmp.Diff(want, got.BasePairs); diff != "" {
		t.Errorf("unexpected base pairs (-want +got):\n%s", diff)
	}
}

func TestPredictIdempotent(t *testing.T) {
	// P4/S5: repeated calls on the same Predictor must not accumulate
	// state or change the answer.
	p, out := newPredictor("AAAA", "UUUU", energy.DefaultFixture)
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(out.Interactions) != 2 {
		t.Fatalf("expected 2 recorded interactions, got %d", len(out.Interactions))
	}
	if diff := cmp.Diff(out.Interactions[0], out.Interactions[1]); diff != "" {
		t.Errorf("repeated Predict calls diverged (-first +second):\n%s", diff)
	}
}

func TestPredictSingleResiduePair(t *testing.T) {
	// P9: r.from == r.to yields at most one base pair.
	p, out := newPredictor("AAAA", "UUUU", energy.DefaultFixture)
	if err := p.Predict(rnaup.IndexRange{From: 0, To: 0}, rnaup.IndexRange{From: 0, To: 0}); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(out.Interactions[0].BasePairs) > 1 {
		t.Fatalf("expected at most one base pair, got %v", out.Interactions[0].BasePairs)
	}
}

func TestPredictInvalidRange(t *testing.T) {
	p, _ := newPredictor("AAAA", "UUUU", energy.DefaultFixture)
	err := p.Predict(rnaup.IndexRange{From: 3, To: 1}, rnaup.FullRange)
	if err != rnaup.ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestPredictBlockedPositionExcludesInteraction(t *testing.T) {
	// S6: blocking a position removes every interaction through it.
	seq := seqView{seq1: []byte("AAAA"), seq2: reversed("UUUU")}
	blockedAcc2 := accessibility.NewTable(4, 10)
	blockedAcc2.Block(2) // original-coordinate position 2 of S2
	collector := &output.Collector{}
	p := &rnaup.Predictor{
		Sequence: seq,
		Acc1:     accessibility.Unconstrained{Length: 4, MaxWidth: 10},
		Acc2:     accessibility.Reversed{Inner: blockedAcc2, Length: 4},
		Energy:   energy.DefaultFixture,
		Output:   collector,
	}
	if err := p.Predict(rnaup.FullRange, rnaup.FullRange); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for _, bp := range collector.Interactions[0].BasePairs {
		if bp.Second == 2 {
			t.Fatalf("blocked position 2 appears in reported interaction: %v", collector.Interactions[0])
		}
	}
}
