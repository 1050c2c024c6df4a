// Package output provides rnaup.OutputHandler sinks: an in-memory
// Collector for tests and programmatic callers, a CSVWriter that writes
// the energy and the base-pair list as one comma-separated row, and a
// DotBracketWriter for a visual dot-bracket rendering of the reported
// interaction.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/TimothyStiles/rnaup/rnaup"
)

// Collector stores every Interaction passed to Add, in call order. It
// is the simplest OutputHandler and is mainly useful in tests.
type Collector struct {
	Interactions []rnaup.Interaction
}

func (c *Collector) Add(i rnaup.Interaction) error {
	c.Interactions = append(c.Interactions, i)
	return nil
}

// CSVWriter writes one CSV row per Interaction: energy, then a
// semicolon-joined list of "seq1pos:seq2pos" base pairs.
type CSVWriter struct {
	W io.Writer
}

func (c CSVWriter) Add(i rnaup.Interaction) error {
	pairs := make([]string, len(i.BasePairs))
	for idx, bp := range i.BasePairs {
		pairs[idx] = fmt.Sprintf("%d:%d", bp.First, bp.Second)
	}
	_, err := fmt.Fprintf(c.W, "%g,%s\n", i.Energy, strings.Join(pairs, ";"))
	return err
}

// DotBracketWriter renders an Interaction as dot-bracket strings over
// the two input sequence lengths: '(' at a sequence-1 base pair
// position, ')' at its sequence-2 partner, '.' everywhere else.
type DotBracketWriter struct {
	W          io.Writer
	Len1, Len2 int
}

func (d DotBracketWriter) Add(i rnaup.Interaction) error {
	s1 := []byte(strings.Repeat(".", d.Len1))
	s2 := []byte(strings.Repeat(".", d.Len2))
	for _, bp := range i.BasePairs {
		if bp.First >= 0 && bp.First < d.Len1 {
			s1[bp.First] = '('
		}
		if bp.Second >= 0 && bp.Second < d.Len2 {
			s2[bp.Second] = ')'
		}
	}
	_, err := fmt.Fprintf(d.W, "%s\n%s\nenergy %g\n", s1, s2, i.Energy)
	return err
}
