package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/TimothyStiles/rnaup/rnaup"
	"github.com/TimothyStiles/rnaup/rnaup/accessibility"
	"github.com/TimothyStiles/rnaup/bio/fasta"
	"github.com/TimothyStiles/rnaup/rnaup/energy"
	"github.com/TimothyStiles/rnaup/energy_params"
	"github.com/TimothyStiles/rnaup/rnaup/output"
)

// predictCommand wires the "rnaup predict" subcommand: two FASTA
// inputs, the temperature and maximum loop size of the Turner 2004
// nearest-neighbour energy model, and a choice of output format.
func predictCommand() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "compute the MFE interaction between two FASTA sequences",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seq1", Required: true, Usage: "FASTA file containing sequence 1"},
			&cli.StringFlag{Name: "seq2", Required: true, Usage: "FASTA file containing sequence 2"},
			&cli.StringFlag{Name: "format", Value: "csv", Usage: "output format: csv or dotbracket"},
			&cli.Float64Flag{Name: "temperature", Value: 37.0, Usage: "folding temperature in degrees Celsius"},
			&cli.IntFlag{Name: "max-loop", Value: 16, Usage: "maximum interior loop size on each strand"},
		},
		Action: predictAction,
	}
}

func predictAction(c *cli.Context) error {
	s1, err := readFirstRecord(c.String("seq1"))
	if err != nil {
		return fmt.Errorf("rnaup: reading seq1: %w", err)
	}
	s2, err := readFirstRecord(c.String("seq2"))
	if err != nil {
		return fmt.Errorf("rnaup: reading seq2: %w", err)
	}

	maxLoop := c.Int("max-loop")
	seq := fastaSeqView{seq1: normalize(s1.Sequence), seq2: reverse(normalize(s2.Sequence))}
	oracle := energy.NewNearestNeighbour(seq, energy_params.Turner2004, c.Float64("temperature"), maxLoop, maxLoop)

	sink := outputHandler(c.String("format"), os.Stdout, len(seq.seq1), len(seq.seq2))

	predictor := &rnaup.Predictor{
		Sequence: seq,
		Acc1:     accessibility.Unconstrained{Length: len(seq.seq1), MaxWidth: len(seq.seq1)},
		Acc2: accessibility.Reversed{
			Inner:  accessibility.Unconstrained{Length: len(seq.seq2), MaxWidth: len(seq.seq2)},
			Length: len(seq.seq2),
		},
		Energy: oracle,
		Output: sink,
	}
	return predictor.Predict(rnaup.FullRange, rnaup.FullRange)
}

func outputHandler(format string, w *os.File, len1, len2 int) rnaup.OutputHandler {
	if format == "dotbracket" {
		return output.DotBracketWriter{W: w, Len1: len1, Len2: len2}
	}
	return output.CSVWriter{W: w}
}

func readFirstRecord(path string) (*fasta.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parser := fasta.NewParser(f, 1<<20)
	return parser.Next()
}

func normalize(seq string) []byte {
	return []byte(strings.ReplaceAll(strings.ToUpper(seq), "T", "U"))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// fastaSeqView adapts two normalized byte slices (seq2 already
// reversed) to both rnaup.SequenceView and energy.NucleotideSequence.
type fastaSeqView struct {
	seq1, seq2 []byte
}

func (s fastaSeqView) Len1() int { return len(s.seq1) }
func (s fastaSeqView) Len2() int { return len(s.seq2) }

func (s fastaSeqView) Ambiguous1(i rnaup.Pos) bool { return !isACGU(s.seq1[i]) }
func (s fastaSeqView) Ambiguous2(i rnaup.Pos) bool { return !isACGU(s.seq2[i]) }

func (s fastaSeqView) Complementary(i, j rnaup.Pos) bool {
	return complementary(s.seq1[i], s.seq2[j])
}

func (s fastaSeqView) Base1(i rnaup.Pos) byte { return s.seq1[i] }
func (s fastaSeqView) Base2(i rnaup.Pos) byte { return s.seq2[i] }

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
