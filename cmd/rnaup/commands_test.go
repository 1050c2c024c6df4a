package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFasta(t *testing.T, dir, name, identifier, sequence string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ">" + identifier + "\n" + sequence + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture fasta: %v", err)
	}
	return path
}

func TestPredictCommandCSV(t *testing.T) {
	dir := t.TempDir()
	seq1 := writeFasta(t, dir, "seq1.fasta", "s1", "AAAA")
	seq2 := writeFasta(t, dir, "seq2.fasta", "s2", "UUUU")

	app := application()
	err := app.Run([]string{"rnaup", "predict", "--seq1", seq1, "--seq2", seq2})
	if err != nil {
		t.Fatalf("predict command: %v", err)
	}
}

func TestReadFirstRecord(t *testing.T) {
	dir := t.TempDir()
	path := writeFasta(t, dir, "seq.fasta", "test", "ACGU")
	record, err := readFirstRecord(path)
	if err != nil {
		t.Fatalf("readFirstRecord: %v", err)
	}
	if record.Sequence != "ACGU" {
		t.Errorf("got sequence %q, want ACGU", record.Sequence)
	}
}

func TestNormalizeConvertsThymineAndCase(t *testing.T) {
	got := normalize("acgtACGT")
	want := []byte("ACGUACGU")
	if !bytes.Equal(got, want) {
		t.Errorf("normalize(%q) = %q, want %q", "acgtACGT", got, want)
	}
}
