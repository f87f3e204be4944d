package seqio

import (
	"strings"
	"testing"
)

func TestReaderParsesRecords(t *testing.T) {
	in := ">seq1\nACGT_acgt\nACGT\n>seq2\nTTTT\n"
	r := NewReader(strings.NewReader(in))

	s1 := r.Next()
	if !s1.Valid || s1.Label != "seq1" || s1.Bases != "ACGT-ACGTACGT" {
		t.Fatalf("unexpected first record: %+v", s1)
	}

	s2 := r.Next()
	if !s2.Valid || s2.Label != "seq2" || s2.Bases != "TTTT" {
		t.Fatalf("unexpected second record: %+v", s2)
	}

	s3 := r.Next()
	if s3.Valid {
		t.Fatalf("expected end-of-input sentinel, got %+v", s3)
	}
}

func TestReaderSkipsMalformedRecords(t *testing.T) {
	in := ">empty\n>seq1\nACGT\n"
	r := NewReader(strings.NewReader(in))

	s := r.Next()
	if !s.Valid || s.Label != "seq1" || s.Bases != "ACGT" {
		t.Fatalf("expected malformed leading record skipped, got %+v", s)
	}
	if r.Next().Valid {
		t.Fatalf("expected end of input")
	}
}

func TestWriterWrapsLines(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb, 4)
	if err := w.Write(New("x", "ACGTACGTA")); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">x\nACGT\nACGT\nA\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}
}
