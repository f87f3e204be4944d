package predicate

import (
	"strings"
	"testing"

	"genorf/internal/orf"
	"genorf/internal/seqio"
)

func TestCpGIslandRejectsShortORF(t *testing.T) {
	seq := seqio.New("x", strings.Repeat("CG", 300)) // plenty of upstream span
	r := orf.Range{Start: 200, End: 200 + 95 - 1, Frame: 1}
	if got := CpGIsland(r, seq); got.Valid() {
		t.Fatalf("expected rejection for ORF shorter than MinORFLength, got %+v", got)
	}
}

func TestCpGIslandAcceptsQualifyingWindow(t *testing.T) {
	bases := strings.Repeat("CG", 300) // 600 bases, all CG: GC=1.0, CpG o/e maximal
	seq := seqio.New("x", bases)
	r := orf.Range{Start: 200, End: 499, Frame: 1} // length 300, a multiple of 3
	got := CpGIsland(r, seq)
	if !got.Valid() {
		t.Fatalf("expected acceptance, got invalid")
	}
	if got != r {
		t.Fatalf("expected predicate to return the candidate unchanged, got %+v", got)
	}
}

func TestCpGIslandRejectsLowGC(t *testing.T) {
	bases := strings.Repeat("AT", 300) // 600 bases, 0% GC everywhere
	seq := seqio.New("x", bases)
	r := orf.Range{Start: 200, End: 499, Frame: 1}
	if got := CpGIsland(r, seq); got.Valid() {
		t.Fatalf("expected rejection for low GC content, got %+v", got)
	}
}

func TestCpGIslandRejectsShortSequence(t *testing.T) {
	bases := strings.Repeat("CG", 20) // 40 bases, shorter than WindowSize
	seq := seqio.New("x", bases)
	r := orf.Range{Start: 0, End: 95, Frame: 1} // length 96, meets the ORF floor
	if got := CpGIsland(r, seq); got.Valid() {
		t.Fatalf("expected rejection when the parent sequence is shorter than the window, got %+v", got)
	}
}

func TestCpGIslandRejectsInvalidInput(t *testing.T) {
	seq := seqio.New("x", strings.Repeat("CG", 300))
	if got := CpGIsland(orf.InvalidRange(), seq); got.Valid() {
		t.Fatalf("expected invalid range to stay rejected")
	}
	if got := CpGIsland(orf.Range{Start: 200, End: 499, Frame: 1}, seqio.Invalid()); got.Valid() {
		t.Fatalf("expected invalid sequence to be rejected")
	}
}

func TestAcceptRejectAll(t *testing.T) {
	seq := seqio.New("x", "ACGT")
	r := orf.Range{Start: 0, End: 3, Frame: 1}
	if got := AcceptAll(r, seq); got != r {
		t.Fatalf("AcceptAll should return candidate unchanged, got %+v", got)
	}
	if got := RejectAll(r, seq); got.Valid() {
		t.Fatalf("RejectAll should always reject, got %+v", got)
	}
}

func TestResolveDefaultsToCpGIsland(t *testing.T) {
	prev := Selected
	defer func() { Selected = prev }()
	if Selected != "cpg-island" {
		t.Fatalf("expected default Selected %q, got %q", "cpg-island", Selected)
	}
	fn, err := Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fn == nil {
		t.Fatalf("expected non-nil predicate func")
	}
}

func TestResolveUnknownName(t *testing.T) {
	prev := Selected
	defer func() { Selected = prev }()
	Selected = "does-not-exist"
	if _, err := Resolve(); err == nil {
		t.Fatalf("expected error for unknown predicate name")
	}
}
