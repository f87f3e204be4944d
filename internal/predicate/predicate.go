// Package predicate implements the gene-candidate acceptance test
// applied to each extracted open reading frame, plus the build-time
// registry that selects which predicate implementation is linked in.
package predicate

import (
	"fmt"

	"genorf/internal/orf"
	"genorf/internal/seqio"
)

// Func decides whether a candidate range is accepted as a gene. It
// returns the range unchanged if accepted, or the invalid sentinel if
// rejected, mirroring the original link-time-swappable predicate's
// (GeneRange, Sequence) -> GeneRange signature.
type Func func(r orf.Range, seq seqio.Sequence) orf.Range

// AcceptAll accepts every candidate unconditionally.
func AcceptAll(r orf.Range, _ seqio.Sequence) orf.Range {
	return r
}

// RejectAll rejects every candidate unconditionally.
func RejectAll(_ orf.Range, _ seqio.Sequence) orf.Range {
	return orf.InvalidRange()
}

// Selected names the predicate linked into this build. It is a
// package-level variable so it can be overridden at build time with
//
//	go build -ldflags "-X genorf/internal/predicate.Selected=accept-all"
//
// the Go analogue of swapping the original's linked translation unit.
var Selected = "cpg-island"

// registry maps a predicate name to its implementation. The two
// trivial predicates are listed here; any other predicate is added by
// its own source file via init.
var registry = map[string]Func{
	"accept-all": AcceptAll,
	"reject-all": RejectAll,
}

func register(name string, fn Func) {
	registry[name] = fn
}

// Resolve returns the Func named by Selected, or an error if no
// predicate is registered under that name.
func Resolve() (Func, error) {
	fn, ok := registry[Selected]
	if !ok {
		return nil, fmt.Errorf("predicate: unknown predicate %q", Selected)
	}
	return fn, nil
}
