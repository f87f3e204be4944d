// Package filter applies a gene predicate across a batch of candidate
// ranges in parallel, compacting the accepted subset.
package filter

import (
	"sync"
	"sync/atomic"

	"genorf/internal/orf"
	"genorf/internal/predicate"
	"genorf/internal/seqio"
)

// Candidate pairs a candidate range with the sequence it was drawn
// from, since the predicate needs both to evaluate.
type Candidate struct {
	Range orf.Range
	Seq   seqio.Sequence
}

// Apply evaluates fn over candidates using workers goroutines and
// returns the accepted ranges, in no particular order. A workers
// value <= 0 runs the candidates on a single worker goroutine.
func Apply(candidates []Candidate, fn predicate.Func, workers int) []orf.Range {
	if len(candidates) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	kept := make([]orf.Range, len(candidates))
	var n int64

	var next int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&next, 1) - 1
				if i >= int64(len(candidates)) {
					return
				}
				c := candidates[i]
				result := fn(c.Range, c.Seq)
				if result.Valid() {
					slot := atomic.AddInt64(&n, 1) - 1
					kept[slot] = result
				}
			}
		}()
	}
	wg.Wait()

	return kept[:n]
}
