package predicate

import (
	"math"

	"genorf/internal/orf"
	"genorf/internal/seqio"
)

func init() {
	register("cpg-island", CpGIsland)
}

// Classic CpG-island thresholds (Gardiner-Garden & Frommer), applied
// over a sliding window of WindowSize bases anchored upstream of each
// candidate ORF's one-third point.
const (
	WindowSize      = 200 // n
	GCThreshold     = 0.5
	ObsExpThreshold = 0.6
	MinORFLength    = 96  // shortest candidate, in bases, that is inspected at all
	UpstreamSpan    = 200 // span searched upstream of the anchor
)

// CpGIsland accepts a candidate range if at least one WindowSize-base
// window anchored upstream of the ORF's one-third point satisfies the
// CpG-island heuristic (observed/expected CpG ratio above
// ObsExpThreshold and GC content above GCThreshold), and rejects it
// (returning the invalid sentinel) otherwise. A malformed or
// out-of-range candidate, or one shorter than MinORFLength, is
// rejected without inspecting the window.
func CpGIsland(r orf.Range, seq seqio.Sequence) orf.Range {
	if !r.Valid() || !seq.Valid {
		return orf.InvalidRange()
	}
	if r.Length() < MinORFLength {
		return orf.InvalidRange()
	}

	bases := seq.Bases
	sLen := uint64(len(bases))
	n := uint64(WindowSize)

	end := r.AbsStart() + r.Length()/3
	var start uint64
	if end > UpstreamSpan {
		start = end - UpstreamSpan
	}

	if sLen < n || start >= sLen-n || end > sLen-n {
		return orf.InvalidRange()
	}

	for i := start; i < end; i++ {
		nC, nG, nCpG := scanWindow(bases, i, n, sLen)
		gc := float64(nC+nG) / float64(n)
		oe := cpgObsExp(float64(nCpG), float64(nC), float64(nG), float64(n))
		if oe > ObsExpThreshold && gc > GCThreshold {
			return r
		}
	}
	return orf.InvalidRange()
}

// scanWindow counts C bases, G bases, and C-followed-by-G
// dinucleotides in bases[i:i+n]. A C at the last position of the
// window is still checked against the base immediately after the
// window (index i+n) when that index is in range, per the CpG-island
// heuristic's window-boundary convention.
func scanWindow(bases string, i, n, sLen uint64) (nC, nG, nCpG uint64) {
	end := i + n
	for k := i; k < end; k++ {
		switch bases[k] {
		case 'C':
			nC++
			if k+1 < sLen && bases[k+1] == 'G' {
				nCpG++
			}
		case 'G':
			nG++
		}
	}
	return
}

// cpgObsExp computes the observed/expected CpG dinucleotide ratio.
// Division by zero (no C or no G in the window) yields +Inf, the
// convention the original predicate uses: a window with no
// opportunity for CpG dinucleotides never fails the o/e test on its
// own account.
func cpgObsExp(countCG, countC, countG, length float64) float64 {
	denom := countC * countG
	if denom == 0 {
		return math.Inf(1)
	}
	return (countCG * length) / denom
}
