// Package emit converts accepted gene ranges back into FASTA records
// for output.
package emit

import (
	"fmt"

	"genorf/internal/orf"
	"genorf/internal/seqio"
)

// DefaultPattern is the label template used when none is configured:
// parent label, frame, start, end, in that order.
const DefaultPattern = "%s | gene | frame=%d | LOC=[%d,%d]"

// Emit projects an accepted range onto its source sequence and
// returns the resulting FASTA record. pattern is a fmt-style template
// taking the parent label, frame, start, and end, in that order; an
// empty pattern uses DefaultPattern.
func Emit(seq seqio.Sequence, r orf.Range, pattern string) (seqio.Sequence, error) {
	if !seq.Valid {
		return seqio.Invalid(), fmt.Errorf("emit: source sequence is invalid")
	}
	if !r.Valid() {
		return seqio.Invalid(), fmt.Errorf("emit: range is invalid")
	}
	lo, hi := r.AbsStart(), r.AbsEnd()
	if hi >= uint64(len(seq.Bases)) {
		return seqio.Invalid(), fmt.Errorf("emit: range [%d,%d] out of bounds for sequence of length %d", lo, hi, len(seq.Bases))
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	bases := seq.Bases[lo : hi+1]
	label := fmt.Sprintf(pattern, seq.Label, r.Frame, lo, hi)
	return seqio.New(label, bases), nil
}

// EmitAll projects every range in rs onto seq, skipping (rather than
// failing on) any range that turns out to be invalid or out of bounds.
func EmitAll(seq seqio.Sequence, rs []orf.Range, pattern string) []seqio.Sequence {
	out := make([]seqio.Sequence, 0, len(rs))
	for _, r := range rs {
		s, err := Emit(seq, r, pattern)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}
