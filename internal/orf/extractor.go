package orf

import (
	"errors"
	"sync"
)

// ErrInvalidFrame is returned when a caller passes a frame outside
// the six valid Staden-convention values.
var ErrInvalidFrame = errors.New("orf: invalid frame, must be one of 1, 2, 3, -1, -2, -3")

// Frames lists the six reading frames scanned by ExtractAll, in the
// order their results are concatenated.
var Frames = [6]int{1, 2, 3, -1, -2, -3}

func validFrame(frame int) bool {
	for _, f := range Frames {
		if f == frame {
			return true
		}
	}
	return false
}

func complementBase(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T', 'U':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return b
	}
}

// reverseComplement returns the reverse complement of s, the working
// strand used for the three negative reading frames.
func reverseComplement(s []byte) []byte {
	n := len(s)
	out := make([]byte, n)
	for i, b := range s {
		out[n-1-i] = complementBase(b)
	}
	return out
}

func asU(b byte) byte {
	if b == 'T' {
		return 'U'
	}
	return b
}

func isStartCodon(c []byte) bool {
	return asU(c[0]) == 'A' && asU(c[1]) == 'U' && asU(c[2]) == 'G'
}

func isStopCodon(c []byte) bool {
	if asU(c[0]) != 'U' {
		return false
	}
	switch {
	case asU(c[1]) == 'A' && asU(c[2]) == 'A':
		return true
	case asU(c[1]) == 'A' && asU(c[2]) == 'G':
		return true
	case asU(c[1]) == 'G' && asU(c[2]) == 'A':
		return true
	}
	return false
}

// scanOne finds the first complete ORF in working starting the search
// no earlier than fromIdx, restricted to codon positions congruent to
// frameOffset modulo 3. It returns the working-buffer start/end
// (inclusive) of the ORF and ok=true, or ok=false if none remains.
func scanOne(working []byte, frameOffset, fromIdx int) (start, end int, ok bool) {
	n := len(working)
	i := fromIdx
	// advance i to the first codon position matching frameOffset mod 3
	if m := (i - frameOffset) % 3; m != 0 {
		if m < 0 {
			m += 3
		}
		i += 3 - m
	}
	for i+3 <= n {
		if isStartCodon(working[i : i+3]) {
			j := i
			for j+3 <= n {
				if isStopCodon(working[j : j+3]) {
					return i, j + 2, true
				}
				j += 3
			}
			// ran off the end without a stop codon: no ORF from this start
		}
		i += 3
	}
	return 0, 0, false
}

// scanAll finds every in-frame ORF in working for the given frame
// offset. Start codons may nest: every AUG at a codon position
// congruent to frameOffset is an independent candidate, and its stop
// codon is searched for from that start alone, so two starts sharing
// the same downstream stop both produce a hit.
func scanAll(working []byte, frameOffset int) [][2]int {
	n := len(working)
	var hits [][2]int
	for i := frameOffset; i+3 <= n; i += 3 {
		if !isStartCodon(working[i : i+3]) {
			continue
		}
		for j := i; j+3 <= n; j += 3 {
			if isStopCodon(working[j : j+3]) {
				hits = append(hits, [2]int{i, j + 2})
				break
			}
		}
	}
	return hits
}

// Extract finds the first complete open reading frame within
// bases[lo:hi] for the given frame, or the invalid sentinel if none
// exists. Start and End in the returned Range are inclusive original
// coordinates; for negative frames Start > End, reflecting the
// reverse reading direction.
func Extract(bases string, frame int, lo, hi uint64) (Range, error) {
	if !validFrame(frame) {
		return InvalidRange(), ErrInvalidFrame
	}
	if hi > uint64(len(bases)) || lo > hi {
		return InvalidRange(), nil
	}
	sub := []byte(bases[lo:hi])
	working := sub
	if frame < 0 {
		working = reverseComplement(sub)
	}
	frameOffset := frame - 1
	if frame < 0 {
		frameOffset = -frame - 1
	}
	start, end, ok := scanOne(working, frameOffset, 0)
	if !ok {
		return InvalidRange(), nil
	}
	return mapToOriginal(start, end, frame, lo, uint64(len(sub))), nil
}

func mapToOriginal(start, end int, frame int, lo, n uint64) Range {
	if frame > 0 {
		return Range{Start: lo + uint64(start), End: lo + uint64(end), Frame: frame}
	}
	origStart := lo + n - 1 - uint64(start)
	origEnd := lo + n - 1 - uint64(end)
	return Range{Start: origStart, End: origEnd, Frame: frame}
}

// ExtractAll finds every open reading frame across all six reading
// frames of bases; ORFs whose starts nest inside another ORF of the
// same frame are reported too (see scanAll). The six frames are scanned
// concurrently; results are concatenated in Frames order so output is
// deterministic regardless of goroutine scheduling.
func ExtractAll(bases string) []Range {
	sub := []byte(bases)
	n := uint64(len(sub))
	results := make([][]Range, len(Frames))

	var wg sync.WaitGroup
	for idx, frame := range Frames {
		idx, frame := idx, frame
		wg.Add(1)
		go func() {
			defer wg.Done()
			working := sub
			frameOffset := frame - 1
			if frame < 0 {
				working = reverseComplement(sub)
				frameOffset = -frame - 1
			}
			hits := scanAll(working, frameOffset)
			out := make([]Range, len(hits))
			for i, h := range hits {
				out[i] = mapToOriginal(h[0], h[1], frame, 0, n)
			}
			results[idx] = out
		}()
	}
	wg.Wait()

	var all []Range
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}
