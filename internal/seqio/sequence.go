// Package seqio implements the nucleotide sequence record and the FASTA
// reader/writer collaborators that feed the gene-finding core.
package seqio

// Sequence is an immutable (label, bases) record. A Sequence with
// Valid false is the end-of-input sentinel, mirroring the original
// Fasta reader's "invalid Sequence" return value.
type Sequence struct {
	Label string
	Bases string
	Valid bool
}

// New builds a valid Sequence from a label and base string.
func New(label, bases string) Sequence {
	return Sequence{Label: label, Bases: bases, Valid: true}
}

// Invalid returns the end-of-input sentinel.
func Invalid() Sequence {
	return Sequence{}
}
