/*
Package rnasequence provides the sequence and index-range primitives shared
by the rest of the interaction predictor: an encoded, immutable RNA
Sequence and the IndexRange/IndexRangeList types used to describe and
combine sub-ranges of it.
*/
package rnasequence

import (
	"fmt"
	"strings"

	"lukechampine.com/blake3"
)

// nucleotide codes, matching the A=1 C=2 G=3 U=4 N=0 encoding.
const (
	codeN uint8 = 0
	codeA uint8 = 1
	codeC uint8 = 2
	codeG uint8 = 3
	codeU uint8 = 4
)

// Exported nucleotide codes, for callers outside this package that need to
// compare against CodeAt/BaseAt results (e.g. energyparams' pair tables).
const (
	CodeN = codeN
	CodeA = codeA
	CodeC = codeC
	CodeG = codeG
	CodeU = codeU
)

var baseToCode = map[byte]uint8{
	'A': codeA, 'C': codeC, 'G': codeG, 'U': codeU, 'N': codeN,
}

var codeToBase = [5]byte{'N', 'A', 'C', 'G', 'U'}

// Sequence is an immutable RNA sequence over the alphabet {A,C,G,U,N}. The
// code form mirrors the string form position for position (code length ==
// string length always holds).
type Sequence struct {
	id   string
	seq  string
	code []uint8
}

// NewSequence validates seq against the {A,C,G,U,N} alphabet (case
// insensitive) and returns an encoded Sequence. T is not accepted: this
// predictor operates on RNA only, unlike the teacher's dual DNA/RNA fold
// package.
func NewSequence(id, seq string) (Sequence, error) {
	upper := strings.ToUpper(seq)
	code := make([]uint8, len(upper))
	for i := 0; i < len(upper); i++ {
		c, ok := baseToCode[upper[i]]
		if !ok {
			return Sequence{}, fmt.Errorf("%w: character %q at position %d is not in {A,C,G,U,N}", ErrBadInput, upper[i], i)
		}
		code[i] = c
	}
	return Sequence{id: id, seq: upper, code: code}, nil
}

// ID returns the sequence's identifier (e.g. a FASTA header).
func (s Sequence) ID() string { return s.id }

// String returns the sequence in its original string form.
func (s Sequence) String() string { return s.seq }

// Len returns the number of nucleotides in the sequence.
func (s Sequence) Len() int { return len(s.code) }

// CodeAt returns the encoded nucleotide at position i.
func (s Sequence) CodeAt(i int) uint8 { return s.code[i] }

// BaseAt returns the nucleotide character at position i.
func (s Sequence) BaseAt(i int) byte { return s.seq[i] }

// Equal reports whether two sequences have identical string form.
func (s Sequence) Equal(other Sequence) bool {
	return s.seq == other.seq
}

// Reverse returns a new Sequence with id suffixed "-rev" and bases in
// reverse order (not complemented: used to present S2 5'->3' during
// prediction, see the accessibility.Reversed adapter).
func (s Sequence) Reverse() Sequence {
	n := len(s.seq)
	rb := make([]byte, n)
	rc := make([]uint8, n)
	for i := 0; i < n; i++ {
		rb[i] = s.seq[n-1-i]
		rc[i] = s.code[n-1-i]
	}
	return Sequence{id: s.id + "-rev", seq: string(rb), code: rc}
}

// Fingerprint returns a blake3 digest of the encoded sequence, a cheap
// content identity independent of the FASTA header. cmd/intarnago prints it
// alongside each reported interaction so a result can be matched back to
// the exact input sequence it was computed from, even if the header is
// reused across runs with edited content.
func (s Sequence) Fingerprint() [32]byte {
	return blake3.Sum256(s.code)
}

// AreComplementary reports whether two encoded nucleotides form one of the
// six Watson-Crick/wobble pairs. N never pairs.
func AreComplementary(a, b uint8) bool {
	switch {
	case a == codeN || b == codeN:
		return false
	case a == codeA && b == codeU, a == codeU && b == codeA:
		return true
	case a == codeC && b == codeG, a == codeG && b == codeC:
		return true
	case a == codeG && b == codeU, a == codeU && b == codeG:
		return true
	default:
		return false
	}
}
