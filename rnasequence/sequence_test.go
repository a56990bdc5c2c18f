package rnasequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequenceEncoding(t *testing.T) {
	s, err := NewSequence("s1", "acgun")
	require.NoError(t, err)
	assert.Equal(t, "ACGUN", s.String())
	assert.Equal(t, []uint8{codeA, codeC, codeG, codeU, codeN}, s.code)
	assert.Equal(t, 5, s.Len())
}

func TestNewSequenceRejectsBadAlphabet(t *testing.T) {
	_, err := NewSequence("s1", "ACGT")
	require.Error(t, err)
}

func TestSequenceReverse(t *testing.T) {
	s, err := NewSequence("s1", "ACGU")
	require.NoError(t, err)
	rev := s.Reverse()
	assert.Equal(t, "UGCA", rev.String())
}

func TestAreComplementary(t *testing.T) {
	cases := []struct {
		a, b uint8
		want bool
	}{
		{codeA, codeU, true},
		{codeU, codeA, true},
		{codeC, codeG, true},
		{codeG, codeC, true},
		{codeG, codeU, true},
		{codeU, codeG, true},
		{codeA, codeC, false},
		{codeN, codeA, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AreComplementary(c.a, c.b))
	}
}

func TestFingerprintStable(t *testing.T) {
	s1, _ := NewSequence("s1", "ACGU")
	s2, _ := NewSequence("s1", "ACGU")
	s3, _ := NewSequence("s1", "ACGG")
	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())
	assert.NotEqual(t, s1.Fingerprint(), s3.Fingerprint())
}
