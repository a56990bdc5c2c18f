package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/energyparams"
	"github.com/BackofenLab/intarnago/rnasequence"
)

// sharedFramePairs converts a list of (s1, s2Original) base pairs into the
// shared DP frame this package's Energy type operates in, i.e. S2 indices
// measured from the 3' end.
func sharedFramePairs(s2Len int, pairs [][2]int) [][2]int {
	shared := make([][2]int, len(pairs))
	for i, p := range pairs {
		shared[i] = [2]int{p[0], s2Len - 1 - p[1]}
	}
	return shared
}

func newDisabledEnergy(t *testing.T, s1, s2 string) *Energy {
	t.Helper()
	seq1, err := rnasequence.NewSequence("s1", s1)
	require.NoError(t, err)
	seq2, err := rnasequence.NewSequence("s2", s2)
	require.NoError(t, err)
	acc1 := accessibility.NewDisabled(seq1)
	acc2 := accessibility.NewDisabled(seq2)
	return NewEnergy(acc1, acc2, energyparams.NewBasePairCounting(), 0)
}

// E1 from the specification's worked examples.
func TestEnergyE1(t *testing.T) {
	e := newDisabledEnergy(t, "ACGU", "ACGU")
	pairs := sharedFramePairs(4, [][2]int{{0, 3}, {3, 0}})
	assert.Equal(t, -200, e.Total(pairs))
}

// E2 from the specification's worked examples.
func TestEnergyE2(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	pairs := sharedFramePairs(4, [][2]int{{0, 3}, {1, 2}, {2, 1}, {3, 0}})
	assert.Equal(t, -400, e.Total(pairs))
}

// E3 from the specification's worked examples.
func TestEnergyE3(t *testing.T) {
	e := newDisabledEnergy(t, "ACGU", "ACGG")
	pairs := sharedFramePairs(4, [][2]int{{0, 3}})
	assert.Equal(t, -100, e.Total(pairs))
	// S2="ACGG" holds no U, so S1's A at index 0 faces a G and the pair is
	// not one of the admissible base pairs; Total scores it regardless.
	assert.False(t, e.AreComplementary(pairs[0][0], pairs[0][1]))
}

func TestEnergyRejectsNonComplementaryEndpoints(t *testing.T) {
	e := newDisabledEnergy(t, "ACGU", "ACGG")
	// S1 index 1 (C) and the shared-frame index for S2 original index 0
	// (A, since S2="ACGG") are not complementary.
	shared := sharedFramePairs(4, [][2]int{{1, 0}})
	assert.False(t, e.AreComplementary(shared[0][0], shared[0][1]))
}
