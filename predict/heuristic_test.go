package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/energyparams"
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
)

func newDisabledEnergy(t *testing.T, s1, s2 string) *interaction.Energy {
	t.Helper()
	seq1, err := rnasequence.NewSequence("s1", s1)
	require.NoError(t, err)
	seq2, err := rnasequence.NewSequence("s2", s2)
	require.NoError(t, err)
	acc1 := accessibility.NewDisabled(seq1)
	acc2 := accessibility.NewDisabled(seq2)
	return interaction.NewEnergy(acc1, acc2, energyparams.NewBasePairCounting(), 0)
}

// Full complementary stack, matching spec.md's E2 worked example: energy
// -400 across all four base pairs.
func TestMfe2dHeuristicFindsFullStack(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	p := NewMfe2dHeuristic(e, 3, 3, nil)
	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 3},
		rnasequence.IndexRange{From: 0, To: 3},
		out,
		OutputConstraint{ReportMax: 1, MaxE: infE},
	)

	require.Len(t, out.Interactions, 1)
	ia := out.Interactions[0]
	assert.Equal(t, -400, ia.TotalEnergy)
	require.Len(t, ia.BasePairs, 4)
	assert.Equal(t, interaction.BasePair{S1: 0, S2: 3}, ia.BasePairs[0])
	assert.Equal(t, interaction.BasePair{S1: 3, S2: 0}, ia.BasePairs[3])
}

// A 2x2 case with exactly one admissible anchor, so the predicted
// interaction must be a single pair at the one complementary position.
func TestMfe2dHeuristicSinglePair(t *testing.T) {
	e := newDisabledEnergy(t, "AC", "AU")
	p := NewMfe2dHeuristic(e, 1, 1, nil)
	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 1},
		rnasequence.IndexRange{From: 0, To: 1},
		out,
		OutputConstraint{ReportMax: 1, MaxE: infE},
	)

	require.Len(t, out.Interactions, 1)
	ia := out.Interactions[0]
	assert.Equal(t, -100, ia.TotalEnergy)
	require.Len(t, ia.BasePairs, 1)
	assert.Equal(t, interaction.BasePair{S1: 0, S2: 1}, ia.BasePairs[0])
	require.NoError(t, ia.IsValid())
}

func TestMfe2dHeuristicRespectsMaxE(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	p := NewMfe2dHeuristic(e, 3, 3, nil)
	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 3},
		rnasequence.IndexRange{From: 0, To: 3},
		out,
		OutputConstraint{ReportMax: 5, MaxE: -150},
	)
	for _, ia := range out.Interactions {
		assert.LessOrEqual(t, ia.TotalEnergy, -150)
	}
}
