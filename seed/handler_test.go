package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/energyparams"
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/rnasequence"
)

func TestFillSeedFindsPerfectStack(t *testing.T) {
	s1, err := rnasequence.NewSequence("s1", "AAAA")
	require.NoError(t, err)
	s2, err := rnasequence.NewSequence("s2", "UUUU")
	require.NoError(t, err)

	acc1 := accessibility.NewDisabled(s1)
	acc2 := accessibility.NewDisabled(s2)
	energy := interaction.NewEnergy(acc1, acc2, energyparams.NewBasePairCounting(), 0)

	h := NewHandler(energy, Constraint{BpMin: 2, BpMax: 3, MaxUnpaired1: 1, MaxUnpaired2: 1, SeedMaxEnergy: 0})
	h.FillSeed(rnasequence.IndexRange{From: 0, To: 3}, rnasequence.IndexRange{From: 0, To: 3})

	assert.True(t, h.IsSeedBound(0, 0))
	e, ok := h.GetSeedE(0, 0)
	require.True(t, ok)
	assert.LessOrEqual(t, e, -200) // at least a 2-bp seed: EInit + 1 transition
}

func TestSeedOffsetView(t *testing.T) {
	s1, err := rnasequence.NewSequence("s1", "AAAA")
	require.NoError(t, err)
	s2, err := rnasequence.NewSequence("s2", "UUUU")
	require.NoError(t, err)

	acc1 := accessibility.NewDisabled(s1)
	acc2 := accessibility.NewDisabled(s2)
	energy := interaction.NewEnergy(acc1, acc2, energyparams.NewBasePairCounting(), 0)

	h := NewHandler(energy, Constraint{BpMin: 2, BpMax: 2, MaxUnpaired1: 0, MaxUnpaired2: 0, SeedMaxEnergy: 0})
	h.FillSeed(rnasequence.IndexRange{From: 0, To: 3}, rnasequence.IndexRange{From: 0, To: 3})

	offset := h.OffsetView(1, 1)
	assert.Equal(t, h.IsSeedBound(1, 1), offset.IsSeedBound(0, 0))
}
