package predict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/seed"
	"github.com/BackofenLab/intarnago/tracker"
)

func TestMfe2dHeuristicSeedRequiresSeed(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	handler := seed.NewHandler(e, seed.Constraint{BpMin: 2, BpMax: 4, MaxUnpaired1: 0, MaxUnpaired2: 0, SeedMaxEnergy: 0})
	p := NewMfe2dHeuristicSeed(e, 3, 3, handler, nil)

	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 3},
		rnasequence.IndexRange{From: 0, To: 3},
		out,
		OutputConstraint{ReportMax: 1, MaxE: infE},
	)

	require.Len(t, out.Interactions, 1)
	assert.LessOrEqual(t, out.Interactions[0].TotalEnergy, -200)
	require.NoError(t, out.Interactions[0].IsValid())
}

func TestMaxProbReportsProbabilityRankedSite(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	p := NewMaxProb(e, 3, 3, nil)

	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 3},
		rnasequence.IndexRange{From: 0, To: 3},
		out,
		OutputConstraint{ReportMax: 1, MaxE: infE},
	)

	require.Len(t, out.Interactions, 1)
	// The lowest-energy site dominates the ensemble, so its
	// pseudo-energy should sit close to its own raw energy (small
	// ensemble of competing anchors).
	assert.LessOrEqual(t, out.Interactions[0].TotalEnergy, 0)
}

func TestMaxProbFeedsPartitionTracker(t *testing.T) {
	e := newDisabledEnergy(t, "AAAA", "UUUU")
	pt := tracker.NewPartitionTracker(e.RT())
	p := NewMaxProb(e, 3, 3, pt)

	out := &output.Passthrough{}
	p.Predict(
		rnasequence.IndexRange{From: 0, To: 3},
		rnasequence.IndexRange{From: 0, To: 3},
		out,
		OutputConstraint{ReportMax: 1, MaxE: infE},
	)

	require.Len(t, out.Interactions, 1)
	// Every fill-loop cell (not just the reported site) feeds pt, so the
	// ensemble log partition function must be finite and at least as
	// favorable as the single reported site's own energy.
	logZ := pt.LogZ()
	assert.False(t, math.IsInf(logZ, 0))
	reportedLogWeight := -float64(out.Interactions[0].TotalEnergy) / 100.0 / e.RT()
	assert.GreaterOrEqual(t, logZ, reportedLogWeight)
}
