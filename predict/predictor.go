// Package predict implements the DP engines that search two accessibility-
// annotated strands for minimum-free-energy (or, for MaxProb, maximum-
// probability) hybridization interactions: Mfe2d (exact, full backtrace),
// Mfe2dHeuristic (one best right-extension per left anchor), MaxProb
// (Boltzmann-weighted partition function), and their *+Seed variants that
// additionally require the reported interaction to contain an admissible
// seed fragment.
package predict

import (
	"sort"

	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/tracker"
)

// ReportOverlap controls whether independently reported suboptimal
// interactions are allowed to reuse S1/S2 positions already used by a
// previously reported interaction.
type ReportOverlap int

const (
	OverlapBoth ReportOverlap = iota
	OverlapSeq1
	OverlapSeq2
	OverlapNone
)

// OutputConstraint bounds how many (and which) interactions a predict call
// reports: up to ReportMax interactions, within [mfe, mfe+DeltaE] and
// within MaxE, under ReportOverlap's suboptimal-overlap policy.
type OutputConstraint struct {
	ReportMax     int
	ReportOverlap ReportOverlap
	MaxE          int
	DeltaE        int
}

const infE = 1 << 29

// terminalEnergy sums every term of Energy.Total() except the interior
// EInterLeft chain itself: both termini' dangles and ends, each strand's
// ED over the reported span, and the constant energyAdd correction. Every
// DP engine below computes its interior chain independently but shares
// this exact composition when turning a chain into a reported total,
// matching Energy.Total's own term layout.
func terminalEnergy(e *interaction.Energy, i1, j2, k1, l2 int) int {
	return e.EDangleLeft(i1, j2) + e.EDangleRight(k1, l2) +
		e.EEndLeft(i1, j2) + e.EEndRight(k1, l2) +
		e.ED1(i1, k1) + e.ED2(j2, l2) +
		e.EnergyAdd()
}

// Predictor is the common interface all four DP engines implement.
type Predictor interface {
	Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint)
}

// noInteraction builds the no-interaction sentinel for a Predict call that
// found nothing admissible, naming the two strands actually searched.
func noInteraction(energy *interaction.Energy) interaction.Interaction {
	return interaction.NoInteraction(energy.Seq1().ID(), energy.Seq2Original().ID(), energy.Seq1().Len(), energy.Seq2Original().Len())
}

// pairsSharedToInteraction converts a shared-frame (S1 forward, S2
// reversed) chain of base pairs into a reported Interaction, converting
// every S2 index back to S2's own coordinate frame via Energy.ToS2Original.
func pairsSharedToInteraction(energy *interaction.Energy, pairsShared [][2]int, totalEnergy int) interaction.Interaction {
	bps := make([]interaction.BasePair, len(pairsShared))
	for i, pr := range pairsShared {
		bps[i] = interaction.BasePair{S1: pr[0], S2: energy.ToS2Original(pr[1])}
	}
	return interaction.Interaction{
		Seq1ID:      energy.Seq1().ID(),
		Seq2ID:      energy.Seq2Original().ID(),
		Seq1Len:     energy.Seq1().Len(),
		Seq2Len:     energy.Seq2Original().Len(),
		BasePairs:   bps,
		TotalEnergy: totalEnergy,
	}
}

// optimumTracker accumulates every admissible interaction found during a
// fill pass (topK later sorts them, lowest E first, and keeps reportMax of
// them), and tracks which
// sequence ranges have already been reported for ReportOverlap enforcement.
// Shared by all four engines, mirroring PredictorMfe's initOptima/
// updateOptima/reportOptima trio.
type optimumTracker struct {
	energy        *interaction.Energy
	outConstraint OutputConstraint
	tracker       tracker.Tracker

	found    []foundSite
	reported struct {
		seq1 rnasequence.IndexRangeList
		seq2 rnasequence.IndexRangeList
	}
}

type foundSite struct {
	i1, j1, i2, j2 int
	e              int
}

func newOptimumTracker(energy *interaction.Energy, outConstraint OutputConstraint, t tracker.Tracker) *optimumTracker {
	if t == nil {
		t = tracker.NoOp{}
	}
	return &optimumTracker{energy: energy, outConstraint: outConstraint, tracker: t}
}

// updateOptimum records a candidate interaction's boundary and energy if it
// is admissible (below MaxE) and notifies the tracker, matching
// PredictorMfe::updateOptima's single hook-point contract.
func (o *optimumTracker) updateOptimum(i1, j1, i2, j2, e int) {
	o.tracker.UpdateOptimum(i1, j1, i2, j2, e)
	if e >= infE || e > o.outConstraint.MaxE {
		return
	}
	o.found = append(o.found, foundSite{i1: i1, j1: j1, i2: i2, j2: j2, e: e})
}

// topK returns the up-to-reportMax best non-overlapping sites within
// [mfe, mfe+DeltaE], applying the ReportOverlap policy greedily from lowest
// energy upward.
func (o *optimumTracker) topK() []foundSite {
	sort.Slice(o.found, func(a, b int) bool { return o.found[a].e < o.found[b].e })
	if len(o.found) == 0 {
		return nil
	}
	ceiling := o.found[0].e + o.outConstraint.DeltaE

	var result []foundSite
	for _, s := range o.found {
		if s.e > ceiling {
			// found is sorted ascending: nothing further can qualify.
			break
		}
		if len(result) >= o.outConstraint.ReportMax && o.outConstraint.ReportMax > 0 {
			break
		}
		r1 := rnasequence.IndexRange{From: s.i1, To: s.j1}
		r2 := rnasequence.IndexRange{From: s.i2, To: s.j2}
		switch o.outConstraint.ReportOverlap {
		case OverlapNone:
			if o.reported.seq1.Overlaps(r1) || o.reported.seq2.Overlaps(r2) {
				continue
			}
		case OverlapSeq1:
			if o.reported.seq2.Overlaps(r2) {
				continue
			}
		case OverlapSeq2:
			if o.reported.seq1.Overlaps(r1) {
				continue
			}
		case OverlapBoth:
			// no restriction
		}
		_ = o.reported.seq1.Insert(r1)
		_ = o.reported.seq2.Insert(r2)
		result = append(result, s)
	}
	return result
}
