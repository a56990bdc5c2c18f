package predict

import (
	"math"

	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/tracker"
)

// MaxProb reports the single interaction with the highest Boltzmann
// hybridization probability rather than the lowest energy: for every fixed
// right boundary (j1,j2) it accumulates its own partition-function table
// zPq(i1,i2), the Boltzmann-weighted sum over every admissible chain of
// EInterLeft decompositions from (i1,i2) to (j1,j2), mirroring Mfe2d's
// hybridE_pq fill with a weighted sum in place of a min. Every complementary
// left anchor's chain weight is then folded together with its terminal
// contribution (dangles/ends/ED/energyAdd) and accumulated into the
// ensemble partition sum; the site of largest weight is reported, its
// energy recovered as -RT*ln(weight) (dropping the constant division by
// the ensemble sum Z, since it does not change which site is argmax).
// reportMax > 1 is not supported, matching PredictorMaxProb, which raises
// rather than reporting more than one site; the reported interaction
// carries only its two boundary base pairs, matching
// PredictorMaxProb::reportOptimalSolution's range-only report. Ported from
// PredictorMaxProb::fillHybridZ/updateOptima/reportOptima.
type MaxProb struct {
	energy       *interaction.Energy
	maxLoopSize1 int
	maxLoopSize2 int
	rt           float64
	tracker      tracker.Tracker
}

// NewMaxProb builds a MaxProb predictor. A nil tracker defaults to
// tracker.NoOp; pass a *tracker.PartitionTracker to additionally observe an
// ensemble log partition function over the same admissible sites this
// predictor enumerates.
func NewMaxProb(energy *interaction.Energy, maxLoopSize1, maxLoopSize2 int, t tracker.Tracker) *MaxProb {
	if t == nil {
		t = tracker.NoOp{}
	}
	return &MaxProb{energy: energy, maxLoopSize1: maxLoopSize1, maxLoopSize2: maxLoopSize2, rt: energy.RT(), tracker: t}
}

// boltzmann converts a centi-kcal/mol energy into its Boltzmann weight at
// the given RT (kcal/mol).
func boltzmann(rt float64, e int) float64 {
	return math.Exp(-(float64(e) / 100.0) / rt)
}

// pseudoEnergy recovers a Boltzmann weight's equivalent energy in
// centi-kcal/mol, the inverse of boltzmann.
func pseudoEnergy(rt, weight float64) int {
	return int(math.Round(-rt * math.Log(weight) * 100.0))
}

// fillHybridZpq computes, for the fixed right boundary (j1,j2), the
// partition sum zPq(i1,i2) over every admissible chain of EInterLeft
// transitions from (i1,i2) to (j1,j2). Structurally identical to
// Mfe2d.fillHybridEpq, replacing its min with a Boltzmann-weighted sum.
func (p *MaxProb) fillHybridZpq(r1, r2shared rnasequence.IndexRange, j1, j2 int) map[pqKey]float64 {
	z := make(map[pqKey]float64)
	if !p.energy.AreComplementary(j1, j2) {
		return z
	}
	z[pqKey{j1, j2}] = boltzmann(p.rt, p.energy.EInit())

	for i1 := j1; i1 >= r1.From; i1-- {
		maxK1 := i1 + p.maxLoopSize1 + 1
		if maxK1 > j1 {
			maxK1 = j1
		}
		for i2 := j2; i2 >= r2shared.From; i2-- {
			if i1 == j1 && i2 == j2 {
				continue
			}
			if !p.energy.AreComplementary(i1, i2) {
				continue
			}
			maxK2 := i2 + p.maxLoopSize2 + 1
			if maxK2 > j2 {
				maxK2 = j2
			}
			var sum float64
			for k1 := i1 + 1; k1 <= maxK1; k1++ {
				for k2 := i2 + 1; k2 <= maxK2; k2++ {
					childZ, ok := z[pqKey{k1, k2}]
					if !ok {
						continue
					}
					sum += boltzmann(p.rt, p.energy.EInterLeft(i1, i2, k1, k2)) * childZ
				}
			}
			if sum > 0 {
				z[pqKey{i1, i2}] = sum
			}
		}
	}
	return z
}

// maxProbSite is the single highest-weight site seen so far.
type maxProbSite struct {
	weight         float64
	i1, j1, i2, j2 int
}

// Predict fills fillHybridZpq for every admissible right boundary, weighs
// each left anchor's chain by its terminal contribution, feeds every site's
// equivalent energy to the tracker, and reports the single site of largest
// weight within MaxE.
func (p *MaxProb) Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint) {
	seq2Len := p.energy.Seq2Original().Len()
	r2Shared := rnasequence.IndexRange{From: seq2Len - 1 - r2.To, To: seq2Len - 1 - r2.From}

	var z float64
	var best maxProbSite
	found := false

	for j1 := r1.From; j1 <= r1.To; j1++ {
		for j2 := r2Shared.From; j2 <= r2Shared.To; j2++ {
			zpq := p.fillHybridZpq(r1, r2Shared, j1, j2)
			for k, cellZ := range zpq {
				weight := cellZ * boltzmann(p.rt, terminalEnergy(p.energy, k.i1, k.i2, j1, j2))
				if weight <= 0 {
					continue
				}
				z += weight
				e := pseudoEnergy(p.rt, weight)
				p.tracker.UpdateOptimum(k.i1, j1, k.i2, j2, e)
				if e > outConstraint.MaxE {
					continue
				}
				if !found || weight > best.weight {
					best = maxProbSite{weight: weight, i1: k.i1, j1: j1, i2: k.i2, j2: j2}
					found = true
				}
			}
		}
	}
	_ = z // the ensemble sum is not used further; an attached tracker sums the per-site energies itself

	if !found {
		out.Add(noInteraction(p.energy))
		return
	}

	// reportMax > 1 is not supported: MaxProb always reports only its
	// single most probable site, matching PredictorMaxProb's restriction.
	pairsShared := [][2]int{{best.i1, best.i2}}
	if best.i1 != best.j1 || best.i2 != best.j2 {
		pairsShared = append(pairsShared, [2]int{best.j1, best.j2})
	}
	out.Add(pairsSharedToInteraction(p.energy, pairsShared, pseudoEnergy(p.rt, best.weight)))
}
