package tracker

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PartitionTracker accumulates a Boltzmann partition function over every
// optimum update, for ensemble-level statistics (e.g. an overall
// hybridization probability) rather than a single MFE structure. Uses
// log-sum-exp accumulation to stay numerically stable across many terms of
// widely varying magnitude, the way a McCaskill-style ensemble sum would.
type PartitionTracker struct {
	rt      float64
	logZ    float64
	seeded  bool
	weights []float64
}

// NewPartitionTracker builds a tracker that converts energies to Boltzmann
// weights using the given RT (kcal/mol).
func NewPartitionTracker(rt float64) *PartitionTracker {
	return &PartitionTracker{rt: rt}
}

func (p *PartitionTracker) UpdateOptimum(i1, j1, i2, j2, energy int) {
	p.weights = append(p.weights, -float64(energy)/100.0/p.rt)
}

// LogZ returns the log partition function accumulated so far. An empty
// tracker reads as -Inf (a Boltzmann weight of 0), not 0 (a weight of 1).
func (p *PartitionTracker) LogZ() float64 {
	if len(p.weights) == 0 {
		return math.Inf(-1)
	}
	return stat.LogSumExp(p.weights)
}
