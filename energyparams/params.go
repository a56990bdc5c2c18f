// Package energyparams supplies the thermodynamic building blocks the
// interaction and predict packages compose into a total hybridization
// energy: base-pair stacking, terminal AU/GU penalties, dangling-end
// stabilization, and the loop-length penalty used for bulges/internal
// loops between consecutive interaction base pairs. Two interchangeable
// providers are offered: BasePairCounting (a minimal every-pair-counts
// model used to make the specification's worked examples exact) and
// NearestNeighbor (a Turner-nearest-neighbor-style model, the default for
// real predictions).
package energyparams

import "github.com/BackofenLab/intarnago/rnasequence"

// EnergyProvider is the thermodynamic model InteractionEnergy composes
// against. All energies are returned in centi-kcal/mol (hundredths of a
// kcal/mol) as integers, matching the scaled-integer convention used
// throughout this module for saturated arithmetic.
type EnergyProvider interface {
	// RT returns the gas-constant*temperature product used to convert
	// between energies and Boltzmann weights.
	RT() float64
	// EInit is the initiation energy charged once per interaction.
	EInit() int
	// ES is the stacking energy of two immediately adjacent interaction
	// base pairs (i1,j1) stacked onto (i1+1,j1-1): a helix extension with
	// no unpaired nucleotides on either side.
	ES(bp1, bp2 rnasequence.Sequence, i1, j1 int) int
	// EInterLeft is the energy of an internal loop/bulge between two
	// consecutive interaction base pairs, given the number of unpaired
	// bases contributed by each strand (bulgeLen1, bulgeLen2) and the
	// four loop-closing bases.
	EInterLeft(bulgeLen1, bulgeLen2 int, s1 rnasequence.Sequence, i1, k1 int, s2 rnasequence.Sequence, j2, l2 int) int
	// EDangleLeft/EDangleRight give the single-nucleotide stabilization at
	// the 5' and 3' dangling ends of the interaction, respectively.
	EDangleLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int
	EDangleRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int
	// EEndLeft/EEndRight give the terminal-pair penalty (e.g. AU/GU
	// closing penalty) charged at each end of the interaction.
	EEndLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int
	EEndRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int
}

// pairCode maps an ordered (5', 3') base pair to a 1-based index into the
// canonical six-pair table {CG,GC,GU,UG,AU,UA}; 0 means "not a valid pair",
// mirroring Vienna/IntaRNA's bp_idx encoding used to index stacking and
// dangle tables.
func pairCode(a, b uint8) int {
	switch {
	case a == rnasequence.CodeC && b == rnasequence.CodeG:
		return 1
	case a == rnasequence.CodeG && b == rnasequence.CodeC:
		return 2
	case a == rnasequence.CodeG && b == rnasequence.CodeU:
		return 3
	case a == rnasequence.CodeU && b == rnasequence.CodeG:
		return 4
	case a == rnasequence.CodeA && b == rnasequence.CodeU:
		return 5
	case a == rnasequence.CodeU && b == rnasequence.CodeA:
		return 6
	default:
		return 0
	}
}

const numPairs = 6
