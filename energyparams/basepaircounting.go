package energyparams

import "github.com/BackofenLab/intarnago/rnasequence"

// BasePairCounting is the minimal EnergyProvider used to make the
// specification's worked examples (E1-E3) exact: initiation costs -1
// kcal/mol (-100 in centi-kcal units) and every consecutive-pair
// transition (stack, bulge, or internal loop alike) costs another -1.
// Every other contribution (dangles, ends) is 0. A fresh interaction of N
// base pairs therefore scores exactly -N kcal/mol: one initiation plus
// N-1 transitions.
type BasePairCounting struct{}

// NewBasePairCounting returns the base-pair-counting provider.
func NewBasePairCounting() BasePairCounting { return BasePairCounting{} }

func (BasePairCounting) RT() float64 { return 1.0 }
func (BasePairCounting) EInit() int  { return -100 }

// ES reports the pure stacking energy between two immediately adjacent
// pairs, independent of the bulge/internal-loop machinery EInterLeft
// covers (seed.SeedHandler scores its fragments through EInterLeft).
func (BasePairCounting) ES(s1, s2 rnasequence.Sequence, i1, j1 int) int {
	if rnasequence.AreComplementary(s1.CodeAt(i1), s2.CodeAt(j1)) {
		return -100
	}
	return 0
}

func (BasePairCounting) EInterLeft(bulgeLen1, bulgeLen2 int, s1 rnasequence.Sequence, i1, k1 int, s2 rnasequence.Sequence, j2, l2 int) int {
	return -100
}

func (BasePairCounting) EDangleLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int {
	return 0
}

func (BasePairCounting) EDangleRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int {
	return 0
}

func (BasePairCounting) EEndLeft(s1 rnasequence.Sequence, i1 int, s2 rnasequence.Sequence, j2 int) int {
	return 0
}

func (BasePairCounting) EEndRight(s1 rnasequence.Sequence, k1 int, s2 rnasequence.Sequence, l2 int) int {
	return 0
}
