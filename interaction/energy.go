// Package interaction composes a single EnergyProvider with each strand's
// Accessibility into the total interaction energy function the predict
// package's dynamic programs optimize, and defines the Interaction result
// type plus its dot-bracket/dot-bar rendering.
package interaction

import (
	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/energyparams"
	"github.com/BackofenLab/intarnago/rnasequence"
)

// Energy composes InteractionEnergy(...) = E_init + Σ E_interLeft +
// dangles + ends + ED1 + ED2 + energyAdd for a fixed pair (S1,S2). S2's
// accessibility is presented through accessibility.Reversed so that, from
// this type's perspective, both strands run 5'->3' and every coordinate it
// hands to energyparams.EnergyProvider is already in that common frame;
// only ToS2Original converts an S2 index back to S2's own frame.
type Energy struct {
	acc1     accessibility.Accessibility
	acc2     *accessibility.Reversed
	provider energyparams.EnergyProvider
	energyAdd int
}

// NewEnergy builds an Energy evaluator for two accessibilities sharing a
// thermodynamic model, plus a constant energyAdd term (e.g. a
// concentration-dependent correction applied uniformly to every reported
// interaction).
func NewEnergy(acc1 accessibility.Accessibility, acc2 accessibility.Accessibility, provider energyparams.EnergyProvider, energyAdd int) *Energy {
	return &Energy{acc1: acc1, acc2: accessibility.NewReversed(acc2), provider: provider, energyAdd: energyAdd}
}

// Seq1 returns the first strand, 5'->3'.
func (e *Energy) Seq1() rnasequence.Sequence { return e.acc1.Sequence() }

// Seq2 returns the second strand presented 5'->3' in the shared
// (reversed) coordinate frame this type and the predict DP operate in.
func (e *Energy) Seq2() rnasequence.Sequence { return e.acc2.Sequence() }

// Seq2Original returns the second strand in its own original 5'->3' frame
// (the frame its index appears in once converted back via ToS2Original),
// for callers building a reported Interaction's Seq2ID/Seq2Len.
func (e *Energy) Seq2Original() rnasequence.Sequence { return e.acc2.Inner().Sequence() }

// AreComplementary reports whether s1 position i1 can pair with s2
// position j2 (shared frame).
func (e *Energy) AreComplementary(i1, j2 int) bool {
	return rnasequence.AreComplementary(e.acc1.Sequence().CodeAt(i1), e.acc2.Sequence().CodeAt(j2))
}

// EInit returns the one-time interaction initiation energy.
func (e *Energy) EInit() int { return e.provider.EInit() }

// RT returns the thermodynamic model's gas-constant*temperature, for
// Boltzmann-weighting an energy into a probability.
func (e *Energy) RT() float64 { return e.provider.RT() }

// ES returns the stacking energy of extending a helix from (i1,j2) to
// (i1+1,j2+1) (shared frame; recall S2 already runs 5'->3' here).
func (e *Energy) ES(i1, j2 int) int {
	return e.provider.ES(e.acc1.Sequence(), e.Seq2Original(), i1, e.ToS2Original(j2))
}

// EInterLeft returns the bulge/internal-loop energy of a DP transition
// from (i1,j2) to (k1,l2), given the unpaired-base counts on each strand.
func (e *Energy) EInterLeft(i1, j2, k1, l2 int) int {
	bulgeLen1 := k1 - i1 - 1
	bulgeLen2 := l2 - j2 - 1
	return e.provider.EInterLeft(bulgeLen1, bulgeLen2, e.acc1.Sequence(), i1, k1, e.acc2.Sequence(), j2, l2)
}

// EDangleLeft/EDangleRight/EEndLeft/EEndRight score the interaction's
// outer termini.
func (e *Energy) EDangleLeft(i1, j2 int) int  { return e.provider.EDangleLeft(e.acc1.Sequence(), i1, e.acc2.Sequence(), j2) }
func (e *Energy) EDangleRight(k1, l2 int) int { return e.provider.EDangleRight(e.acc1.Sequence(), k1, e.acc2.Sequence(), l2) }
func (e *Energy) EEndLeft(i1, j2 int) int     { return e.provider.EEndLeft(e.acc1.Sequence(), i1, e.acc2.Sequence(), j2) }
func (e *Energy) EEndRight(k1, l2 int) int    { return e.provider.EEndRight(e.acc1.Sequence(), k1, e.acc2.Sequence(), l2) }

// ED1 returns S1's accessibility energy over [from,to].
func (e *Energy) ED1(from, to int) int { return e.acc1.ED(from, to) }

// ED2 returns S2's accessibility energy over [from,to] in the shared
// (reversed) coordinate frame.
func (e *Energy) ED2(from, to int) int { return e.acc2.ED(from, to) }

// EnergyAdd returns the constant correction term added to every
// interaction's total energy.
func (e *Energy) EnergyAdd() int { return e.energyAdd }

// MaxLength1/MaxLength2 report each strand's accessibility band width.
func (e *Energy) MaxLength1() int { return e.acc1.MaxLength() }
func (e *Energy) MaxLength2() int { return e.acc2.MaxLength() }

// ToS2Original converts a position in the shared (reversed) frame back to
// S2's original 5'->3' coordinate, used when emitting base pairs.
func (e *Energy) ToS2Original(j2 int) int {
	return e.acc2.Sequence().Len() - 1 - j2
}

// Total recomputes the total interaction energy of a base-pair list
// (i1,j2) given in the shared frame, independently of whatever DP produced
// it — used both by the predictors to score candidates and by tests to
// verify invariant 3 (totalEnergy equals the independently recomputed
// sum).
func (e *Energy) Total(basePairs [][2]int) int {
	if len(basePairs) == 0 {
		return 0
	}
	total := e.EInit()
	for k := 0; k+1 < len(basePairs); k++ {
		i1, j2 := basePairs[k][0], basePairs[k][1]
		k1, l2 := basePairs[k+1][0], basePairs[k+1][1]
		total += e.EInterLeft(i1, j2, k1, l2)
	}
	first := basePairs[0]
	last := basePairs[len(basePairs)-1]
	total += e.EDangleLeft(first[0], first[1])
	total += e.EDangleRight(last[0], last[1])
	total += e.EEndLeft(first[0], first[1])
	total += e.EEndRight(last[0], last[1])
	total += e.ED1(first[0], last[0])
	total += e.ED2(first[1], last[1])
	total += e.energyAdd
	return total
}
