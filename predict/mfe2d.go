package predict

import (
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/seed"
	"github.com/BackofenLab/intarnago/tracker"
)

// Mfe2d is the exact predictor: for every fixed right boundary (j1,j2) it
// fills its own hybridE_pq table over every complementary left anchor
// (i1,i2) in the window, recomputed fresh per boundary rather than shared
// across boundaries the way Mfe2dHeuristic's single table is. This gives
// every reported site its own independently reconstructable chain, unlike
// Mfe2dHeuristic, which keeps only the single cheapest right-extension
// chain per left anchor and so cannot tell two different optima with the
// same left anchor apart. Ported from PredictorMfe2d's hybridE_pq
// recursion (fillHybridE_pq/traceback).
type Mfe2d struct {
	energy       *interaction.Energy
	maxLoopSize1 int
	maxLoopSize2 int
	tracker      tracker.Tracker
}

// NewMfe2d builds an exact predictor bounding every internal-loop/bulge
// transition to at most maxLoopSize1/maxLoopSize2 unpaired bases. A nil
// tracker defaults to tracker.NoOp.
func NewMfe2d(energy *interaction.Energy, maxLoopSize1, maxLoopSize2 int, t tracker.Tracker) *Mfe2d {
	return &Mfe2d{energy: energy, maxLoopSize1: maxLoopSize1, maxLoopSize2: maxLoopSize2, tracker: t}
}

// pqKey indexes a hybridE_pq table entry by its left anchor.
type pqKey struct{ i1, i2 int }

// pqCell is one hybridE_pq entry: the cheapest chain's energy and the next
// anchor it steps to (itself, at the fixed right boundary, for the base
// case).
type pqCell struct {
	e      int
	k1, k2 int
}

// fillHybridEpq computes hybridE_pq(i1,i2) for every complementary left
// anchor within r1 x r2shared, fixed to the right boundary (j1,j2): the
// cheapest chain of EInterLeft transitions from (i1,i2) to (j1,j2)
// inclusive. Recomputed from scratch for every (j1,j2) rather than kept
// resident as an n1*n2*n1*n2 table, the way PredictorMfe2d's own
// fillHybridE_pq recomputes one (j1,j2) slice at a time.
func (p *Mfe2d) fillHybridEpq(r1, r2shared rnasequence.IndexRange, j1, j2 int) map[pqKey]pqCell {
	h := make(map[pqKey]pqCell)
	if !p.energy.AreComplementary(j1, j2) {
		return h
	}
	h[pqKey{j1, j2}] = pqCell{e: p.energy.EInit(), k1: j1, k2: j2}

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
			best := pqCell{e: infE}
			for k1 := i1 + 1; k1 <= maxK1; k1++ {
				for k2 := i2 + 1; k2 <= maxK2; k2++ {
					child, ok := h[pqKey{k1, k2}]
					if !ok {
						continue
					}
					e := p.energy.EInterLeft(i1, i2, k1, k2) + child.e
					if e < best.e {
						best = pqCell{e: e, k1: k1, k2: k2}
					}
				}
			}
			if best.e < infE {
				h[pqKey{i1, i2}] = best
			}
		}
	}
	return h
}

// traceBackPq replays the chain hybridEpq chose from (i1,i2) to (j1,j2),
// returning the full ordered list of base pairs (shared frame).
func (p *Mfe2d) traceBackPq(h map[pqKey]pqCell, i1, i2, j1, j2 int) [][2]int {
	var pairs [][2]int
	for {
		pairs = append(pairs, [2]int{i1, i2})
		cell := h[pqKey{i1, i2}]
		if cell.k1 == i1 && cell.k2 == i2 {
			break
		}
		i1, i2 = cell.k1, cell.k2
	}
	return pairs
}

// Predict searches every fixed right boundary (j1,j2) in turn, filling its
// own hybridE_pq table and feeding every complementary left anchor's full
// reported energy to the optimum tracker, then re-fills just the
// boundaries of the reported sites to back-trace them.
func (p *Mfe2d) Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint) {
	seq2Len := p.energy.Seq2Original().Len()
	r2Shared := rnasequence.IndexRange{From: seq2Len - 1 - r2.To, To: seq2Len - 1 - r2.From}

	ot := newOptimumTracker(p.energy, outConstraint, p.tracker)

	for j1 := r1.From; j1 <= r1.To; j1++ {
		for j2 := r2Shared.From; j2 <= r2Shared.To; j2++ {
			h := p.fillHybridEpq(r1, r2Shared, j1, j2)
			for k, cell := range h {
				total := cell.e + terminalEnergy(p.energy, k.i1, k.i2, j1, j2)
				ot.updateOptimum(k.i1, j1, k.i2, j2, total)
			}
		}
	}

	sites := ot.topK()
	if len(sites) == 0 {
		out.Add(noInteraction(p.energy))
		return
	}
	for _, site := range sites {
		h := p.fillHybridEpq(r1, r2Shared, site.j1, site.j2)
		pairsShared := p.traceBackPq(h, site.i1, site.i2, site.j1, site.j2)
		out.Add(pairsSharedToInteraction(p.energy, pairsShared, site.e))
	}
}

// Mfe2dSeed is Mfe2d gated on seed.Handler: a reported interaction's left
// anchor (i1,i2) must itself be the start of an admissible seed, and the
// interaction continues from the seed's own right anchor onward via the
// plain hybridE_pq chain, the same precedent Mfe2dHeuristicSeed follows
// (case (i) of the seed-gated recursion; case (ii), a seed floating in the
// interior of an otherwise-unconstrained chain, is not reported — see
// DESIGN.md). The seed fragment's own interior base pairs are not
// individually reconstructed, only its left/right anchors and the traced
// continuation beyond it.
type Mfe2dSeed struct {
	core    *Mfe2d
	handler *seed.Handler
}

// NewMfe2dSeed builds a seed-gated exact predictor sharing energy/loop-size
// bounds with the plain exact predictor, plus a seed.Handler already
// configured with its own admissibility constraint.
func NewMfe2dSeed(energy *interaction.Energy, maxLoopSize1, maxLoopSize2 int, handler *seed.Handler, t tracker.Tracker) *Mfe2dSeed {
	return &Mfe2dSeed{core: NewMfe2d(energy, maxLoopSize1, maxLoopSize2, t), handler: handler}
}

func (p *Mfe2dSeed) Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint) {
	energy := p.core.energy
	seq2Len := energy.Seq2Original().Len()
	r2Shared := rnasequence.IndexRange{From: seq2Len - 1 - r2.To, To: seq2Len - 1 - r2.From}

	p.handler.FillSeed(r1, r2Shared)
	ot := newOptimumTracker(energy, outConstraint, p.core.tracker)

	for j1 := r1.From; j1 <= r1.To; j1++ {
		for j2 := r2Shared.From; j2 <= r2Shared.To; j2++ {
			h := p.core.fillHybridEpq(r1, r2Shared, j1, j2)
			if len(h) == 0 {
				continue
			}
			for i1 := r1.From; i1 <= j1; i1++ {
				for i2 := r2Shared.From; i2 <= j2; i2++ {
					s, ok := p.handler.GetSeed(i1, i2)
					if !ok || s.K1 > j1 || s.L2 > j2 {
						continue
					}
					cont, ok := h[pqKey{s.K1, s.L2}]
					if !ok {
						continue
					}
					contEnergy := cont.e - energy.EInit()
					total := s.Energy + contEnergy + terminalEnergy(energy, i1, i2, j1, j2)
					ot.updateOptimum(i1, j1, i2, j2, total)
				}
			}
		}
	}

	sites := ot.topK()
	if len(sites) == 0 {
		out.Add(noInteraction(energy))
		return
	}
	for _, site := range sites {
		h := p.core.fillHybridEpq(r1, r2Shared, site.j1, site.j2)
		s, _ := p.handler.GetSeed(site.i1, site.i2)
		pairsShared := [][2]int{{s.I1, s.J2}}
		if s.K1 != s.I1 || s.L2 != s.J2 {
			pairsShared = append(pairsShared, [2]int{s.K1, s.L2})
		}
		if s.K1 != site.j1 || s.L2 != site.j2 {
			tail := p.core.traceBackPq(h, s.K1, s.L2, site.j1, site.j2)
			if len(tail) > 1 {
				pairsShared = append(pairsShared, tail[1:]...)
			}
		}
		out.Add(pairsSharedToInteraction(energy, pairsShared, site.e))
	}
}
