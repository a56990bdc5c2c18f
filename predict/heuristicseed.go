package predict

import (
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/seed"
	"github.com/BackofenLab/intarnago/tracker"
)

// Mfe2dHeuristicSeed is Mfe2dHeuristic gated on seed.Handler: every
// reported interaction must contain the seed's fixed anchor-to-anchor
// fragment, continuing only from the seed's own right anchor onward
// rather than re-optimizing across it. The seed fragment's own interior
// base pairs are not individually reconstructed in the reported
// Interaction (see DESIGN.md); only its left and right anchor pairs and
// the traced continuation beyond it are.
type Mfe2dHeuristicSeed struct {
	core    *Mfe2dHeuristic
	handler *seed.Handler
}

// NewMfe2dHeuristicSeed builds a seed-gated heuristic predictor sharing
// energy/loop-size bounds with the plain heuristic predictor, plus a
// seed.Handler already configured with its own admissibility constraint.
func NewMfe2dHeuristicSeed(energy *interaction.Energy, maxLoopSize1, maxLoopSize2 int, handler *seed.Handler, t tracker.Tracker) *Mfe2dHeuristicSeed {
	return &Mfe2dHeuristicSeed{
		core:    NewMfe2dHeuristic(energy, maxLoopSize1, maxLoopSize2, t),
		handler: handler,
	}
}

func (p *Mfe2dHeuristicSeed) Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint) {
	energy := p.core.energy
	seq2Len := energy.Seq2Original().Len()
	r2Shared := rnasequence.IndexRange{From: seq2Len - 1 - r2.To, To: seq2Len - 1 - r2.From}

	ot := newOptimumTracker(energy, outConstraint, p.core.tracker)
	matrix := p.core.fillHybridE(r1, r2Shared, ot)
	p.handler.FillSeed(r1, r2Shared)

	seedOt := newOptimumTracker(energy, outConstraint, nil)
	for i1 := r1.From; i1 <= r1.To; i1++ {
		for j2 := r2Shared.From; j2 <= r2Shared.To; j2++ {
			s, ok := p.handler.GetSeed(i1, j2)
			if !ok {
				continue
			}
			rightI1, rightJ2 := s.K1, s.L2
			contEnergy := 0
			if s.K1-r1.From < len(matrix) && s.L2-r2Shared.From < len(matrix[0]) {
				child := matrix[s.K1-r1.From][s.L2-r2Shared.From]
				if child.e < infE {
					contEnergy = child.e - energy.EInit()
					rightI1, rightJ2 = child.j1, child.j2
				}
			}
			total := s.Energy + contEnergy + terminalEnergy(energy, i1, j2, rightI1, rightJ2)
			seedOt.updateOptimum(i1, rightI1, j2, rightJ2, total)
		}
	}

	sites := seedOt.topK()
	if len(sites) == 0 {
		out.Add(noInteraction(energy))
		return
	}
	for _, site := range sites {
		s, _ := p.handler.GetSeed(site.i1, site.i2)
		pairsShared := [][2]int{{s.I1, s.J2}}
		if s.K1 != s.I1 || s.L2 != s.J2 {
			pairsShared = append(pairsShared, [2]int{s.K1, s.L2})
		}
		if s.K1 != site.j1 || s.L2 != site.j2 {
			tail := p.core.traceBack(matrix, r1, r2Shared, s.K1, s.L2)
			if len(tail) > 1 {
				pairsShared = append(pairsShared, tail[1:]...)
			}
		}
		out.Add(p.core.toInteraction(pairsShared, site.e))
	}
}
