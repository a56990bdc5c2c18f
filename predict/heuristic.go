package predict

import (
	"github.com/BackofenLab/intarnago/interaction"
	"github.com/BackofenLab/intarnago/output"
	"github.com/BackofenLab/intarnago/rnasequence"
	"github.com/BackofenLab/intarnago/tracker"
)

// Mfe2dHeuristic is the fast heuristic predictor: for every left anchor
// (i1,j2) it keeps only the single cheapest chain of right extensions
// rather than exploring every admissible continuation, trading exhaustive
// suboptimal enumeration for O(n1*n2) space. Ported from
// PredictorMfe2dHeuristic's fillHybridE/traceBack.
type Mfe2dHeuristic struct {
	energy       *interaction.Energy
	maxLoopSize1 int
	maxLoopSize2 int
	tracker      tracker.Tracker
}

// NewMfe2dHeuristic builds a heuristic predictor that bounds every
// bulge/internal-loop transition to at most maxLoopSize1 unpaired bases on
// S1 and maxLoopSize2 on S2. A nil tracker defaults to tracker.NoOp.
func NewMfe2dHeuristic(energy *interaction.Energy, maxLoopSize1, maxLoopSize2 int, t tracker.Tracker) *Mfe2dHeuristic {
	return &Mfe2dHeuristic{energy: energy, maxLoopSize1: maxLoopSize1, maxLoopSize2: maxLoopSize2, tracker: t}
}

// hCell is one hybridE matrix entry: the cheapest chain of EInterLeft
// transitions starting at this cell's (implicit) left anchor, plus the
// (j1,j2) right anchor it resolves to, matching BestInteraction.
type hCell struct {
	e      int
	j1, j2 int
}

const noAnchor = -1

// Predict searches r1 (S1 coordinates) against r2 (S2's own original
// coordinates) for minimum-free-energy interactions and reports up to
// outConstraint.ReportMax of them to out, best energy first.
func (p *Mfe2dHeuristic) Predict(r1, r2 rnasequence.IndexRange, out output.Output, outConstraint OutputConstraint) {
	seq2Len := p.energy.Seq2Original().Len()
	r2Shared := rnasequence.IndexRange{From: seq2Len - 1 - r2.To, To: seq2Len - 1 - r2.From}

	ot := newOptimumTracker(p.energy, outConstraint, p.tracker)
	matrix := p.fillHybridE(r1, r2Shared, ot)

	sites := ot.topK()
	if len(sites) == 0 {
		out.Add(noInteraction(p.energy))
		return
	}
	for _, site := range sites {
		pairsShared := p.traceBack(matrix, r1, r2Shared, site.i1, site.i2)
		out.Add(p.toInteraction(pairsShared, site.e))
	}
}

// fillHybridE computes, for every complementary left anchor (i1,j2) in
// r1 x r2shared, the cheapest chain of EInterLeft transitions reaching some
// right anchor (j1,j2), filling i1 and j2 in decreasing order so every
// right extension a cell considers is already resolved. Every resolved
// cell's full reported energy (dangles, ends, ED1/ED2, energyAdd folded
// in) is handed to ot.updateOptimum, mirroring
// PredictorMfe2dHeuristic::fillHybridE.
func (p *Mfe2dHeuristic) fillHybridE(r1, r2shared rnasequence.IndexRange, ot *optimumTracker) [][]hCell {
	n1 := r1.To - r1.From + 1
	n2 := r2shared.To - r2shared.From + 1
	matrix := make([][]hCell, n1)
	for i := range matrix {
		matrix[i] = make([]hCell, n2)
		for k := range matrix[i] {
			matrix[i][k] = hCell{e: infE, j1: noAnchor, j2: noAnchor}
		}
	}

	for i1 := r1.To; i1 >= r1.From; i1-- {
		maxK1 := i1 + p.maxLoopSize1 + 1
		if maxK1 > r1.To {
			maxK1 = r1.To
		}
		for j2 := r2shared.To; j2 >= r2shared.From; j2-- {
			if !p.energy.AreComplementary(i1, j2) {
				continue
			}
			cell := hCell{e: p.energy.EInit(), j1: i1, j2: j2}

			maxL2 := j2 + p.maxLoopSize2 + 1
			if maxL2 > r2shared.To {
				maxL2 = r2shared.To
			}
			for k1 := i1 + 1; k1 <= maxK1; k1++ {
				row := matrix[k1-r1.From]
				for l2 := j2 + 1; l2 <= maxL2; l2++ {
					child := row[l2-r2shared.From]
					if child.e >= infE {
						continue
					}
					e := p.energy.EInterLeft(i1, j2, k1, l2) + child.e
					if e < cell.e {
						cell = hCell{e: e, j1: child.j1, j2: child.j2}
					}
				}
			}
			matrix[i1-r1.From][j2-r2shared.From] = cell

			total := cell.e + terminalEnergy(p.energy, i1, j2, cell.j1, cell.j2)
			ot.updateOptimum(i1, cell.j1, j2, cell.j2, total)
		}
	}
	return matrix
}

// traceBack replays the chain of extensions fillHybridE chose for the
// anchor (i1,j2) (shared frame), returning the full ordered list of base
// pairs from the left anchor to its recorded right anchor.
func (p *Mfe2dHeuristic) traceBack(matrix [][]hCell, r1, r2shared rnasequence.IndexRange, i1, j2 int) [][2]int {
	var pairs [][2]int
	for {
		pairs = append(pairs, [2]int{i1, j2})
		cell := matrix[i1-r1.From][j2-r2shared.From]
		if cell.j1 == i1 && cell.j2 == j2 {
			break
		}

		maxK1 := i1 + p.maxLoopSize1 + 1
		if maxK1 > r1.To {
			maxK1 = r1.To
		}
		maxL2 := j2 + p.maxLoopSize2 + 1
		if maxL2 > r2shared.To {
			maxL2 = r2shared.To
		}

		found := false
		for k1 := i1 + 1; k1 <= maxK1 && !found; k1++ {
			row := matrix[k1-r1.From]
			for l2 := j2 + 1; l2 <= maxL2; l2++ {
				child := row[l2-r2shared.From]
				if child.e >= infE || child.j1 != cell.j1 || child.j2 != cell.j2 {
					continue
				}
				if p.energy.EInterLeft(i1, j2, k1, l2)+child.e == cell.e {
					i1, j2 = k1, l2
					found = true
					break
				}
			}
		}
		if !found {
			break
		}
	}
	return pairs
}

// toInteraction converts a shared-frame base-pair chain into a reported
// Interaction, converting every S2 index back to S2's own coordinate
// frame via Energy.ToS2Original.
func (p *Mfe2dHeuristic) toInteraction(pairsShared [][2]int, totalEnergy int) interaction.Interaction {
	return pairsSharedToInteraction(p.energy, pairsShared, totalEnergy)
}
