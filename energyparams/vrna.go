package energyparams

import (
	"gonum.org/v1/gonum/stat"

	"github.com/BackofenLab/intarnago/accessibility"
	"github.com/BackofenLab/intarnago/rnasequence"
)

// AccessibilityTable implements accessibility.PartitionModel: it estimates
// ED(i,j) from a local Boltzmann ensemble over intramolecular base pairs
// that could compete with leaving [i,j] unpaired, the same ensemble-based
// idea ViennaRNA's plfold uses (restricted here to a bounded local window
// rather than a full McCaskill partition function, to keep the computation
// a pure function of the stacking table above). For every complementary
// intramolecular pair (p,q) that encloses the query range from just
// outside it (i-window <= p < i and j < q <= j+window, with q-p >= 3), the
// Boltzmann weight exp(-ES(p,q)/RT) of its stack is accumulated; ED is
// RT times the log-sum-exp of those weights (clamped to [0, UpperBound]),
// so a range with many stable competing pairs is assigned a higher
// accessibility penalty than one with none.
func (n NearestNeighbor) AccessibilityTable(seq rnasequence.Sequence, maxLength int) (*accessibility.Table, error) {
	nLen := seq.Len()
	table := accessibility.NewTable(nLen, maxLength)
	rt := n.RT()

	const window = 4 // how far outside [i,j] a competing pair may reach

	for i := 0; i < nLen; i++ {
		width := table.MaxLength()
		for w := 0; w < width && i+w < nLen; w++ {
			j := i + w
			weights := competingWeights(n, seq, i, j, window, rt)
			if len(weights) == 0 {
				table.Set(i, j, 0)
				continue
			}
			logZ := stat.LogSumExp(weights)
			ed := int(rt * logZ * 100)
			if ed < 0 {
				ed = 0
			}
			if ed > accessibility.UpperBound {
				ed = accessibility.UpperBound
			}
			table.Set(i, j, ed)
		}
	}
	return table, nil
}

// competingWeights returns -ES(p,q)/RT for every complementary pair (p,q)
// with p at most `window` bases left of i and q at most `window` bases
// right of j, modeling the local structures enforcing [i,j] open would
// have to forgo.
func competingWeights(n NearestNeighbor, seq rnasequence.Sequence, i, j, window int, rt float64) []float64 {
	var weights []float64
	lo := i - window
	if lo < 0 {
		lo = 0
	}
	hi := j + window
	if hi >= seq.Len() {
		hi = seq.Len() - 1
	}
	for p := lo; p < i; p++ {
		for q := j + 1; q <= hi; q++ {
			if q-p < 3 {
				continue
			}
			if !rnasequence.AreComplementary(seq.CodeAt(p), seq.CodeAt(q)) {
				continue
			}
			e := n.ES(seq, seq, p, q)
			if e >= UpperBoundLocal {
				continue
			}
			weights = append(weights, -float64(e)/100.0/rt)
		}
	}
	return weights
}
