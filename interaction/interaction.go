package interaction

import (
	"fmt"
	"strings"
)

// BasePair is a single interaction base pair, (s1Index, s2Index), both in
// each strand's own original 5'->3' coordinate frame (S2's index is
// already converted back out of the shared/reversed DP frame).
type BasePair struct {
	S1, S2 int
}

// Interaction is a single predicted hybridization: an ordered list of base
// pairs plus the total energy they were scored at. Pairs are ordered by
// increasing S1 index; by antiparallel convention S2 indices then decrease.
type Interaction struct {
	Seq1ID      string
	Seq2ID      string
	Seq1Len     int
	Seq2Len     int
	BasePairs   []BasePair
	TotalEnergy int
}

// IsEmpty reports that no base pairs were found (no viable interaction).
func (ia Interaction) IsEmpty() bool { return len(ia.BasePairs) == 0 }

// NoInteraction builds the sentinel a Predictor reports through its Output
// collector when its DP finds nothing admissible: a zero-BasePairs
// Interaction carrying the two sequence identities and lengths so a
// collector can still describe which pair of strands came up empty.
func NoInteraction(seq1ID, seq2ID string, seq1Len, seq2Len int) Interaction {
	return Interaction{Seq1ID: seq1ID, Seq2ID: seq2ID, Seq1Len: seq1Len, Seq2Len: seq2Len}
}

// Range1/Range2 return the [from,to] span each strand contributes to the
// interaction.
func (ia Interaction) Range1() (from, to int) {
	if ia.IsEmpty() {
		return -1, -1
	}
	return ia.BasePairs[0].S1, ia.BasePairs[len(ia.BasePairs)-1].S1
}

func (ia Interaction) Range2() (from, to int) {
	if ia.IsEmpty() {
		return -1, -1
	}
	// S2 indices decrease as S1 indices increase (antiparallel).
	lo, hi := ia.BasePairs[0].S2, ia.BasePairs[0].S2
	for _, bp := range ia.BasePairs {
		if bp.S2 < lo {
			lo = bp.S2
		}
		if bp.S2 > hi {
			hi = bp.S2
		}
	}
	return lo, hi
}

// IsValid checks the structural invariants every reported Interaction must
// satisfy: pairs strictly increasing in S1, strictly decreasing in S2 (the
// antiparallel, non-crossing nesting condition), and all indices in range.
func (ia Interaction) IsValid() error {
	for k, bp := range ia.BasePairs {
		if bp.S1 < 0 || bp.S1 >= ia.Seq1Len || bp.S2 < 0 || bp.S2 >= ia.Seq2Len {
			return fmt.Errorf("interaction: base pair %d (%d,%d) out of sequence bounds", k, bp.S1, bp.S2)
		}
		if k > 0 {
			prev := ia.BasePairs[k-1]
			if bp.S1 <= prev.S1 || bp.S2 >= prev.S2 {
				return fmt.Errorf("interaction: base pairs %d,%d are not consistently ordered ((%d,%d) then (%d,%d))", k-1, k, prev.S1, prev.S2, bp.S1, bp.S2)
			}
		}
	}
	return nil
}

// DotBracket renders the interaction as two dot-bracket strings (S1's view
// and S2's view), '(' / ')' marking paired positions and '.' marking
// unpaired ones, the way Interaction::dotBracket does for human-readable
// reports.
func (ia Interaction) DotBracket() (s1, s2 string) {
	b1 := make([]byte, ia.Seq1Len)
	b2 := make([]byte, ia.Seq2Len)
	for i := range b1 {
		b1[i] = '.'
	}
	for i := range b2 {
		b2[i] = '.'
	}
	for _, bp := range ia.BasePairs {
		b1[bp.S1] = '('
		b2[bp.S2] = ')'
	}
	return string(b1), string(b2)
}

// DotBar renders a single-line "i1&j1 ... dotBracket" summary combining
// both strands' dot-bracket views with their boundary indices, matching
// IntaRNA's compact "dot-bar" report format.
func (ia Interaction) DotBar() string {
	if ia.IsEmpty() {
		return ""
	}
	s1, s2 := ia.DotBracket()
	from1, to1 := ia.Range1()
	from2, to2 := ia.Range2()
	var b strings.Builder
	fmt.Fprintf(&b, "%d-%d&%d-%d|%s&%s|%d", from1+1, to1+1, from2+1, to2+1, s1[from1:to1+1], s2[from2:to2+1], ia.TotalEnergy)
	return b.String()
}
