package interaction

import (
	"fmt"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertDotBracketEqual diffs two dot-bracket strings on mismatch, the way
// seqhash_test.go's TestLeastRotation pretty-prints a diffmatchpatch diff
// instead of a bare string inequality when a mutation test fails.
func assertDotBracketEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("dot-bracket mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func sampleInteraction() Interaction {
	return Interaction{
		Seq1ID:      "s1",
		Seq2ID:      "s2",
		Seq1Len:     4,
		Seq2Len:     4,
		BasePairs:   []BasePair{{S1: 0, S2: 3}, {S1: 1, S2: 2}},
		TotalEnergy: -200,
	}
}

func TestDotBracket(t *testing.T) {
	ia := sampleInteraction()
	s1, s2 := ia.DotBracket()
	assertDotBracketEqual(t, "((..", s1)
	assertDotBracketEqual(t, "..))", s2)
}

func TestDotBar(t *testing.T) {
	ia := sampleInteraction()
	assert.Equal(t, fmt.Sprintf("1-2&3-4|((&))|-200"), ia.DotBar())
}

func TestRangesEmptyInteraction(t *testing.T) {
	var ia Interaction
	from1, to1 := ia.Range1()
	assert.Equal(t, -1, from1)
	assert.Equal(t, -1, to1)
	assert.True(t, ia.IsEmpty())
	assert.Equal(t, "", ia.DotBar())
}

func TestIsValidRejectsOutOfOrderPairs(t *testing.T) {
	ia := Interaction{
		Seq1Len:   4,
		Seq2Len:   4,
		BasePairs: []BasePair{{S1: 1, S2: 2}, {S1: 0, S2: 3}},
	}
	require.Error(t, ia.IsValid())
}

func TestIsValidRejectsOutOfBounds(t *testing.T) {
	ia := Interaction{
		Seq1Len:   4,
		Seq2Len:   4,
		BasePairs: []BasePair{{S1: 0, S2: 9}},
	}
	require.Error(t, ia.IsValid())
}

func TestIsValidAcceptsWellOrderedPairs(t *testing.T) {
	ia := sampleInteraction()
	require.NoError(t, ia.IsValid())
}
