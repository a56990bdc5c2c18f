package rnasequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func buildList(t *testing.T, ranges ...IndexRange) IndexRangeList {
	t.Helper()
	var l IndexRangeList
	for _, r := range ranges {
		require.NoError(t, l.Insert(r))
	}
	return l
}

// E4 from the specification's worked examples.
func TestIndexRangeListShiftAndReverse(t *testing.T) {
	l := buildList(t, IndexRange{1, 2}, IndexRange{4, 8}, IndexRange{10, 10})
	require.True(t, l.IsSorted())

	shifted := l.Shift(-5, 10)
	if diff := cmp.Diff([]IndexRange{{0, 3}, {5, 5}}, shifted.All()); diff != "" {
		t.Fatalf("shift mismatch (-want +got):\n%s", diff)
	}

	reversed, err := l.Reverse(11)
	require.NoError(t, err)
	if diff := cmp.Diff([]IndexRange{{0, 0}, {2, 6}, {8, 9}}, reversed.All()); diff != "" {
		t.Fatalf("reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexRangeListInsertRejectsOverlap(t *testing.T) {
	l := buildList(t, IndexRange{2, 5})
	require.Error(t, l.Insert(IndexRange{4, 6}))
	require.Error(t, l.Insert(IndexRange{0, 3}))
	require.NoError(t, l.Insert(IndexRange{6, 8}))
}

func TestIndexRangeListCoversAndOverlaps(t *testing.T) {
	l := buildList(t, IndexRange{2, 5}, IndexRange{10, 12})
	require.True(t, l.Covers(3))
	require.False(t, l.Covers(6))
	require.True(t, l.CoversRange(IndexRange{10, 11}))
	require.False(t, l.CoversRange(IndexRange{9, 11}))
	require.True(t, l.Overlaps(IndexRange{1, 2}))
	require.True(t, l.Overlaps(IndexRange{5, 6}))
	require.False(t, l.Overlaps(IndexRange{6, 9}))
}

func TestFromString(t *testing.T) {
	l, err := FromString("1-2,4-8,10-10")
	require.NoError(t, err)
	if diff := cmp.Diff([]IndexRange{{1, 2}, {4, 8}, {10, 10}}, l.All()); diff != "" {
		t.Fatalf("parse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromStringRejectsMalformed(t *testing.T) {
	_, err := FromString("1-2,garbage")
	require.Error(t, err)
}
