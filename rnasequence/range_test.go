package rnasequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRangeShiftClamps(t *testing.T) {
	r := IndexRange{From: 2, To: 5}
	assert.Equal(t, IndexRange{From: 0, To: 3}, r.Shift(-2, 10))
	assert.Equal(t, IndexRange{From: 4, To: 7}, r.Shift(2, 10))
	assert.True(t, r.Shift(-10, 10).IsNA())
}

func TestIndexRangeShiftClampsUpper(t *testing.T) {
	r := IndexRange{From: 8, To: 9}
	assert.Equal(t, IndexRange{From: 10, To: 10}, r.Shift(5, 10))
}

func TestIndexRangeOrdering(t *testing.T) {
	assert.True(t, IndexRange{From: 1, To: 2}.Less(IndexRange{From: 1, To: 3}))
	assert.True(t, IndexRange{From: 1, To: 5}.Less(IndexRange{From: 2, To: 0}))
	assert.False(t, IndexRange{From: 3, To: 0}.Less(IndexRange{From: 1, To: 5}))
}

func TestIndexRangeAscendingDescending(t *testing.T) {
	assert.True(t, IndexRange{From: 0, To: 3}.IsAscending())
	assert.True(t, IndexRange{From: 3, To: 0}.IsDescending())
}
