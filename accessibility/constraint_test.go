package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E5 from the specification's worked examples.
func TestParseDotBracketE5(t *testing.T) {
	c, err := ParseDotBracket("..bb..xxp.bb", 0)
	require.NoError(t, err)

	assert.True(t, c.IsUnconstrained(0))
	assert.True(t, c.IsBlocked(3))
	assert.False(t, c.IsAccessible(3))
	assert.False(t, c.IsUnconstrained(3))
	assert.True(t, c.IsAccessible(6))
	assert.True(t, c.IsPaired(8))
	assert.True(t, c.IsBlocked(10))
}

func TestParseDotBracketRejectsUnknownSymbol(t *testing.T) {
	_, err := ParseDotBracket("..z.", 0)
	require.Error(t, err)
}

func TestParseRegionList(t *testing.T) {
	c, err := ParseRegionList("b:1-2,4-4;x:6-7", 12, 0)
	require.NoError(t, err)
	assert.True(t, c.IsBlocked(0))
	assert.True(t, c.IsBlocked(1))
	assert.True(t, c.IsBlocked(3))
	assert.True(t, c.IsAccessible(5))
	assert.True(t, c.IsAccessible(6))
}

func TestConstraintDisjoint(t *testing.T) {
	c, err := ParseDotBracket("bxp.", 0)
	require.NoError(t, err)
	assert.False(t, c.IsUnconstrained(3))
	assert.True(t, c.Blocked.Len() == 1 && c.Accessible.Len() == 1 && c.Paired.Len() == 1)
}

func TestMaxBpSpanDefaultsToLength(t *testing.T) {
	c := NewConstraint(20, 0)
	assert.Equal(t, 20, c.MaxBpSpan)
	c2 := NewConstraint(20, 5)
	assert.Equal(t, 5, c2.MaxBpSpan)
}
