package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimCommonPrefixAndSuffix(t *testing.T) {
	old := []int{1, 2, 3, 9, 5, 6}
	new := []int{1, 2, 3, 7, 5, 6}

	trimmed := Trim(old, new)
	require.Len(t, trimmed.Prefix, 3)
	require.Len(t, trimmed.Suffix, 2)
	assert.Equal(t, Gap{OldStart: 3, OldEnd: 4, NewStart: 3, NewEnd: 4}, trimmed.Interior)
}

func TestTrimNoOverlapBetweenPrefixAndSuffix(t *testing.T) {
	old := []int{1, 1, 1}
	new := []int{1, 1}

	trimmed := Trim(old, new)
	// Prefix and suffix trimming must not double-count the shared "1"s.
	assert.True(t, trimmed.Interior.OldStart <= trimmed.Interior.OldEnd)
	assert.True(t, trimmed.Interior.NewStart <= trimmed.Interior.NewEnd)
}

func TestTrimIdenticalSequences(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 2, 3}

	trimmed := Trim(old, new)
	assert.True(t, trimmed.Interior.Empty())
	assert.Len(t, trimmed.Prefix, 3)
}

func TestTrimNoCommonAffix(t *testing.T) {
	old := []int{1, 2}
	new := []int{3, 4}

	trimmed := Trim(old, new)
	assert.Empty(t, trimmed.Prefix)
	assert.Empty(t, trimmed.Suffix)
	assert.Equal(t, Gap{OldStart: 0, OldEnd: 2, NewStart: 0, NewEnd: 2}, trimmed.Interior)
}

func TestGapLengths(t *testing.T) {
	g := Gap{OldStart: 1, OldEnd: 4, NewStart: 2, NewEnd: 2}
	assert.Equal(t, 3, g.OldLen())
	assert.Equal(t, 0, g.NewLen())
	assert.False(t, g.Empty())
}
