package recursemyers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/snake"
)

func testParams() Params {
	return Params{
		QuickDiffThreshold: 8,
		Lookahead:          5,
		CorridorWidth:      5,
		RarityThreshold:    3,
	}
}

func replay(t *testing.T, old, new []int, script edits.Script) {
	t.Helper()
	oi, ni := 0, 0
	for _, op := range script {
		switch op.Kind {
		case edits.Equal:
			require.Equal(t, old[oi], op.Symbol)
			require.Equal(t, new[ni], op.Symbol)
			oi++
			ni++
		case edits.Remove:
			require.Equal(t, old[oi], op.Symbol)
			oi++
		case edits.Add:
			require.Equal(t, new[ni], op.Symbol)
			ni++
		}
	}
	require.Equal(t, len(old), oi)
	require.Equal(t, len(new), ni)
}

func TestDiffBothEmpty(t *testing.T) {
	var buf snake.Buffers
	got, err := Diff(nil, nil, 0, 0, 0, 0, testParams(), &buf)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDiffSmallGapUsesExactMyers(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 4, 3}
	var buf snake.Buffers
	got, err := Diff(old, new, 0, len(old), 0, len(new), testParams(), &buf)
	require.NoError(t, err)
	replay(t, old, new, got)
}

func TestDiffLargeGapRecurses(t *testing.T) {
	old := make([]int, 40)
	new := make([]int, 40)
	for i := range old {
		old[i] = i
		new[i] = i
	}
	// Introduce scattered differences so the driver must split more than once.
	old[5] = -1
	new[20] = -2

	var buf snake.Buffers
	got, err := Diff(old, new, 0, len(old), 0, len(new), testParams(), &buf)
	require.NoError(t, err)
	replay(t, old, new, got)
}

// Regression: an unequal-length gap above QuickDiffThreshold forces the
// driver through snake.Find rather than myersexact, exercising the
// odd/even-delta overlap branches spec.md §8 property 7 constrains.
func TestDiffUnequalLengthUsesSnake(t *testing.T) {
	old := make([]int, 30)
	new := make([]int, 24)
	for i := range old {
		old[i] = i
	}
	for i := range new {
		new[i] = i + 3
	}

	var buf snake.Buffers
	got, err := Diff(old, new, 0, len(old), 0, len(new), testParams(), &buf)
	require.NoError(t, err)
	replay(t, old, new, got)
}

func TestDiffInvalidOldRangeReturnsRangeError(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 2, 3}
	var buf snake.Buffers
	_, err := Diff(old, new, 2, 1, 0, len(new), testParams(), &buf)
	require.Error(t, err)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "old", rangeErr.Component)
}

func TestDiffInvalidNewRangeReturnsRangeError(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 2, 3}
	var buf snake.Buffers
	_, err := Diff(old, new, 0, len(old), 0, 10, testParams(), &buf)
	require.Error(t, err)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "new", rangeErr.Component)
}

func TestValidateRejectsBadSnake(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{9, 9, 9}
	assert.False(t, validate(old, new, snake.Snake{X: 0, Y: 0, U: 1, V: 1}))
}

func TestValidateAcceptsGoodSnake(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 2, 3}
	assert.True(t, validate(old, new, snake.Snake{X: 0, Y: 0, U: 3, V: 3}))
}
