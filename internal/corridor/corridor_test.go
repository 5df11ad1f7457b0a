package corridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/edits"
)

func TestDiffAllEqual(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{1, 2, 3}
	got := Diff(old, new, 0, 3, 0, 3, 10, 10, 3)
	for _, op := range got {
		assert.Equal(t, edits.Equal, op.Kind)
	}
}

func TestDiffEmptyOld(t *testing.T) {
	new := []int{1, 2, 3}
	got := Diff(nil, new, 0, 0, 0, 3, 10, 10, 3)
	require.Len(t, got, 3)
	for _, op := range got {
		assert.Equal(t, edits.Add, op.Kind)
	}
}

func TestDiffEmptyNew(t *testing.T) {
	old := []int{1, 2, 3}
	got := Diff(old, nil, 0, 3, 0, 0, 10, 10, 3)
	require.Len(t, got, 3)
	for _, op := range got {
		assert.Equal(t, edits.Remove, op.Kind)
	}
}

func TestDiffPathologicalRatioShortCircuits(t *testing.T) {
	old := make([]int, 600)
	for i := range old {
		old[i] = i
	}
	new := []int{-1}

	got := Diff(old, new, 0, len(old), 0, len(new), 10, 10, 3)
	require.Len(t, got, len(old)+len(new))
	assert.Equal(t, edits.Remove, got[0].Kind)
	assert.Equal(t, edits.Add, got[len(got)-1].Kind)
}

func TestDiffProducesValidScript(t *testing.T) {
	old := []int{1, 2, 3, 4, 5, 6, 7, 8}
	new := []int{1, 9, 3, 4, 6, 7, 8, 10}

	got := Diff(old, new, 0, len(old), 0, len(new), 5, 5, 3)

	var oi, ni int
	for _, op := range got {
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
	assert.Equal(t, len(old), oi)
	assert.Equal(t, len(new), ni)
}
