package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

func TestPatienceLISOrdersByOldThenNew(t *testing.T) {
	pairs := []patiencePair{
		{oldIdx: 0, newIdx: 5},
		{oldIdx: 1, newIdx: 0},
		{oldIdx: 2, newIdx: 6},
		{oldIdx: 3, newIdx: 7},
	}
	lis := patienceLIS(pairs)
	require.NotEmpty(t, lis)
	for i := 1; i < len(lis); i++ {
		assert.Less(t, pairs[lis[i-1]].newIdx, pairs[lis[i]].newIdx)
	}
	// The longest increasing runs here have length 3 (indices 0,2,3 and
	// 1,2,3); patienceLIS returns 1,2,3 (newIdx 0,6,7).
	assert.Len(t, lis, 3)
}

func TestUniquePairsOnlyKeepsSingleOccurrence(t *testing.T) {
	old := []int{1, 2, 2, 3}
	new := []int{3, 2, 2, 1}
	pairs := uniquePairs(old, new, 0, len(old), 0, len(new))
	require.Len(t, pairs, 2) // symbol 2 occurs twice on both sides, excluded
	for _, p := range pairs {
		assert.Contains(t, []int{1, 3}, old[p.oldIdx])
	}
}

func TestPatienceDiffProducesValidScript(t *testing.T) {
	oldStr := []string{"alpha", "common", "beta", "common", "gamma"}
	newStr := []string{"alpha", "delta", "common", "epsilon", "gamma"}
	old, new, _ := token.Tokenize(oldStr, newStr)

	cfg := engconf.Default
	got, err := PatienceDiff(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}

func TestPatienceDiffFallsBackWithoutUniqueAnchors(t *testing.T) {
	old, new, _ := token.Tokenize([]string{"x", "x", "x"}, []string{"x", "x", "x", "y"})
	cfg := engconf.Default
	got, err := PatienceDiff(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}
