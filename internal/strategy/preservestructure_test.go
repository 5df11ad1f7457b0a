package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

func TestPreserveStructureProducesValidScript(t *testing.T) {
	oldStr := []string{"line1", "line2", "line3", "line4", "line5"}
	newStr := []string{"line1", "lineX", "line3", "lineY", "line5"}
	old, new, _ := token.Tokenize(oldStr, newStr)

	cfg := engconf.Default
	got, err := PreserveStructure(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}

func TestPreserveStructureSmallWindowSkipsL1(t *testing.T) {
	old, new, _ := token.Tokenize([]string{"a", "b"}, []string{"a", "c"})
	cfg := engconf.Default
	cfg.QuickDiffThreshold = 1000
	got, err := PreserveStructure(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}

func TestShareAnySymbol(t *testing.T) {
	assert.True(t, shareAnySymbol([]int{1, 2, 3}, []int{3, 4}))
	assert.False(t, shareAnySymbol([]int{1, 2}, []int{3, 4}))
	assert.False(t, shareAnySymbol(nil, []int{1}))
}

func TestL4ProcessDelegatesToCorridor(t *testing.T) {
	old := []int{1, 2, 3}
	new := []int{4, 5, 6}
	cfg := engconf.Default
	got, err := l4Process(newTestHandle(), old, new, 0, 3, 0, 3, cfg)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}
