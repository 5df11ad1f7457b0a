package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

func TestReadableSESProducesValidScript(t *testing.T) {
	oldStr := []string{"Intro.", "", "Body text here.", "", "Outro."}
	newStr := []string{"Intro.", "", "Different body.", "", "Outro."}
	old, new, _ := token.Tokenize(oldStr, newStr)

	cfg := engconf.Default
	got, err := ReadableSES(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	replayScript(t, old, new, got)
}

func TestScoreBoundaryPrefersBlankLines(t *testing.T) {
	ids, _, table := token.Tokenize([]string{"a", "", "b", "c"}, nil)

	scoreAtBlank := scoreBoundary(2, 3, ids, table)
	scoreElsewhere := scoreBoundary(1, 2, ids, table)
	assert.Greater(t, scoreAtBlank, scoreElsewhere)
}

func TestToBlocksRoundTrip(t *testing.T) {
	old := []int{1, 2, 3, 4, 5}
	new := []int{1, 9, 3, 9, 5}

	cfg := engconf.Default
	base, err := CommonSES(newTestHandle(), old, new, nil, cfg, false)
	require.NoError(t, err)
	blocks := toBlocks(base)
	rebuilt := fromBlocks(blocks, old, new)
	require.Equal(t, base, rebuilt)
}

func TestMergeBlocksDropsEmptyAndMerges(t *testing.T) {
	blocks := []block{
		{kind: edits.Remove, oldStart: 0, oldEnd: 2},
		{kind: edits.Remove, oldStart: 2, oldEnd: 3},
		{kind: edits.Equal, oldStart: 3, oldEnd: 3, newStart: 0, newEnd: 0},
	}
	merged := mergeBlocks(blocks)
	require.Len(t, merged, 1)
	assert.Equal(t, 0, merged[0].oldStart)
	assert.Equal(t, 3, merged[0].oldEnd)
}

func TestIsBlankAndPunctuationHelpers(t *testing.T) {
	ids, _, table := token.Tokenize([]string{"  ", "hello.", "-item"}, nil)
	assert.True(t, isBlankSym(table, ids[0]))
	assert.False(t, isBlankSym(table, ids[1]))
	assert.True(t, endsWithPunctuationSym(table, ids[1]))
	assert.True(t, startsWithPunctuationSym(table, ids[2]))
}
