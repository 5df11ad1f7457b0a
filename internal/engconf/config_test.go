package engconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesSpecValues(t *testing.T) {
	assert.Equal(t, "commonSES", Default.StrategyName)
	assert.Equal(t, 30, Default.MinMatchLength)
	assert.Equal(t, 64, Default.QuickDiffThreshold)
	assert.Equal(t, 256, Default.HugeDiffThreshold)
	assert.True(t, Default.UseAnchors)
	assert.Equal(t, 3, Default.RarityThreshold)
	assert.False(t, Default.AllowPreShiftGuard)
}

func TestWithMinMatchLengthReturnsCopy(t *testing.T) {
	base := Default
	overlay := base.WithMinMatchLength(60)
	assert.Equal(t, 60, overlay.MinMatchLength)
	assert.Equal(t, 30, base.MinMatchLength, "original config must be unmodified")
}

func TestWithAnchorSearchMode(t *testing.T) {
	overlay := Default.WithAnchorSearchMode(Floating)
	assert.Equal(t, Floating, overlay.AnchorSearchMode)
	assert.Equal(t, Combo, Default.AnchorSearchMode)
}

func TestWithHuntChunkSize(t *testing.T) {
	overlay := Default.WithHuntChunkSize(2, 2)
	assert.Equal(t, 2, overlay.HuntChunkSize)
	assert.Equal(t, 2, overlay.JumpStep)
	assert.Equal(t, 10, Default.HuntChunkSize)
}

func TestWithHugeDiffThreshold(t *testing.T) {
	overlay := Default.WithHugeDiffThreshold(512)
	assert.Equal(t, 512, overlay.HugeDiffThreshold)
	assert.Equal(t, 256, Default.HugeDiffThreshold)
}
