package sesdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergedNilOverrideReturnsDefaults(t *testing.T) {
	got := merged(nil)
	assert.Equal(t, DefaultConfig(), got)
}

func TestMergedFillsUnsetFieldsFromDefaults(t *testing.T) {
	override := &Config{QuickDiffThreshold: 999}
	got := merged(override)

	assert.Equal(t, 999, got.QuickDiffThreshold)
	assert.Equal(t, DefaultConfig().MinMatchLength, got.MinMatchLength)
	assert.Equal(t, DefaultConfig().Lookahead, got.Lookahead)
}

func TestMergedKeepsExplicitOverrideOverDefault(t *testing.T) {
	base := DefaultConfig()
	base.MinMatchLength = 60
	got := merged(&base)
	assert.Equal(t, 60, got.MinMatchLength)
}

func TestMergedBoolFieldsAlwaysTakenFromOverride(t *testing.T) {
	override := &Config{UseAnchors: false, SkipTrimming: true, AllowPreShiftGuard: true}
	got := merged(override)

	assert.False(t, got.UseAnchors)
	assert.True(t, got.SkipTrimming)
	assert.True(t, got.AllowPreShiftGuard)
}
