package edits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualRun(t *testing.T) {
	old := []int{10, 20, 30, 40}

	got := EqualRun(old, 1, 2)
	want := Script{{Kind: Equal, Symbol: 20}, {Kind: Equal, Symbol: 30}}
	assert.Equal(t, want, got)

	assert.Nil(t, EqualRun(old, 0, 0))
	assert.Nil(t, EqualRun(old, 0, -1))
}

func TestRemoveRun(t *testing.T) {
	old := []int{1, 2, 3}
	got := RemoveRun(old, 0, 3)
	want := Script{{Kind: Remove, Symbol: 1}, {Kind: Remove, Symbol: 2}, {Kind: Remove, Symbol: 3}}
	assert.Equal(t, want, got)
}

func TestAddRun(t *testing.T) {
	new := []int{7, 8}
	got := AddRun(new, 0, 2)
	want := Script{{Kind: Add, Symbol: 7}, {Kind: Add, Symbol: 8}}
	assert.Equal(t, want, got)
}

func TestPureReplace(t *testing.T) {
	old := []int{1, 2}
	new := []int{3, 4, 5}
	got := PureReplace(old, new, 0, 2, 0, 3)
	want := Script{
		{Kind: Remove, Symbol: 1}, {Kind: Remove, Symbol: 2},
		{Kind: Add, Symbol: 3}, {Kind: Add, Symbol: 4}, {Kind: Add, Symbol: 5},
	}
	assert.Equal(t, want, got)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Add", Add.String())
	assert.Equal(t, "Remove", Remove.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
