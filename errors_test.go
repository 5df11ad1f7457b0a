package sesdiff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishan/sesdiff/internal/recursemyers"
)

func TestRangeErrorIsMatchesAnyInstance(t *testing.T) {
	err := &RangeError{Component: "old", Start: 5, End: 2, Len: 3}
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestWrapInternalErrorConvertsRecursemyersRangeError(t *testing.T) {
	internal := &recursemyers.RangeError{Component: "new", Start: 1, End: 0, Len: 4}
	wrapped := wrapInternalError(internal)

	var rangeErr *RangeError
	require.ErrorAs(t, wrapped, &rangeErr)
	assert.Equal(t, "new", rangeErr.Component)
	assert.Equal(t, 1, rangeErr.Start)
	assert.Equal(t, 0, rangeErr.End)
	assert.Equal(t, 4, rangeErr.Len)
	assert.True(t, errors.Is(wrapped, ErrInvalidRange))
}

func TestWrapInternalErrorPassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, wrapInternalError(other))
}
