package diffdebug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewDisabledIsSafeNoOp(t *testing.T) {
	tr := New(false)
	assert.NotPanics(t, func() {
		tr.Trace("anchor", "found anchor", zap.Int("length", 10))
		tr.Sync()
	})
}

func TestNewEnabledDoesNotPanic(t *testing.T) {
	tr := New(true)
	assert.NotPanics(t, func() {
		tr.Trace("corridor", "fallback engaged")
		tr.Sync()
	})
}

func TestNilTracerIsSafe(t *testing.T) {
	var tr *Tracer
	assert.NotPanics(t, func() {
		tr.Trace("x", "y")
		tr.Sync()
	})
}
