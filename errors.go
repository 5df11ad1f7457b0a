package sesdiff

import (
	"errors"
	"fmt"

	"github.com/fishan/sesdiff/internal/recursemyers"
	"github.com/fishan/sesdiff/internal/strategy"
)

// ErrUnknownStrategy is returned by Engine.Diff when the configured
// strategy name is not registered (spec.md §4.10, step 3).
var ErrUnknownStrategy = strategy.ErrUnknownStrategy

// RangeError reports an invalid index range passed to an internal
// component. Surfacing this as a distinct error type (rather than a
// panic) follows spec.md §7's error-handling table; end users should
// never see one unless the engine itself has a bug, since every public
// entry point derives its ranges from slice lengths it controls.
type RangeError struct {
	Component       string
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sesdiff: %s: invalid range [%d:%d) for length %d", e.Component, e.Start, e.End, e.Len)
}

// ErrInvalidRange is a sentinel RangeError usable with errors.Is.
var ErrInvalidRange = &RangeError{Component: "unknown"}

func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

// wrapInternalError converts an internal *recursemyers.RangeError
// (recursemyers can't import this package; see its own RangeError doc)
// into the public RangeError so callers can match it with
// errors.Is(err, ErrInvalidRange). Any other error passes through
// unchanged.
func wrapInternalError(err error) error {
	var re *recursemyers.RangeError
	if errors.As(err, &re) {
		return &RangeError{Component: re.Component, Start: re.Start, End: re.End, Len: re.Len}
	}
	return err
}
