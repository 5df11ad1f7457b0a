// Package recursemyers implements the divide-and-conquer recursive Myers
// driver (spec.md §4.8): it splits a diff region on middle snakes,
// falling through to the corridor heuristic or precise Myers on base
// cases.
//
// Grounded directly on the teacher's compareSeq
// (dacharyc-diffx/compare.go): trim -> base cases -> find split point ->
// emit the matching region -> recurse left/right. This package adds the
// two things compareSeq doesn't need because its own snake search is
// trusted: falling back to the corridor heuristic when the snake search
// reports no overlap (spec.md §4.6 policy), and defensively validating
// the returned snake's symbols before trusting it (SnakeValidationFailure
// recovery, spec.md §7), recovering by re-running precise Myers on the
// region.
package recursemyers

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fishan/sesdiff/internal/corridor"
	"github.com/fishan/sesdiff/internal/diffdebug"
	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/myersexact"
	"github.com/fishan/sesdiff/internal/snake"
)

// RangeError reports a range violating 0 <= start <= end <= length
// (spec.md §7's InvalidRange, "a programmer-error condition"). Defined
// locally, rather than reusing the root package's sesdiff.RangeError,
// because this package cannot import sesdiff without a cycle
// (sesdiff -> strategy -> recursemyers); diff.go converts a RangeError
// surfacing from Dispatch into sesdiff.RangeError at the public
// boundary.
type RangeError struct {
	Component       string
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("recursemyers: %s: invalid range [%d:%d) for length %d", e.Component, e.Start, e.End, e.Len)
}

func (e *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

func checkRange(component string, start, end, length int) error {
	if start < 0 || start > end || end > length {
		return &RangeError{Component: component, Start: start, End: end, Len: length}
	}
	return nil
}

// Params bundles the thresholds and corridor tuning the driver needs,
// so it doesn't take the full engconf.Config.
// Tracer is optional; a nil Tracer discards every event, same as a
// zero-value *diffdebug.Tracer.
type Params struct {
	QuickDiffThreshold int
	Lookahead          int
	CorridorWidth      int
	RarityThreshold    int
	Tracer             *diffdebug.Tracer
}

// Diff recursively diffs old[oldStart:oldEnd] vs new[newStart:newEnd]. It
// returns a RangeError if either range violates 0 <= start <= end <=
// length; every other caller-visible failure is recovered internally
// (spec.md §7).
func Diff(old, new []int, oldStart, oldEnd, newStart, newEnd int, p Params, buf *snake.Buffers) (edits.Script, error) {
	if err := checkRange("old", oldStart, oldEnd, len(old)); err != nil {
		return nil, err
	}
	if err := checkRange("new", newStart, newEnd, len(new)); err != nil {
		return nil, err
	}

	if oldStart == oldEnd && newStart == newEnd {
		return nil, nil
	}
	if oldStart == oldEnd {
		return edits.AddRun(new, newStart, newEnd-newStart), nil
	}
	if newStart == newEnd {
		return edits.RemoveRun(old, oldStart, oldEnd-oldStart), nil
	}

	if (oldEnd-oldStart)+(newEnd-newStart) < p.QuickDiffThreshold {
		return myersexact.Diff(old, new, oldStart, oldEnd, newStart, newEnd), nil
	}

	snk, ok := snake.Find(old, new, oldStart, oldEnd, newStart, newEnd, buf)
	if !ok || snk.Len() <= 0 {
		p.Tracer.Trace("recursemyers", "gap routed to corridor heuristic, no middle snake found",
			zap.Int("old_gap", oldEnd-oldStart), zap.Int("new_gap", newEnd-newStart))
		return corridor.Diff(old, new, oldStart, oldEnd, newStart, newEnd, p.Lookahead, p.CorridorWidth, p.RarityThreshold), nil
	}

	// Defensive validation: the snake must actually match symbol-by-symbol.
	if !validate(old, new, snk) {
		p.Tracer.Trace("recursemyers", "snake rejected by validation, falling back to precise Myers",
			zap.Int("x", snk.X), zap.Int("y", snk.Y), zap.Int("u", snk.U), zap.Int("v", snk.V))
		return myersexact.Diff(old, new, oldStart, oldEnd, newStart, newEnd), nil
	}

	var out edits.Script
	left, err := Diff(old, new, oldStart, snk.X, newStart, snk.Y, p, buf)
	if err != nil {
		return nil, err
	}
	out = append(out, left...)
	out = append(out, edits.EqualRun(old, snk.X, snk.Len())...)
	right, err := Diff(old, new, snk.U, oldEnd, snk.V, newEnd, p, buf)
	if err != nil {
		return nil, err
	}
	out = append(out, right...)
	return out, nil
}

func validate(old, new []int, s snake.Snake) bool {
	for i := 0; i < s.Len(); i++ {
		if old[s.X+i] != new[s.Y+i] {
			return false
		}
	}
	return true
}
