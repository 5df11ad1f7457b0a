// Package seq provides the half-open window and gap types threaded through
// every component of the diff engine, plus the prefix/suffix trimmer.
//
// Components operate on [start, end) index ranges into the caller's
// integer arrays rather than re-slicing them, the same way the teacher's
// compareSeq and findMiddleSnake thread xoff/xlim/yoff/ylim rather than
// slicing xvec/yvec (dacharyc-diffx/compare.go, dacharyc-diffx/snake.go);
// that discipline is what lets original indices survive into the final
// edit script unchanged.
package seq

import "github.com/fishan/sesdiff/internal/edits"

// Gap demarcates a sub-region still to be diffed, always derived from two
// adjacent anchors or from the outer window (spec.md §3, "Gap").
type Gap struct {
	OldStart, OldEnd int
	NewStart, NewEnd int
}

// OldLen returns the number of old symbols in the gap.
func (g Gap) OldLen() int { return g.OldEnd - g.OldStart }

// NewLen returns the number of new symbols in the gap.
func (g Gap) NewLen() int { return g.NewEnd - g.NewStart }

// Empty reports whether the gap has no old and no new symbols.
func (g Gap) Empty() bool { return g.OldLen() == 0 && g.NewLen() == 0 }

// Trimmed is the result of stripping a common prefix and suffix from a
// pair of sequences (spec.md §4.2).
type Trimmed struct {
	Prefix, Suffix edits.Script
	Interior       Gap
}

// Trim compares old and new from the left while equal, then from the
// right while equal and not overlapping the left match, and returns the
// left/right common runs as Equal scripts plus the remaining interior
// window.
//
// Grounded on the teacher's prefix/suffix trim loop, which appears twice
// in near-identical form: dacharyc-diffx/compare.go (compareSeq) and
// dacharyc-diffx/histogram.go (histogramDiff) each trim independently;
// this is the one shared implementation both would have used.
func Trim(old, new []int) Trimmed {
	oldStart, newStart := 0, 0
	oldEnd, newEnd := len(old), len(new)

	for oldStart < oldEnd && newStart < newEnd && old[oldStart] == new[newStart] {
		oldStart++
		newStart++
	}
	for oldEnd > oldStart && newEnd > newStart && old[oldEnd-1] == new[newEnd-1] {
		oldEnd--
		newEnd--
	}

	return Trimmed{
		Prefix:   edits.EqualRun(old, 0, oldStart),
		Suffix:   edits.EqualRun(old, oldEnd, len(old)-oldEnd),
		Interior: Gap{OldStart: oldStart, OldEnd: oldEnd, NewStart: newStart, NewEnd: newEnd},
	}
}
