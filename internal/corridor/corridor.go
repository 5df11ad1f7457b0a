// Package corridor implements the bounded-diagonal, lookahead-guided
// linear-time fallback diff (spec.md §4.9), used when a gap is too
// large or too chaotic for the precise algorithms to handle cheaply.
//
// Grounded on the teacher's heuristic-bailout machinery inside
// findMiddleSnake (dacharyc-diffx/snake.go): the "tooExpensive"
// threshold, the "best snake found so far" fallback, and
// greedyFallback's "consume from whichever side makes progress" last
// resort are all generalized here from a snake-search escape hatch into
// this package's own named, linear-time walker with lookahead and
// rarity scoring, per spec.md §4.9. Unlike the teacher, this package's
// adaptive corridor/lookahead math (spec.md §4.9, "Adaptive parameters")
// is plain integer division, not the teacher's isqrt-based cost
// estimate, so isqrt itself has no caller here and was dropped.
package corridor

import "github.com/fishan/sesdiff/internal/edits"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Diff walks old[oldStart:oldEnd] vs new[newStart:newEnd] and emits a
// linear-time edit script, per spec.md §4.9.
func Diff(old, new []int, oldStart, oldEnd, newStart, newEnd, lookahead, corridorWidth, rarityThreshold int) edits.Script {
	n := oldEnd - oldStart
	m := newEnd - newStart
	if n == 0 {
		return edits.AddRun(new, newStart, m)
	}
	if m == 0 {
		return edits.RemoveRun(old, oldStart, n)
	}

	// Early sanity rule: extreme size ratio and large absolute size ->
	// skip the walker entirely.
	hi, lo := n, m
	if lo > hi {
		hi, lo = lo, hi
	}
	if lo > 0 && hi/lo > 100 && n+m > 500 {
		return edits.PureReplace(old, new, oldStart, oldEnd, newStart, newEnd)
	}

	d0 := newStart - oldStart
	adaptiveCorridor := minInt(corridorWidth, maxInt(10, (n+m)/100))
	adaptiveLookahead := minInt(lookahead, maxInt(5, (n+m)/200))
	maxIterations := n + m + 100

	oldPos, newPos := oldStart, newStart
	lastProgressIter := 0
	staleLimit := maxInt(50, maxIterations/10)

	var out edits.Script

	for iter := 0; iter < maxIterations; iter++ {
		if oldPos >= oldEnd && newPos >= newEnd {
			break
		}

		if oldPos < oldEnd && newPos < newEnd && old[oldPos] == new[newPos] {
			out = append(out, edits.Op{Kind: edits.Equal, Symbol: old[oldPos]})
			oldPos++
			newPos++
			lastProgressIter = iter
			continue
		}

		if oldPos >= oldEnd {
			out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
			newPos++
			lastProgressIter = iter
			continue
		}
		if newPos >= newEnd {
			out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
			oldPos++
			lastProgressIter = iter
			continue
		}

		currentDiagonal := newPos - oldPos
		if abs(currentDiagonal-d0) > adaptiveCorridor {
			if currentDiagonal > d0 {
				out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
				oldPos++
			} else {
				out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
				newPos++
			}
			lastProgressIter = iter
			continue
		}

		oldFoundAt, newHasOld := findAhead(new, newPos, newEnd, old[oldPos], adaptiveLookahead)
		newFoundAt, oldHasNew := findAhead(old, oldPos, oldEnd, new[newPos], adaptiveLookahead)

		switch {
		case newHasOld && !oldHasNew:
			out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
			newPos++
		case oldHasNew && !newHasOld:
			out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
			oldPos++
		case newHasOld && oldHasNew:
			if (oldFoundAt - newPos) <= (newFoundAt - oldPos) {
				out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
				newPos++
			} else {
				out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
				oldPos++
			}
		default:
			oldRare := countOccurrences(old, oldPos, oldEnd, old[oldPos], rarityThreshold+1) <= rarityThreshold
			newRare := countOccurrences(new, newPos, newEnd, new[newPos], rarityThreshold+1) <= rarityThreshold
			switch {
			case oldRare && !newRare:
				out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
				newPos++
			case newRare && !oldRare:
				out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
				oldPos++
			default:
				if (oldEnd - oldPos) >= (newEnd - newPos) {
					out = append(out, edits.Op{Kind: edits.Remove, Symbol: old[oldPos]})
					oldPos++
				} else {
					out = append(out, edits.Op{Kind: edits.Add, Symbol: new[newPos]})
					newPos++
				}
			}
		}

		if iter-lastProgressIter > staleLimit {
			break
		}
		lastProgressIter = iter
	}

	if oldPos < oldEnd || newPos < newEnd {
		out = append(out, edits.RemoveRun(old, oldPos, oldEnd-oldPos)...)
		out = append(out, edits.AddRun(new, newPos, newEnd-newPos)...)
	}

	return out
}

// findAhead looks up to lookahead positions forward in seq[from:to] for
// target, returning the absolute position of the first match and
// whether one was found.
func findAhead(seq []int, from, to, target, lookahead int) (int, bool) {
	limit := minInt(to, from+lookahead)
	for i := from; i < limit; i++ {
		if seq[i] == target {
			return i, true
		}
	}
	return 0, false
}

// countOccurrences counts occurrences of target in seq[from:to],
// stopping as soon as cap occurrences have been counted (spec.md §4.9
// step 6, "count occurrences up to 4").
func countOccurrences(seq []int, from, to, target, cap int) int {
	count := 0
	for i := from; i < to && count < cap; i++ {
		if seq[i] == target {
			count++
		}
	}
	return count
}
