// Package myersexact implements the classic O(ND) Myers algorithm with
// full trace-and-backtrack reconstruction (spec.md §4.7), used only on
// small gaps below QuickDiffThreshold where the cost of keeping a full
// per-d snapshot trace is acceptable.
//
// Neither the teacher nor znkr-diff (the pack's other diff engine) keeps
// this kind of snapshot trace: both only ever need the final split
// point for divide-and-conquer (dacharyc-diffx/snake.go findMiddleSnake,
// znkr-diff/internal/impl/myers.go split), never a reconstructable path.
// This file is grounded on the same diagonal-array (v-array) technique
// both of those functions already use — offset-shifted indexing, the
// v[k-1]<v[k+1] tie-break preferring deletions, following the diagonal
// while symbols match — but adds the one ingredient neither needs:
// copying the v array at each d into a trace slice and walking it
// backwards afterward. This is the forward-only, non-heuristic classical
// form of the same Myers 1986 algorithm the teacher implements
// bidirectionally.
package myersexact

import "github.com/fishan/sesdiff/internal/edits"

// Diff computes the shortest edit script between old[oldStart:oldEnd]
// and new[newStart:newEnd] using the classic greedy trace algorithm.
// Callers need not trim a common prefix/suffix first: common runs are
// emitted as Equal operations like any other diagonal.
func Diff(old, new []int, oldStart, oldEnd, newStart, newEnd int) edits.Script {
	n := oldEnd - oldStart
	m := newEnd - newStart

	if n == 0 {
		return edits.AddRun(new, newStart, m)
	}
	if m == 0 {
		return edits.RemoveRun(old, oldStart, n)
	}

	maxD := n + m
	size := 2*maxD + 1
	offset := maxD

	v := make([]int, size)
	v[offset+1] = 0

	var trace [][]int
	found := false
	var foundD int

	for d := 0; d <= maxD && !found; d++ {
		snapshot := make([]int, size)
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			idx := offset + k
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && old[oldStart+x] == new[newStart+y] {
				x++
				y++
			}
			v[idx] = x
			if x >= n && y >= m {
				found = true
				foundD = d
				break
			}
		}
	}

	return backtrack(old, new, oldStart, newStart, n, m, trace, offset, foundD)
}

func backtrack(old, new []int, oldStart, newStart, n, m int, trace [][]int, offset, foundD int) edits.Script {
	var rev edits.Script
	x, y := n, m

	for d := foundD; d > 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, edits.Op{Kind: edits.Equal, Symbol: old[oldStart+x]})
		}
		if x == prevX {
			y--
			rev = append(rev, edits.Op{Kind: edits.Add, Symbol: new[newStart+y]})
		} else {
			x--
			rev = append(rev, edits.Op{Kind: edits.Remove, Symbol: old[oldStart+x]})
		}
		x, y = prevX, prevY
	}
	// d == 0: whatever matches remain from (0,0) to (x,y) are Equal.
	for x > 0 && y > 0 {
		x--
		y--
		rev = append(rev, edits.Op{Kind: edits.Equal, Symbol: old[oldStart+x]})
	}

	out := make(edits.Script, len(rev))
	for i, op := range rev {
		out[len(rev)-1-i] = op
	}
	return out
}
