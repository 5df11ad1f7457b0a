// Package snake implements the linear-memory bidirectional middle-snake
// search (spec.md §4.6): the core divide-and-conquer primitive that the
// recursive Myers driver (internal/recursemyers) splits diff regions on.
//
// Directly grounded on the teacher's findMiddleSnake
// (dacharyc-diffx/snake.go): the same two-scratch-buffer (fdiag/bdiag),
// offset-by-N+M diagonal indexing and forward/backward overlap test.
// This package drops the teacher's in-search heuristic bailout (best
// "significant" snake tracked during the search) because spec.md names
// that as a distinct, separately-configured component: the corridor
// heuristic (internal/corridor), invoked by the caller when this search
// reports no overlap rather than blended into the search loop itself.
package snake

// Snake is a maximal matching diagonal run (spec.md §3, "Middle snake"):
// old[x:u] == new[y:v] with u-x == v-y and u > x.
type Snake struct {
	X, Y, U, V int
}

// Len returns the snake's diagonal length, u-x.
func (s Snake) Len() int { return s.U - s.X }

// Buffers holds the two reusable scratch arrays the search needs,
// grown on demand to 2*(N+M)+2 entries (spec.md §4.6, §5). The
// strategy Handle owns one Buffers value for the lifetime of one
// top-level Diff call and lends it to the recursive Myers driver, which
// passes it to every recursive Find,
// exactly mirroring how the teacher's diffContext owns fdiag/bdiag for
// the duration of one compareSeq tree.
type Buffers struct {
	fwd, bwd []int
}

func (b *Buffers) ensure(n int) {
	if cap(b.fwd) < n {
		b.fwd = make([]int, n)
	} else {
		b.fwd = b.fwd[:n]
	}
	if cap(b.bwd) < n {
		b.bwd = make([]int, n)
	} else {
		b.bwd = b.bwd[:n]
	}
}

// Find searches old[oldStart:oldEnd] vs new[newStart:newEnd] for a
// middle snake per spec.md §4.6. It returns (Snake{}, false) if no
// overlap is found within the region, which "should not happen for
// non-empty, differing ranges" per spec.md — callers fall back to the
// corridor heuristic in that case.
func Find(old, new []int, oldStart, oldEnd, newStart, newEnd int, buf *Buffers) (Snake, bool) {
	n := oldEnd - oldStart
	m := newEnd - newStart
	if n == 0 || m == 0 {
		return Snake{}, false
	}

	delta := n - m
	size := 2*(n+m) + 2
	buf.ensure(size)
	fwd, bwd := buf.fwd, buf.bwd
	offset := n + m

	fwd[offset+1] = 0
	bwd[offset+delta-1] = n

	maxD := (n+m+1)/2 + 1
	for d := 0; d <= maxD; d++ {
		// Forward pass.
		for k := -d; k <= d; k += 2 {
			idx := offset + k
			if idx-1 < 0 || idx+1 >= len(fwd) {
				continue
			}
			var x int
			if k == -d || (k != d && fwd[idx-1] < fwd[idx+1]) {
				x = fwd[idx+1]
			} else {
				x = fwd[idx-1] + 1
			}
			y := x - k
			for x < n && y < m && old[oldStart+x] == new[newStart+y] {
				x++
				y++
			}
			fwd[idx] = x

			if delta%2 != 0 && k-delta >= -(d-1) && k-delta <= d-1 {
				// bwd is indexed by grid diagonal (offset+g), same as fwd,
				// so the overlap check reads bwd at this same diagonal k.
				bIdx := offset + k
				if bIdx >= 0 && bIdx < len(bwd) && x >= bwd[bIdx] {
					bx := bwd[bIdx]
					by := bx - k
					if x >= bx && y >= by {
						return Snake{X: oldStart + bx, Y: newStart + by, U: oldStart + x, V: newStart + y}, true
					}
				}
			}
		}

		// Backward pass.
		for k := -d; k <= d; k += 2 {
			idx := offset + (k + delta)
			if idx-1 < 0 || idx+1 >= len(bwd) {
				continue
			}
			var x int
			if k == d || (k != -d && bwd[idx-1] < bwd[idx+1]) {
				x = bwd[idx-1]
			} else {
				x = bwd[idx+1] - 1
			}
			y := x - (k + delta)
			for x > 0 && y > 0 && old[oldStart+x-1] == new[newStart+y-1] {
				x--
				y--
			}
			bwd[idx] = x

			if delta%2 == 0 && k+delta >= -d && k+delta <= d {
				// This backward point sits on grid diagonal k+delta; read
				// fwd at that same diagonal, not at raw k.
				fIdx := offset + (k + delta)
				if fIdx >= 0 && fIdx < len(fwd) && fwd[fIdx] >= x {
					fx := fwd[fIdx]
					fy := fx - (k + delta)
					if fx >= x && fy >= y {
						return Snake{X: oldStart + x, Y: newStart + y, U: oldStart + fx, V: newStart + fy}, true
					}
				}
			}
		}
	}

	return Snake{}, false
}
