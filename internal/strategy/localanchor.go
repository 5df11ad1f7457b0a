package strategy

// localAnchor implements the local-anchor helper (spec.md §4.14): given
// a starting position and a lookahead, it searches first along the main
// diagonal, then a small diagonal neighborhood, for the next matching
// position.
//
// Grounded on the teacher's shift.go boundary search (scoreBoundary /
// shiftDelete / shiftInsert): try the preferred position first
// (diagonal), then fall back to a bounded neighborhood scan, the same
// "try the obvious thing, then widen the search" shape shift.go uses
// when looking for a better boundary.
func localAnchor(old, new []int, oldStart, newStart, lookahead int) (oldPos, newPos int, found bool) {
	oldLen, newLen := len(old), len(new)

	for offset := 1; offset <= lookahead; offset++ {
		o, n := oldStart+offset, newStart+offset
		if o >= oldLen || n >= newLen {
			break
		}
		if old[o] == new[n] {
			return o, n, true
		}
	}

	radius := lookahead / 2
	if radius > 10 {
		radius = 10
	}
	for r := 1; r <= radius; r++ {
		for delta := -r; delta <= r; delta++ {
			o, n := oldStart+r, newStart+r+delta
			if o < 0 || o >= oldLen || n < 0 || n >= newLen {
				continue
			}
			if old[o] == new[n] {
				return o, n, true
			}
		}
	}

	return 0, 0, false
}
