// Package anchor implements the rolling-hash anchor finder (spec.md
// §4.4) and the anchor chain selector (spec.md §4.5).
//
// The two-phase index/scan/hunt/verify/score shape is grounded on the
// teacher's histogramDiffRecursive (dacharyc-diffx/histogram.go), which
// builds a position index keyed by element hash (aIndices, aFreq),
// scans the other sequence for candidates, and extends matches forward
// and backward — and on filterConfusingElements (dacharyc-diffx/filter.go),
// which classifies elements by frequency against a threshold the same
// way this package's confidence filter classifies anchors. Unlike the
// teacher, which hashes whole elements with hash/fnv and picks one best
// anchor per recursive call, this package slides a rolling hash across
// windows (internal/rhash) and accumulates many anchors per scan, per
// spec.md §4.4.
package anchor

import (
	"sort"

	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/rhash"
)

// Anchor is a verified common subsequence of sufficient length (spec.md
// §3, "Anchor").
type Anchor struct {
	OldPos, NewPos int
	Length         int
	DriftDistance  int
	DriftRatio     float64
	Confidence     float64
}

// endOld returns the exclusive end of the anchor's old-side span.
func (a Anchor) endOld() int { return a.OldPos + a.Length }

// endNew returns the exclusive end of the anchor's new-side span.
func (a Anchor) endNew() int { return a.NewPos + a.Length }

// Find locates anchors in old[oldStart:oldEnd] vs new[newStart:newEnd]
// following spec.md §4.4's two-phase algorithm.
//
// Invalid parameter combinations (HuntChunkSize <= 0 or MinMatchLength <
// HuntChunkSize) yield an empty, non-fatal anchor list, per spec.md
// §4.4 "Edge-case policy".
func Find(old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) []Anchor {
	if cfg.HuntChunkSize <= 0 || cfg.MinMatchLength < cfg.HuntChunkSize {
		return nil
	}
	oldWin := oldEnd - oldStart
	newWin := newEnd - newStart
	if oldWin <= 0 || newWin <= 0 {
		return nil
	}

	chunk := cfg.HuntChunkSize
	pow := rhash.Pow(chunk - 1)

	// Index phase: hash table of new-window positions keyed by the hash
	// of the chunk-window starting at each position.
	index := make(map[rhash.Hash][]int)
	if newWin >= chunk {
		h := rhash.Window(new, newStart, chunk)
		index[h] = append(index[h], newStart)
		for pos := newStart + 1; pos+chunk <= newEnd; pos++ {
			h = h.Slide(new[pos-1], new[pos+chunk-1], pow)
			index[h] = append(index[h], pos)
		}
	}
	used := make([]bool, newWin) // bitmap over the new window: consumed positions

	isUsed := func(pos int) bool {
		i := pos - newStart
		return i < 0 || i >= len(used) || used[i]
	}
	markUsed := func(from, to int) {
		for p := from; p < to; p++ {
			i := p - newStart
			if i >= 0 && i < len(used) {
				used[i] = true
			}
		}
	}

	var out []Anchor
	maxExpectedDrift := float64(max(100, oldWin/10))
	if newWin < oldWin {
		maxExpectedDrift = float64(max(100, newWin/10))
	}

	// Scan phase.
	oldPos := oldStart
	for oldPos+chunk <= oldEnd {
		h := rhash.Window(old, oldPos, chunk)
		candidates := index[h]

		var accepted bool
		for _, cand := range candidates {
			if isUsed(cand) {
				continue
			}
			// Verify the chunk hash isn't a collision before hunting further.
			if !equalRun(old, oldPos, new, cand, chunk) {
				continue
			}

			firstOld, firstNew := oldPos, cand
			hunted := chunk
			huntOld, huntNew := oldPos+chunk, cand+chunk
			successfulChunks := 1
			for hunted < cfg.MinMatchLength {
				found := false
				for step := 0; step < 4; step++ {
					tryNew := huntNew + step*cfg.JumpStep
					if huntOld+chunk > oldEnd || tryNew+chunk > newEnd {
						break
					}
					if tryNew > huntNew && isUsed(tryNew) {
						continue
					}
					if equalRun(old, huntOld, new, tryNew, chunk) {
						huntOld += chunk
						huntNew = tryNew + chunk
						successfulChunks++
						hunted += chunk
						found = true
						break
					}
				}
				if !found {
					break
				}
			}
			huntConfidence := float64(successfulChunks*chunk) / float64(cfg.MinMatchLength)
			if huntConfidence < cfg.MinAnchorConfidence {
				continue
			}

			// Verify and extend symbol-by-symbol from the first fragment.
			length := 0
			for firstOld+length < oldEnd && firstNew+length < newEnd &&
				old[firstOld+length] == new[firstNew+length] && !isUsed(firstNew+length) {
				length++
			}
			if length < cfg.MinMatchLength {
				continue
			}

			driftDistance := abs(firstNew - firstOld)
			driftRatio := float64(driftDistance) / float64(length)
			driftConf := max64(0, 1-float64(driftDistance)/maxExpectedDrift)
			lengthConf := min64(1, float64(length)/float64(2*cfg.MinMatchLength))
			confidence := 0.3*driftConf + 0.7*lengthConf

			out = append(out, Anchor{
				OldPos:        firstOld,
				NewPos:        firstNew,
				Length:        length,
				DriftDistance: driftDistance,
				DriftRatio:    driftRatio,
				Confidence:    confidence,
			})
			markUsed(firstNew, firstNew+length)
			oldPos = firstOld + length - 1 // -1 to offset the loop's own advance below
			accepted = true
			break
		}
		if accepted {
			oldPos++
			continue
		}
		oldPos += cfg.JumpStep
	}

	return filterAnchors(out, cfg)
}

func filterAnchors(anchors []Anchor, cfg engconf.Config) []Anchor {
	var out []Anchor
	for _, a := range anchors {
		switch cfg.AnchorSearchMode {
		case engconf.Positional:
			if a.DriftDistance > cfg.PositionalAnchorMaxDrift {
				continue
			}
		case engconf.Floating:
			if a.DriftDistance <= cfg.PositionalAnchorMaxDrift {
				continue
			}
		}
		if a.Confidence < cfg.MinAnchorConfidence {
			continue
		}
		out = append(out, a)
	}
	return out
}

func equalRun(a []int, aStart int, b []int, bStart int, n int) bool {
	for i := 0; i < n; i++ {
		if a[aStart+i] != b[bStart+i] {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// SelectChain solves the 1D maximum-total-length non-overlapping
// subsequence problem over anchors (spec.md §4.5) by dynamic
// programming over anchors sorted by old-position.
//
// Grounded on the teacher's own extend-forward/extend-backward matching
// region logic in histogramDiffRecursive, generalized from picking one
// best anchor per call to a DP over arbitrarily many candidates; the
// fail-safe "return empty chain on validation failure" mirrors the
// teacher's "no valid match found -> fall back" branches in the same
// function.
func SelectChain(anchors []Anchor) []Anchor {
	if len(anchors) == 0 {
		return nil
	}
	sorted := make([]Anchor, len(anchors))
	copy(sorted, anchors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OldPos < sorted[j].OldPos })

	n := len(sorted)
	best := make([]int, n)
	pred := make([]int, n)
	bestIdx := 0
	for i := range sorted {
		best[i] = sorted[i].Length
		pred[i] = -1
		for j := 0; j < i; j++ {
			if sorted[i].OldPos >= sorted[j].endOld() && sorted[i].NewPos >= sorted[j].endNew() {
				if cand := best[j] + sorted[i].Length; cand > best[i] {
					best[i] = cand
					pred[i] = j
				}
			}
		}
		if best[i] > best[bestIdx] {
			bestIdx = i
		}
	}

	var chain []Anchor
	for i := bestIdx; i != -1; i = pred[i] {
		chain = append([]Anchor{sorted[i]}, chain...)
	}

	// Validation: every consecutive pair must yield non-negative gaps in
	// both coordinates. Fail-safe: better no anchors than a corrupt chain.
	for i := 1; i < len(chain); i++ {
		prev, cur := chain[i-1], chain[i]
		if cur.OldPos < prev.endOld() || cur.NewPos < prev.endNew() {
			return nil
		}
	}
	return chain
}
