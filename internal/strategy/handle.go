// Package strategy implements the strategy dispatcher, its registry of
// named plugins, the toolbox ("engine handle") strategies use to reach
// the rest of the engine, and the three built-in strategies plus one
// supplemental one (spec.md §4.10-§4.14, §2).
//
// The registry-of-named-callbacks pattern has no direct teacher
// equivalent: dacharyc-diffx only ever exposes two free functions,
// Diff and DiffHistogram, not a runtime-pluggable registry. This is
// grounded on the general Go plugin-registry idiom (map[string]Func +
// Register) and on the shape the teacher's own Option functions and
// znkr-diff's config.Option already take: a named, composable unit of
// behavior resolved at call time rather than compile time.
package strategy

import (
	"go.uber.org/zap"

	"github.com/fishan/sesdiff/internal/anchor"
	"github.com/fishan/sesdiff/internal/corridor"
	"github.com/fishan/sesdiff/internal/diffdebug"
	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/myersexact"
	"github.com/fishan/sesdiff/internal/recursemyers"
	"github.com/fishan/sesdiff/internal/snake"
	"github.com/fishan/sesdiff/internal/token"
)

// Func is the strategy plugin contract (spec.md §6): given a toolbox,
// the trimmed integer windows, the id map, the fully-resolved
// configuration, and the debug flag, return an edit script for exactly
// that window, or a *recursemyers.RangeError if a gap it computed
// violates 0 <= start <= end <= length (spec.md §7, InvalidRange).
type Func func(h *Handle, old, new []int, table *token.Table, cfg engconf.Config, debug bool) (edits.Script, error)

// Handle is the toolbox strategies use to reach the anchor finder, the
// chain selector, the middle-snake search, the recursive Myers driver,
// precise Myers, the corridor heuristic, and the local-anchor helper
// (spec.md §6, "Engine handle (toolbox) contract").
type Handle struct {
	buf    snake.Buffers
	tracer *diffdebug.Tracer
}

// NewHandle returns a Handle with its own middle-snake scratch buffers.
func NewHandle(tracer *diffdebug.Tracer) *Handle {
	return &Handle{tracer: tracer}
}

// FindAnchors runs the anchor finder (spec.md §4.4) over the given gap.
func (h *Handle) FindAnchors(old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) []anchor.Anchor {
	return anchor.Find(old, new, oldStart, oldEnd, newStart, newEnd, cfg)
}

// SelectChain runs the anchor chain selector (spec.md §4.5).
func (h *Handle) SelectChain(anchors []anchor.Anchor) []anchor.Anchor {
	return anchor.SelectChain(anchors)
}

// FindSnake runs the middle-snake search (spec.md §4.6) using this
// handle's reusable scratch buffers.
func (h *Handle) FindSnake(old, new []int, oldStart, oldEnd, newStart, newEnd int) (snake.Snake, bool) {
	return snake.Find(old, new, oldStart, oldEnd, newStart, newEnd, &h.buf)
}

// RecurseMyers runs the recursive Myers driver (spec.md §4.8) over a
// gap. It returns a *recursemyers.RangeError if the gap violates
// 0 <= start <= end <= length (spec.md §7, InvalidRange).
func (h *Handle) RecurseMyers(old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) (edits.Script, error) {
	p := recursemyers.Params{
		QuickDiffThreshold: cfg.QuickDiffThreshold,
		Lookahead:          cfg.Lookahead,
		CorridorWidth:      cfg.CorridorWidth,
		RarityThreshold:    cfg.RarityThreshold,
		Tracer:             h.tracer,
	}
	return recursemyers.Diff(old, new, oldStart, oldEnd, newStart, newEnd, p, &h.buf)
}

// PreciseMyers runs precise Myers with trace (spec.md §4.7) directly,
// bypassing the quick-diff-threshold check. None of the built-in
// strategies calls it; it is there for registered plugins.
func (h *Handle) PreciseMyers(old, new []int, oldStart, oldEnd, newStart, newEnd int) edits.Script {
	return myersexact.Diff(old, new, oldStart, oldEnd, newStart, newEnd)
}

// Corridor runs the corridor heuristic (spec.md §4.9) directly.
func (h *Handle) Corridor(old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) edits.Script {
	h.tracer.Trace("corridor", "gap routed to corridor heuristic directly",
		zap.Int("old_gap", oldEnd-oldStart), zap.Int("new_gap", newEnd-newStart))
	return corridor.Diff(old, new, oldStart, oldEnd, newStart, newEnd, cfg.Lookahead, cfg.CorridorWidth, cfg.RarityThreshold)
}

// LocalAnchor runs the local-anchor helper (spec.md §4.14) from
// (oldStart, newStart) within lookahead positions.
func (h *Handle) LocalAnchor(old, new []int, oldStart, newStart, lookahead int) (oldPos, newPos int, found bool) {
	return localAnchor(old, new, oldStart, newStart, lookahead)
}

// PureRemove emits old[start:end] as Remove operations.
func (h *Handle) PureRemove(old []int, start, end int) edits.Script {
	return edits.RemoveRun(old, start, end-start)
}

// PureAdd emits new[start:end] as Add operations.
func (h *Handle) PureAdd(new []int, start, end int) edits.Script {
	return edits.AddRun(new, start, end-start)
}

// dispatchGap dispatches a single gap between two anchors (or the outer
// gaps before the first / after the last anchor) by size, per spec.md
// §4.11's bullet list: empty, pathological ratio, huge, else recursive
// Myers. Used by commonSES; preserveStructure's L1 gaps go through
// l2Process instead.
func (h *Handle) dispatchGap(old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) (edits.Script, error) {
	oldLen, newLen := oldEnd-oldStart, newEnd-newStart
	if oldLen == 0 && newLen == 0 {
		return nil, nil
	}

	hi, lo := oldLen, newLen
	if lo > hi {
		hi, lo = lo, hi
	}
	size := oldLen + newLen
	if lo > 0 && hi/lo > 100 && size > 500 {
		return edits.PureReplace(old, new, oldStart, oldEnd, newStart, newEnd), nil
	}
	if lo == 0 && size > 500 {
		return edits.PureReplace(old, new, oldStart, oldEnd, newStart, newEnd), nil
	}

	if size > cfg.HugeDiffThreshold {
		return h.Corridor(old, new, oldStart, oldEnd, newStart, newEnd, cfg), nil
	}
	return h.RecurseMyers(old, new, oldStart, oldEnd, newStart, newEnd, cfg)
}
