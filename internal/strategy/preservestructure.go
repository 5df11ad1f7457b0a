package strategy

import (
	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

// PreserveStructure implements the "preserveStructure" built-in
// strategy (spec.md §4.13): a hybrid four-level processor (L1 global
// anchors, L2 positional scan, L3 micro anchors, L4 corridor fallback).
//
// Grounded on the teacher's own multi-pass pipeline composition in
// Diff (dacharyc-diffx/diffx.go): preprocess (filterConfusingElements)
// -> run the core algorithm -> postprocess (shiftBoundaries).
// preserveStructure generalizes that same "several passes, each
// handling what the last couldn't" shape into the anchors -> positional
// scan -> micro anchors -> corridor escalation spec.md §4.13 names.
func PreserveStructure(h *Handle, old, new []int, table *token.Table, cfg engconf.Config, debug bool) (edits.Script, error) {
	n, m := len(old), len(new)

	if cfg.UseAnchors && n+m >= cfg.QuickDiffThreshold {
		overlay := cfg.
			WithMinMatchLength(cfg.MinMatchLength * 2).
			WithAnchorSearchMode(engconf.Floating).
			WithHugeDiffThreshold(cfg.HugeDiffThreshold * 2)

		anchors := h.FindAnchors(old, new, 0, n, 0, m, overlay)
		chain := h.SelectChain(anchors)
		if len(chain) > 0 {
			var out edits.Script
			oldPos, newPos := 0, 0
			for _, a := range chain {
				gap, err := l2Process(h, old, new, oldPos, a.OldPos, newPos, a.NewPos, cfg)
				if err != nil {
					return nil, err
				}
				out = append(out, gap...)
				out = append(out, edits.EqualRun(old, a.OldPos, a.Length)...)
				oldPos, newPos = a.OldPos+a.Length, a.NewPos+a.Length
			}
			tail, err := l2Process(h, old, new, oldPos, n, newPos, m, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, tail...)
			return out, nil
		}
	}

	return l2Process(h, old, new, 0, n, 0, m, cfg)
}

// l2Process walks forward using the local-anchor helper (spec.md §4.14)
// to find the next nearby matching position, processing each
// intervening micro-gap with l3Process.
func l2Process(h *Handle, old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) (edits.Script, error) {
	var out edits.Script
	oldPos, newPos := oldStart, newStart

	for oldPos < oldEnd && newPos < newEnd {
		o, n, found := localAnchor(old, new, oldPos, newPos, cfg.LocalLookahead)
		if !found || o >= oldEnd || n >= newEnd {
			break
		}
		gap, err := l3Process(h, old, new, oldPos, o, newPos, n, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, gap...)
		out = append(out, edits.Op{Kind: edits.Equal, Symbol: old[o]})
		oldPos, newPos = o+1, n+1
	}

	out = append(out, h.PureRemove(old, oldPos, oldEnd)...)
	out = append(out, h.PureAdd(new, newPos, newEnd)...)
	return out, nil
}

// l3Process handles a micro-gap between two consecutive L2 matches.
func l3Process(h *Handle, old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) (edits.Script, error) {
	if oldStart == oldEnd && newStart == newEnd {
		return nil, nil
	}

	if !shareAnySymbol(old[oldStart:oldEnd], new[newStart:newEnd]) {
		return h.Corridor(old, new, oldStart, oldEnd, newStart, newEnd, cfg), nil
	}

	size := (oldEnd - oldStart) + (newEnd - newStart)
	if size >= cfg.QuickDiffThreshold/2 {
		micro := cfg.WithMinMatchLength(2).WithHuntChunkSize(2, 2)
		anchors := h.FindAnchors(old, new, oldStart, oldEnd, newStart, newEnd, micro)
		chain := h.SelectChain(anchors)
		if len(chain) > 0 {
			var out edits.Script
			op, np := oldStart, newStart
			for _, a := range chain {
				gap, err := l3Process(h, old, new, op, a.OldPos, np, a.NewPos, cfg)
				if err != nil {
					return nil, err
				}
				out = append(out, gap...)
				out = append(out, edits.EqualRun(old, a.OldPos, a.Length)...)
				op, np = a.OldPos+a.Length, a.NewPos+a.Length
			}
			tail, err := l3Process(h, old, new, op, oldEnd, np, newEnd, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, tail...)
			return out, nil
		}
	}

	return l4Process(h, old, new, oldStart, oldEnd, newStart, newEnd, cfg)
}

// l4Process is the corridor-heuristic fallback (spec.md §4.13, L4).
func l4Process(h *Handle, old, new []int, oldStart, oldEnd, newStart, newEnd int, cfg engconf.Config) (edits.Script, error) {
	return h.Corridor(old, new, oldStart, oldEnd, newStart, newEnd, cfg), nil
}

func shareAnySymbol(a, b []int) bool {
	set := make(map[int]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
