package strategy

import (
	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

// CommonSES implements the "commonSES" built-in strategy (spec.md
// §4.11): global anchor search, chain selection, then gap dispatch,
// falling back to the recursive Myers driver over the whole window
// when no anchors are found.
//
// Grounded on the teacher's Diff/DiffElements (dacharyc-diffx/diffx.go):
// the same "preprocess, then run the core algorithm over what's left"
// shape, generalized from the teacher's single preprocessing pass
// (filterConfusingElements) into the anchor-then-gap-dispatch pipeline
// spec.md §4.11 describes.
func CommonSES(h *Handle, old, new []int, table *token.Table, cfg engconf.Config, debug bool) (edits.Script, error) {
	n, m := len(old), len(new)
	if n+m < cfg.QuickDiffThreshold || !cfg.UseAnchors {
		return h.RecurseMyers(old, new, 0, n, 0, m, cfg)
	}

	anchors := h.FindAnchors(old, new, 0, n, 0, m, cfg)
	chain := h.SelectChain(anchors)
	if len(chain) == 0 {
		return h.RecurseMyers(old, new, 0, n, 0, m, cfg)
	}

	var out edits.Script
	oldPos, newPos := 0, 0
	for _, a := range chain {
		gap, err := h.dispatchGap(old, new, oldPos, a.OldPos, newPos, a.NewPos, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, gap...)
		out = append(out, edits.EqualRun(old, a.OldPos, a.Length)...)
		oldPos = a.OldPos + a.Length
		newPos = a.NewPos + a.Length
	}
	tail, err := h.dispatchGap(old, new, oldPos, n, newPos, m, cfg)
	if err != nil {
		return nil, err
	}
	out = append(out, tail...)
	return out, nil
}
