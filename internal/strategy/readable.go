package strategy

import (
	"strings"

	"github.com/fishan/sesdiff/internal/edits"
	"github.com/fishan/sesdiff/internal/engconf"
	"github.com/fishan/sesdiff/internal/token"
)

// Boundary shifting preferences (higher = more preferred).
const (
	blankLineBonus   = 10
	startOfLineBonus = 3
	endOfLineBonus   = 3
	punctuationBonus = 2
)

// ReadableSES is a supplemental strategy (SPEC_FULL.md §8, not part of
// spec.md's own three): it runs commonSES, then reshapes Add/Remove
// boundaries to prefer blank lines, sequence edges, and punctuation as
// separators, the same readability pass the teacher applies as a final
// polish step.
//
// Grounded directly on the teacher's shiftBoundaries / shiftDelete /
// shiftInsert / scoreBoundary / mergeAdjacentOps (dacharyc-diffx/shift.go),
// adapted from string-element boundary scoring to integer-symbol boundary
// scoring via the token table, and from the teacher's flat DiffOp-with-both-
// sides-AStart/AEnd/BStart/BEnd shape to this package's run-length block
// shape so a shift can be applied consistently to both the old and new
// index spaces of the neighboring Equal run it borrows from.
func ReadableSES(h *Handle, old, new []int, table *token.Table, cfg engconf.Config, debug bool) (edits.Script, error) {
	base, err := CommonSES(h, old, new, table, cfg, debug)
	if err != nil {
		return nil, err
	}
	blocks := toBlocks(base)
	shiftBlocks(blocks, old, new, table)
	blocks = mergeBlocks(blocks)
	return fromBlocks(blocks, old, new), nil
}

// block is a maximal run of one edit kind, tracked in both the old and
// new index spaces (one side is empty for Remove/Add).
type block struct {
	kind               edits.Kind
	oldStart, oldEnd   int
	newStart, newEnd   int
}

func toBlocks(script edits.Script) []block {
	var blocks []block
	oldPos, newPos := 0, 0
	for i := 0; i < len(script); {
		k := script[i].Kind
		j := i
		for j < len(script) && script[j].Kind == k {
			j++
		}
		n := j - i
		b := block{kind: k}
		switch k {
		case edits.Equal:
			b.oldStart, b.oldEnd = oldPos, oldPos+n
			b.newStart, b.newEnd = newPos, newPos+n
			oldPos += n
			newPos += n
		case edits.Remove:
			b.oldStart, b.oldEnd = oldPos, oldPos+n
			b.newStart, b.newEnd = newPos, newPos
			oldPos += n
		case edits.Add:
			b.oldStart, b.oldEnd = oldPos, oldPos
			b.newStart, b.newEnd = newPos, newPos+n
			newPos += n
		}
		blocks = append(blocks, b)
		i = j
	}
	return blocks
}

func fromBlocks(blocks []block, old, new []int) edits.Script {
	var out edits.Script
	for _, b := range blocks {
		switch b.kind {
		case edits.Equal:
			out = append(out, edits.EqualRun(old, b.oldStart, b.oldEnd-b.oldStart)...)
		case edits.Remove:
			out = append(out, edits.RemoveRun(old, b.oldStart, b.oldEnd-b.oldStart)...)
		case edits.Add:
			out = append(out, edits.AddRun(new, b.newStart, b.newEnd-b.newStart)...)
		}
	}
	return out
}

func shiftBlocks(blocks []block, old, new []int, table *token.Table) {
	for i := range blocks {
		switch blocks[i].kind {
		case edits.Remove:
			shiftDeleteBlock(blocks, i, old, table)
		case edits.Add:
			shiftInsertBlock(blocks, i, new, table)
		}
	}
}

// shiftDeleteBlock shifts a Remove run's old-side boundary, borrowing
// length from (and returning length to) the adjacent Equal run.
func shiftDeleteBlock(blocks []block, i int, old []int, table *token.Table) {
	b := blocks[i]
	if b.oldEnd-b.oldStart == 0 {
		return
	}

	maxForward := 0
	if i+1 < len(blocks) && blocks[i+1].kind == edits.Equal {
		limit := blocks[i+1].oldEnd - blocks[i+1].oldStart
		for k := 0; k < limit; k++ {
			if b.oldEnd+k >= len(old) || old[b.oldStart+k] != old[b.oldEnd+k] {
				break
			}
			maxForward = k + 1
		}
	}

	maxBackward := 0
	if i-1 >= 0 && blocks[i-1].kind == edits.Equal {
		limit := blocks[i-1].oldEnd - blocks[i-1].oldStart
		for k := 0; k < limit; k++ {
			if b.oldStart-k-1 < 0 || old[b.oldEnd-k-1] != old[b.oldStart-k-1] {
				break
			}
			maxBackward = k + 1
		}
	}

	if maxForward == 0 && maxBackward == 0 {
		return
	}

	bestShift := 0
	bestScore := scoreBoundary(b.oldStart, b.oldEnd, old, table)
	for shift := 1; shift <= maxForward; shift++ {
		if s := scoreBoundary(b.oldStart+shift, b.oldEnd+shift, old, table); s > bestScore {
			bestScore, bestShift = s, shift
		}
	}
	for shift := 1; shift <= maxBackward; shift++ {
		if s := scoreBoundary(b.oldStart-shift, b.oldEnd-shift, old, table); s > bestScore {
			bestScore, bestShift = s, -shift
		}
	}
	if bestShift == 0 {
		return
	}

	if bestShift > 0 {
		blocks[i].oldStart += bestShift
		blocks[i].oldEnd += bestShift
		blocks[i+1].oldStart += bestShift
		blocks[i+1].newStart += bestShift
	} else {
		shift := -bestShift
		blocks[i].oldStart -= shift
		blocks[i].oldEnd -= shift
		blocks[i-1].oldEnd -= shift
		blocks[i-1].newEnd -= shift
	}
}

// shiftInsertBlock is shiftDeleteBlock's mirror image over the new side.
func shiftInsertBlock(blocks []block, i int, new []int, table *token.Table) {
	b := blocks[i]
	if b.newEnd-b.newStart == 0 {
		return
	}

	maxForward := 0
	if i+1 < len(blocks) && blocks[i+1].kind == edits.Equal {
		limit := blocks[i+1].newEnd - blocks[i+1].newStart
		for k := 0; k < limit; k++ {
			if b.newEnd+k >= len(new) || new[b.newStart+k] != new[b.newEnd+k] {
				break
			}
			maxForward = k + 1
		}
	}

	maxBackward := 0
	if i-1 >= 0 && blocks[i-1].kind == edits.Equal {
		limit := blocks[i-1].newEnd - blocks[i-1].newStart
		for k := 0; k < limit; k++ {
			if b.newStart-k-1 < 0 || new[b.newEnd-k-1] != new[b.newStart-k-1] {
				break
			}
			maxBackward = k + 1
		}
	}

	if maxForward == 0 && maxBackward == 0 {
		return
	}

	bestShift := 0
	bestScore := scoreBoundary(b.newStart, b.newEnd, new, table)
	for shift := 1; shift <= maxForward; shift++ {
		if s := scoreBoundary(b.newStart+shift, b.newEnd+shift, new, table); s > bestScore {
			bestScore, bestShift = s, shift
		}
	}
	for shift := 1; shift <= maxBackward; shift++ {
		if s := scoreBoundary(b.newStart-shift, b.newEnd-shift, new, table); s > bestScore {
			bestScore, bestShift = s, -shift
		}
	}
	if bestShift == 0 {
		return
	}

	if bestShift > 0 {
		blocks[i].newStart += bestShift
		blocks[i].newEnd += bestShift
		blocks[i+1].newStart += bestShift
		blocks[i+1].oldStart += bestShift
	} else {
		shift := -bestShift
		blocks[i].newStart -= shift
		blocks[i].newEnd -= shift
		blocks[i-1].newEnd -= shift
		blocks[i-1].oldEnd -= shift
	}
}

func mergeBlocks(blocks []block) []block {
	filtered := blocks[:0:0]
	for _, b := range blocks {
		switch b.kind {
		case edits.Equal:
			if b.oldEnd == b.oldStart {
				continue
			}
		case edits.Remove:
			if b.oldEnd == b.oldStart {
				continue
			}
		case edits.Add:
			if b.newEnd == b.newStart {
				continue
			}
		}
		filtered = append(filtered, b)
	}
	if len(filtered) == 0 {
		return filtered
	}

	merged := []block{filtered[0]}
	for _, b := range filtered[1:] {
		last := &merged[len(merged)-1]
		if last.kind == b.kind {
			switch b.kind {
			case edits.Equal:
				last.oldEnd, last.newEnd = b.oldEnd, b.newEnd
			case edits.Remove:
				last.oldEnd = b.oldEnd
			case edits.Add:
				last.newEnd = b.newEnd
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

func scoreBoundary(start, end int, ids []int, table *token.Table) int {
	score := 0
	if start > 0 && isBlankSym(table, ids[start-1]) {
		score += blankLineBonus
	}
	if end < len(ids) && isBlankSym(table, ids[end]) {
		score += blankLineBonus
	}
	if start == 0 {
		score += startOfLineBonus
	}
	if end == len(ids) {
		score += endOfLineBonus
	}
	if start > 0 && endsWithPunctuationSym(table, ids[start-1]) {
		score += punctuationBonus
	}
	if end < len(ids) && startsWithPunctuationSym(table, ids[end]) {
		score += punctuationBonus
	}
	return score
}

func isBlankSym(table *token.Table, sym int) bool {
	return strings.TrimSpace(table.String(sym)) == ""
}

func endsWithPunctuationSym(table *token.Table, sym int) bool {
	s := strings.TrimSpace(table.String(sym))
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '.' || last == '!' || last == '?' || last == ':' || last == ';'
}

func startsWithPunctuationSym(table *token.Table, sym int) bool {
	s := strings.TrimSpace(table.String(sym))
	if s == "" {
		return false
	}
	first := s[0]
	return first == '-' || first == '*' || first == '#' || first == '>'
}
