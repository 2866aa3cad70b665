package buffer

import "github.com/iw2rmb/lineedit/internal/grapheme"

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
)

// MoveCursor moves the cursor by delta characters, clamped to
// [MinCursor, Len]. Without extend the selection is cleared; with extend the
// selection anchor stays put and its end follows the cursor.
func (b *Buffer) MoveCursor(delta int, extend bool) bool {
	floor := b.floor()
	next := b.cursor
	for ; delta < 0 && next > floor; delta++ {
		next -= grapheme.PrevBoundary(b.text, next)
	}
	for ; delta > 0 && next < len(b.text); delta-- {
		next += len(grapheme.NextBoundary(b.text, next))
	}
	return b.moveTo(b.clampOffset(next), extend)
}

// MoveWord jumps to the previous or next word boundary.
func (b *Buffer) MoveWord(dir MoveDir, extend bool) bool {
	var next int
	switch dir {
	case DirLeft:
		next = grapheme.WordLeft(b.text, b.cursor, b.floor())
	case DirRight:
		next = grapheme.WordRight(b.text, b.cursor)
	default:
		return false
	}
	return b.moveTo(b.clampOffset(next), extend)
}

func (b *Buffer) MoveHome(extend bool) bool {
	return b.moveTo(b.floor(), extend)
}

func (b *Buffer) MoveEnd(extend bool) bool {
	return b.moveTo(len(b.text), extend)
}

func (b *Buffer) moveTo(next int, extend bool) bool {
	prevCursor := b.cursor
	prevSel := b.sel

	nextSel := selectionState{}
	if extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return false
	}

	if next != prevCursor {
		b.hist.moved()
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
	return true
}
