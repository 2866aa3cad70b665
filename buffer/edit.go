package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// Insert inserts s at the cursor, or replaces the active selection.
//
// The whole insert is rejected when the result would exceed MaxLength; text
// is never truncated to fit. Line breaks are flattened to spaces.
func (b *Buffer) Insert(s string) bool {
	kind := editStructural
	if _, ok := b.Selection(); !ok && utf8.RuneCountInString(s) == 1 {
		kind = editTyping
	}
	return b.insert(s, kind)
}

// InsertText inserts s like Insert but always as its own undo step, even
// when s is a single character. Hosts use it for pasted text.
func (b *Buffer) InsertText(s string) bool {
	return b.insert(s, editStructural)
}

func (b *Buffer) insert(s string, kind editKind) bool {
	s = lineBreaks.Replace(s)
	r, ok := b.Selection()
	if s == "" {
		if ok {
			return b.DeleteSelection()
		}
		return false
	}
	if !ok {
		r = Span{Start: b.cursor, End: b.cursor}
	}
	if len(b.text)-r.Len()+len(s) > b.opt.MaxLength {
		return false
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeInsert)

	b.text = b.text[:r.Start] + s + b.text[r.End:]
	b.cursor = r.Start + len(s)
	b.sel = selectionState{}
	b.version++
	b.hist.observe(kind, prev, b.snapshot())
	b.commitChange(change)
	return true
}

// DeleteBackward applies backspace semantics: the selection goes first,
// otherwise the character left of the cursor is removed unless the cursor
// sits at MinCursor.
func (b *Buffer) DeleteBackward() bool {
	if r, ok := b.Selection(); ok {
		return b.deleteSpan(r, editStructural)
	}
	// A selection that clamps to nothing is dropped silently.
	b.sel = selectionState{}

	floor := b.floor()
	if b.cursor <= floor {
		return false
	}
	n := 1
	if !b.opt.DeleteCodeUnit {
		n = grapheme.PrevBoundary(b.text, b.cursor)
	}
	start := b.cursor - n
	if start < floor {
		start = floor
	}
	return b.deleteSpan(Span{Start: start, End: b.cursor}, editDelete)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.deleteSpan(r, editStructural)
}

func (b *Buffer) deleteSpan(r Span, kind editKind) bool {
	r = r.Normalize()
	if r.IsEmpty() {
		return false
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeDelete)

	b.text = b.text[:r.Start] + b.text[r.End:]
	b.cursor = r.Start
	b.sel = selectionState{}
	b.version++
	b.hist.observe(kind, prev, b.snapshot())
	b.commitChange(change)
	return true
}
