package buffer

import (
	"time"
	"unicode/utf8"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// Snapshot is an immutable copy of the buffer state kept on the undo stacks.
type Snapshot struct {
	Text   string
	Cursor int
	Time   time.Time
}

type editKind uint8

const (
	editTyping     editKind = iota // one typed character, no selection
	editDelete                     // one backspace, no selection
	editStructural                 // paste, cut, selection delete/replace, SetText
)

type sessionKind uint8

const (
	sessionNone sessionKind = iota
	sessionTyping
	sessionDeleting
)

// undoEngine keeps word-grained history.
//
// The undo stack holds the state after every completed step, with the state
// before the first edit at the bottom. Typing pushes one entry per finished
// word, every structural edit pushes its own entry, and a run of backspaces
// collapses into one.
type undoEngine struct {
	undo []Snapshot
	redo []Snapshot

	session       sessionKind
	word          string
	lastKeystroke time.Time

	limit int
}

func (b *Buffer) snapshot() Snapshot {
	return Snapshot{
		Text:   b.text,
		Cursor: b.cursor,
		Time:   b.opt.Now(),
	}
}

func (b *Buffer) restore(s Snapshot) {
	b.text = s.Text
	b.cursor = b.clampOffset(s.Cursor)
	b.sel = selectionState{}
}

// observe records an edit that turned prev into cur.
func (e *undoEngine) observe(kind editKind, prev, cur Snapshot) {
	if e.limit <= 0 {
		return
	}
	e.redo = nil

	switch kind {
	case editTyping:
		e.lastKeystroke = cur.Time
		if e.session != sessionTyping {
			e.push(prev, true)
			e.session = sessionTyping
			e.word = grapheme.TrailingWord(cur.Text, cur.Cursor)
			return
		}
		r, _ := utf8.DecodeLastRuneInString(cur.Text[:cur.Cursor])
		if cur.Cursor > 0 && grapheme.IsBoundary(r) && e.word != "" {
			e.push(cur, false)
			e.word = ""
			return
		}
		e.word = grapheme.TrailingWord(cur.Text, cur.Cursor)

	case editDelete:
		if e.session == sessionDeleting && len(e.undo) > 0 {
			e.undo[len(e.undo)-1] = cur
			return
		}
		e.push(prev, true)
		e.push(cur, false)
		e.session = sessionDeleting
		e.word = ""

	default:
		e.push(prev, true)
		e.push(cur, false)
		e.end()
	}
}

// push appends s to the undo stack. With dedup, s is dropped when it matches
// the top entry.
func (e *undoEngine) push(s Snapshot, dedup bool) {
	if dedup && len(e.undo) > 0 {
		top := e.undo[len(e.undo)-1]
		if top.Text == s.Text && top.Cursor == s.Cursor {
			return
		}
	}
	e.undo = append(e.undo, s)
	if len(e.undo) > e.limit {
		e.undo = e.undo[len(e.undo)-e.limit:]
	}
}

func (e *undoEngine) end() {
	e.session = sessionNone
	e.word = ""
}

// moved ends a backspace run once the cursor jumps elsewhere, so deletes on
// either side of the jump undo separately.
func (e *undoEngine) moved() {
	if e.session == sessionDeleting {
		e.end()
	}
}

// back moves the top entry to the redo stack and returns the new top. The
// bottom entry is the baseline and is never popped.
func (e *undoEngine) back() (Snapshot, bool) {
	if len(e.undo) < 2 {
		return Snapshot{}, false
	}
	i := len(e.undo) - 1
	e.redo = append(e.redo, e.undo[i])
	e.undo = e.undo[:i]
	e.end()
	return e.undo[i-1], true
}

// forward pops the redo stack and records cur on the undo stack.
func (e *undoEngine) forward(cur Snapshot) (Snapshot, bool) {
	if len(e.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(e.redo) - 1
	next := e.redo[i]
	e.redo = e.redo[:i]
	e.push(cur, false)
	e.end()
	return next, true
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) >= 2 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// UndoSnapshots returns a copy of the undo stack, oldest first.
func (b *Buffer) UndoSnapshots() []Snapshot {
	return append([]Snapshot(nil), b.hist.undo...)
}

// LastKeystroke returns the time of the last typed character.
func (b *Buffer) LastKeystroke() time.Time { return b.hist.lastKeystroke }

// Undo restores the state below the top of the undo stack.
func (b *Buffer) Undo() bool {
	change := b.beginChange(ChangeUndo)
	prev, ok := b.hist.back()
	if !ok {
		return false
	}
	b.restore(prev)
	b.version++
	b.commitChange(change)
	return true
}

// Redo re-applies the most recently undone step.
func (b *Buffer) Redo() bool {
	change := b.beginChange(ChangeRedo)
	next, ok := b.hist.forward(b.snapshot())
	if !ok {
		return false
	}
	b.restore(next)
	b.version++
	b.commitChange(change)
	return true
}
