package buffer

import (
	"strings"
	"time"
)

const (
	DefaultMaxLength = 1024
	DefaultUndoLimit = 1000
)

type Options struct {
	MaxLength int // default: 1024 bytes
	MinCursor int // floor for cursor, selection and deletion

	// Prefix is prepended to the initial text when missing. History loads
	// re-apply it through the editor.
	Prefix string

	UndoLimit int // default: 1000; negative disables undo

	// DeleteCodeUnit makes DeleteBackward remove a single byte instead of a
	// whole character. Multi-byte characters are corrupted in this mode.
	DeleteCodeUnit bool

	Clipboard Clipboard        // default: a private MemoryClipboard
	OnChange  func(text string) // called once per effective text change
	Now       func() time.Time  // snapshot clock; default: time.Now
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the single-line edit state: text, cursor, selection and undo.
type Buffer struct {
	text    string
	version uint64

	cursor int
	sel    selectionState

	opt  Options
	hist undoEngine

	lastChange    Change
	hasLastChange bool
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func New(text string, opt Options) *Buffer {
	if opt.MaxLength <= 0 {
		opt.MaxLength = DefaultMaxLength
	}
	if opt.MinCursor < 0 {
		opt.MinCursor = 0
	}
	if opt.UndoLimit == 0 {
		opt.UndoLimit = DefaultUndoLimit
	}
	if opt.Clipboard == nil {
		opt.Clipboard = NewMemoryClipboard()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	text = lineBreaks.Replace(text)
	if opt.Prefix != "" && !strings.HasPrefix(text, opt.Prefix) {
		text = opt.Prefix + text
	}
	text = truncate(text, opt.MaxLength)

	return &Buffer{
		text:   text,
		cursor: len(text),
		opt:    opt,
		hist:   undoEngine{limit: opt.UndoLimit},
	}
}

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) MinCursor() int { return b.opt.MinCursor }

func (b *Buffer) MaxLength() int { return b.opt.MaxLength }

func (b *Buffer) Prefix() string { return b.opt.Prefix }

func (b *Buffer) Clipboard() Clipboard { return b.opt.Clipboard }

// SetText replaces the whole text, moves the cursor to the end and clears the
// selection. Line breaks are flattened to spaces and the text is cut to the
// maximum length.
func (b *Buffer) SetText(s string) {
	s = truncate(lineBreaks.Replace(s), b.opt.MaxLength)
	if s == b.text && b.cursor == len(s) && !b.sel.active {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSet)

	b.text = s
	b.cursor = len(s)
	b.sel = selectionState{}
	b.version++
	if prev.Text != b.text {
		b.hist.observe(editStructural, prev, b.snapshot())
	}
	b.commitChange(change)
}

func (b *Buffer) SetCursor(p int) {
	next := b.clampOffset(p)
	if next == b.cursor {
		return
	}
	b.hist.moved()
	b.cursor = next
	b.version++
}

// Selection returns the normalized selection clamped to
// [MinCursor, Len]. Empty selections are reported as inactive.
func (b *Buffer) Selection() (Span, bool) {
	if !b.sel.active {
		return Span{}, false
	}
	r := Span{Start: b.clampOffset(b.sel.anchor), End: b.clampOffset(b.sel.end)}.Normalize()
	if r.IsEmpty() {
		return Span{}, false
	}
	return r, true
}

// SelectionRaw returns the raw anchor/end pair without normalization.
func (b *Buffer) SelectionRaw() (Span, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Span{}, false
	}
	return Span{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects [anchor, end) in either direction and moves the
// cursor to end.
func (b *Buffer) SetSelection(anchor, end int) {
	anchor = b.clampOffset(anchor)
	end = b.clampOffset(end)

	next := selectionState{active: true, anchor: anchor, end: end}
	if anchor == end {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == end {
		return
	}
	if b.cursor != end {
		b.hist.moved()
	}
	b.sel = next
	b.cursor = end
	b.version++
}

// SelectAll selects everything after the minimum cursor and parks the cursor
// at the minimum cursor.
func (b *Buffer) SelectAll() bool {
	floor := b.floor()
	next := selectionState{active: true, anchor: len(b.text), end: floor}
	if floor == len(b.text) {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == floor {
		return false
	}
	b.sel = next
	b.cursor = floor
	b.version++
	return true
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// floor is the effective lower bound for offsets. A text shorter than
// MinCursor pins the floor to its end.
func (b *Buffer) floor() int {
	if b.opt.MinCursor > len(b.text) {
		return len(b.text)
	}
	return b.opt.MinCursor
}

func (b *Buffer) clampOffset(p int) int {
	p = clampInt(p, b.floor(), len(b.text))
	return alignLeft(b.text, p, b.floor())
}
