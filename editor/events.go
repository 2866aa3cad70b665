package editor

import "github.com/iw2rmb/lineedit/buffer"

// ChangeEvent is a snapshot of the field a host can forward after a tick
// changed something.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection struct {
		Span   buffer.Span
		Active bool
	}
	CapsLock bool

	Text string
}

// Event builds a ChangeEvent from the current state.
func (f *Field) Event() ChangeEvent {
	ev := ChangeEvent{
		Version:  f.buf.Version(),
		Cursor:   f.buf.Cursor(),
		CapsLock: f.caps,
		Text:     f.buf.Text(),
	}
	if r, ok := f.buf.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Span = r
	}
	return ev
}
