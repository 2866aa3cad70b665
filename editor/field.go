package editor

import (
	"time"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/history"
	"github.com/iw2rmb/lineedit/input"
	"github.com/iw2rmb/lineedit/repeat"
)

// Field is one input field: buffer, submission log, repeat state and the
// caps lock toggle. Fields are independent of each other; every field keeps
// its own repeat timers.
type Field struct {
	cfg Config
	buf *buffer.Buffer
	log *history.Log
	rep *repeat.Scheduler

	focused bool
	caps    bool

	prev  map[input.Key]bool
	keys  []input.Key
	now   time.Time
	xOff  int
	chars []input.Key
}

func New(cfg Config) *Field {
	cfg = cfg.normalize()
	f := &Field{
		cfg:     cfg,
		log:     history.New(cfg.HistoryLimit),
		rep:     repeat.NewScheduler(),
		focused: true,
		prev:    make(map[input.Key]bool),
		keys:    input.AllKeys(),
		chars:   cfg.Chars.Keys(),
	}
	f.buf = buffer.New(cfg.Text, buffer.Options{
		MaxLength:      cfg.MaxLength,
		MinCursor:      cfg.MinCursor,
		Prefix:         cfg.Prefix,
		UndoLimit:      cfg.UndoLimit,
		DeleteCodeUnit: cfg.DeleteCodeUnit,
		Clipboard:      cfg.Clipboard,
		OnChange:       cfg.OnChange,
		Now:            f.clock,
	})
	return f
}

// clock feeds the tick time to undo snapshots.
func (f *Field) clock() time.Time {
	if f.now.IsZero() {
		return time.Now()
	}
	return f.now
}

func (f *Field) Buffer() *buffer.Buffer { return f.buf }

func (f *Field) History() *history.Log { return f.log }

func (f *Field) Repeat() *repeat.Scheduler { return f.rep }

func (f *Field) Text() string { return f.buf.Text() }

func (f *Field) Cursor() int { return f.buf.Cursor() }

func (f *Field) Selection() (buffer.Span, bool) { return f.buf.Selection() }

func (f *Field) CapsLock() bool { return f.caps }

func (f *Field) Focused() bool { return f.focused }

// SetTiming replaces the repeat profiles. Zero fields take the defaults.
func (f *Field) SetTiming(t repeat.Timing) {
	f.cfg.Timing = t.Normalize()
}

// SetWidth changes the render width in cells. 0 disables scrolling.
func (f *Field) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	f.cfg.Width = w
}

// Focus lets Update act on input again.
func (f *Field) Focus() { f.focused = true }

// Blur stops the field from acting on input. Key state is still tracked
// while blurred, so a key held across refocus does nothing until it is
// pressed again.
func (f *Field) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	f.rep.Activate(input.KeyNone)
	f.rep.Reset()
}

// Reset clears the text back to the prefix and leaves history browsing.
func (f *Field) Reset() {
	f.log.Reset()
	f.buf.SetText(f.cfg.Prefix)
}
