package editor

import (
	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/input"
	"github.com/iw2rmb/lineedit/repeat"
)

// Config configures a Field.
type Config struct {
	// Initial text for the buffer. The prefix is prepended when missing.
	Text string

	MaxLength int    // default: 1024 bytes
	MinCursor int    // floor for cursor, selection and deletion
	Prefix    string // re-applied to every loaded history entry

	OnChange func(text string)
	OnEnter  func(text string)
	OnEscape func()

	Chars     input.CharTable  // default: input.USLayout()
	Clipboard buffer.Clipboard // default: private in-memory clipboard
	Timing    repeat.Timing    // zero fields take repeat.DefaultTiming()

	HistoryLimit int // default: 50
	UndoLimit    int // default: 1000

	// Forwarded to buffer.Options.
	DeleteCodeUnit bool

	// Rendering options. Width is in terminal cells; 0 disables scrolling.
	Width int
	Style Style
}

func (c Config) normalize() Config {
	if c.Chars == nil {
		c.Chars = input.USLayout()
	}
	c.Timing = c.Timing.Normalize()
	if c.Width < 0 {
		c.Width = 0
	}
	return c
}
