package buffer

// Clipboard is the text store used by Cut, Copy and Paste.
//
// Errors never surface to the caller; a failed read or write turns the
// operation into a no-op.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// MemoryClipboard is a process-local clipboard. It is the default for every
// Buffer and is never shared with the operating system.
type MemoryClipboard struct {
	text string
}

func NewMemoryClipboard() *MemoryClipboard { return &MemoryClipboard{} }

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// Copy writes the selected text to the clipboard.
func (b *Buffer) Copy() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.opt.Clipboard.WriteText(b.text[r.Start:r.End]) == nil
}

// Cut copies the selected text and deletes it. Nothing is deleted when the
// clipboard write fails.
func (b *Buffer) Cut() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	if err := b.opt.Clipboard.WriteText(b.text[r.Start:r.End]); err != nil {
		return false
	}
	return b.deleteSpan(r, editStructural)
}

// Paste inserts the clipboard text through the regular insert rules.
func (b *Buffer) Paste() bool {
	s, err := b.opt.Clipboard.ReadText()
	if err != nil || s == "" {
		return false
	}
	return b.insert(s, editStructural)
}
