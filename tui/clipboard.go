package tui

import "github.com/atotto/clipboard"

// SystemClipboard shares the OS clipboard. Fields default to a private
// in-memory clipboard; pass this as editor.Config.Clipboard to opt in.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Available reports whether a system clipboard tool was found.
func (SystemClipboard) Available() bool { return !clipboard.Unsupported }
