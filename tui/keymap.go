package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/lineedit/input"
)

// KeyMap maps terminal key strings to field keys.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right                     key.Binding
	SelectLeft, SelectRight         key.Binding
	WordLeft, WordRight             key.Binding
	SelectWordLeft, SelectWordRight key.Binding
	Home, End                       key.Binding
	SelectHome, SelectEnd           key.Binding
	Up, Down                        key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Escape    key.Binding

	Undo, Redo       key.Binding
	SelectAll        key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl+→", "word right")),

		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:        key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		SelectHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		SelectEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),

		Up:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "older entry")),
		Down: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "newer entry")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

type binding struct {
	b  key.Binding
	ev input.Event
}

func (km KeyMap) bindings() []binding {
	shift, ctrl := input.ModShift, input.ModCtrl
	return []binding{
		{km.Left, input.Event{Key: input.KeyLeft}},
		{km.Right, input.Event{Key: input.KeyRight}},
		{km.SelectLeft, input.Event{Key: input.KeyLeft, Mods: shift}},
		{km.SelectRight, input.Event{Key: input.KeyRight, Mods: shift}},
		{km.WordLeft, input.Event{Key: input.KeyLeft, Mods: ctrl}},
		{km.WordRight, input.Event{Key: input.KeyRight, Mods: ctrl}},
		{km.SelectWordLeft, input.Event{Key: input.KeyLeft, Mods: ctrl | shift}},
		{km.SelectWordRight, input.Event{Key: input.KeyRight, Mods: ctrl | shift}},
		{km.Home, input.Event{Key: input.KeyHome}},
		{km.End, input.Event{Key: input.KeyEnd}},
		{km.SelectHome, input.Event{Key: input.KeyHome, Mods: shift}},
		{km.SelectEnd, input.Event{Key: input.KeyEnd, Mods: shift}},
		{km.Up, input.Event{Key: input.KeyUp}},
		{km.Down, input.Event{Key: input.KeyDown}},
		{km.Backspace, input.Event{Key: input.KeyBackspace}},
		{km.Enter, input.Event{Key: input.KeyEnter}},
		{km.Escape, input.Event{Key: input.KeyEscape}},
		{km.Undo, input.Event{Key: input.KeyZ, Mods: ctrl}},
		{km.Redo, input.Event{Key: input.KeyY, Mods: ctrl}},
		{km.SelectAll, input.Event{Key: input.KeyA, Mods: ctrl}},
		{km.Copy, input.Event{Key: input.KeyC, Mods: ctrl}},
		{km.Cut, input.Event{Key: input.KeyX, Mods: ctrl}},
		{km.Paste, input.Event{Key: input.KeyV, Mods: ctrl}},
	}
}
