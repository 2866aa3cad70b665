package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/editor"
)

func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(200 * time.Millisecond)
		return t
	}
}

func newModel(cfg editor.Config) Model {
	return New(cfg).WithClock(stepClock())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypesRunesThroughLayout(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(runes("Hi!"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got, want := m.Field().Text(), "Hi! "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_RuneOffLayoutInsertedDirectly(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(runes("é"))
	if got, want := m.Field().Text(), "é"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_Paste(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\nb"), Paste: true})
	if got, want := m.Field().Text(), "a b"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_SingleRunePasteIsOwnUndoStep(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(runes("ab"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Paste: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Field().Text(), "ab"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
}

func TestModel_ChangedMsg(t *testing.T) {
	m := newModel(editor.Config{})
	m, cmd := m.Update(runes("a"))
	if cmd == nil {
		t.Fatalf("expected a command after a change")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("msg=%T, want ChangedMsg", cmd())
	}
	if got, want := msg.Event.Text, "a"; got != want {
		t.Fatalf("event text=%q, want %q", got, want)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if cmd == nil {
		t.Fatalf("expected a command after backspace")
	}
}

func TestModel_NoChangeNoCommand(t *testing.T) {
	m := newModel(editor.Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if cmd != nil {
		t.Fatalf("expected no command for a no-op")
	}
}

func TestModel_EnterEmitsSubmit(t *testing.T) {
	var got string
	m := newModel(editor.Config{OnEnter: func(s string) { got = s }})
	m, _ = m.Update(runes("ls"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got != "ls" {
		t.Fatalf("OnEnter text=%q, want %q", got, "ls")
	}
	if cmd == nil {
		t.Fatalf("expected a command after enter")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok || msg.Text != "ls" {
		t.Fatalf("msg=%#v, want SubmitMsg{ls}", cmd())
	}
}

func TestModel_EscapeEmitsCancel(t *testing.T) {
	m := newModel(editor.Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected a command after escape")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Fatalf("msg=%T, want CancelMsg", cmd())
	}
}

func TestModel_UndoRedo(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(runes("ab "))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Field().Text(), ""; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got, want := m.Field().Text(), "ab "; got != want {
		t.Fatalf("text after redo=%q, want %q", got, want)
	}
}

func TestModel_WordJumpAndSelectAll(t *testing.T) {
	m := newModel(editor.Config{Text: "one two"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got, want := m.Field().Cursor(), 4; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	if got, want := m.Field().Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = m.Update(runes("x"))
	if got, want := m.Field().Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_RepeatedKeyMessagesEachAct(t *testing.T) {
	m := newModel(editor.Config{Text: "abc"})
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got, want := m.Field().Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := newModel(editor.Config{})
	m, _ = m.Update(runes("first"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Field().Buffer().SetText("")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.Field().Text(), "first"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got, want := m.Field().Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestModel_BlurredIgnoresKeys(t *testing.T) {
	m := newModel(editor.Config{}).Blur()
	m, cmd := m.Update(runes("a"))
	if cmd != nil || m.Field().Text() != "" {
		t.Fatalf("expected blurred model to ignore keys, text=%q", m.Field().Text())
	}
	m = m.Focus()
	m, _ = m.Update(runes("a"))
	if got, want := m.Field().Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestKeyMap_CustomBinding(t *testing.T) {
	km := DefaultKeyMap()
	km.Undo.SetKeys("ctrl+u")
	m := newModel(editor.Config{}).WithKeyMap(km)
	m, _ = m.Update(runes("ab "))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got, want := m.Field().Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
