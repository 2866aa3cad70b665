package buffer

import "testing"

func TestNew_DefaultsAndPrefix(t *testing.T) {
	b := New("ban", Options{Prefix: "/", MinCursor: 1})
	if got, want := b.Text(), "/ban"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 4; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := b.MaxLength(), DefaultMaxLength; got != want {
		t.Fatalf("max length=%d, want %d", got, want)
	}
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}
}

func TestNew_FlattensAndTruncates(t *testing.T) {
	b := New("ab\ncd", Options{MaxLength: 4})
	if got, want := b.Text(), "ab c"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("/ban", Options{MinCursor: 1})

	b.SetCursor(-5)
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(1)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(99)
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestBuffer_SetCursor_AlignsToCharacter(t *testing.T) {
	b := New("aテb", Options{})
	b.SetCursor(2)
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}

func TestBuffer_SetSelection_NormalizesAndClamps(t *testing.T) {
	b := New("/hello", Options{MinCursor: 1})

	b.SetSelection(99, -1)
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	if want := (Span{Start: 1, End: 6}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	raw, ok := b.SelectionRaw()
	if !ok || raw != (Span{Start: 6, End: 1}) {
		t.Fatalf("raw selection=%v ok=%v, want {6 1}", raw, ok)
	}
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	v := b.Version()
	b.SetSelection(6, 1)
	if b.Version() != v {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetSelection(3, 3)
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected empty selection to be inactive")
	}
}

func TestBuffer_ClearSelection_Idempotent(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(0, 5)

	b.ClearSelection()
	v := b.Version()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection")
	}

	b.ClearSelection()
	if b.Version() != v {
		t.Fatalf("version=%d, want %d", b.Version(), v)
	}
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_SelectAll_RespectsMinCursor(t *testing.T) {
	b := New("/kick bob", Options{MinCursor: 1})
	if !b.SelectAll() {
		t.Fatalf("expected SelectAll=true")
	}
	r, ok := b.Selection()
	if !ok || r != (Span{Start: 1, End: 9}) {
		t.Fatalf("selection=%v ok=%v, want {1 9}", r, ok)
	}
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
	if b.SelectAll() {
		t.Fatalf("expected repeated SelectAll=false")
	}
}

func TestBuffer_SelectAll_EmptyText(t *testing.T) {
	b := New("", Options{})
	if b.SelectAll() {
		t.Fatalf("expected SelectAll=false on empty text")
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestBuffer_SetText_ReplacesAndNotifies(t *testing.T) {
	var calls []string
	b := New("old", Options{OnChange: func(s string) { calls = append(calls, s) }})
	b.SetSelection(0, 2)

	b.SetText("new\ntext")
	if got, want := b.Text(), "new text"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 8; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if len(calls) != 1 || calls[0] != "new text" {
		t.Fatalf("OnChange calls=%q, want [\"new text\"]", calls)
	}

	b.SetText("new text")
	if len(calls) != 1 {
		t.Fatalf("expected no notification for identical text, got %q", calls)
	}
}

func TestBuffer_MinCursorAboveTextLength(t *testing.T) {
	b := New("", Options{MinCursor: 3})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
	if b.DeleteBackward() {
		t.Fatalf("expected DeleteBackward=false")
	}
	if !b.Insert("a") {
		t.Fatalf("expected Insert=true")
	}
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
}
