package grapheme

import "testing"

func TestNextBoundary_LeadByteClasses(t *testing.T) {
	text := "a" + "é" + "テ" + "😀"
	cases := []struct {
		pos  int
		want string
	}{
		{pos: 0, want: "a"},
		{pos: 1, want: "é"},
		{pos: 3, want: "テ"},
		{pos: 6, want: "😀"},
		{pos: 10, want: ""},
		{pos: -1, want: ""},
	}
	for _, tc := range cases {
		if got := NextBoundary(text, tc.pos); got != tc.want {
			t.Fatalf("NextBoundary(%d)=%q, want %q", tc.pos, got, tc.want)
		}
	}
}

func TestNextBoundary_TruncatedSequence(t *testing.T) {
	text := "a\xE3\x81"
	if got, want := NextBoundary(text, 1), "\xE3\x81"; got != want {
		t.Fatalf("NextBoundary=%q, want %q", got, want)
	}
}

func TestPrevBoundary_LeadByteClasses(t *testing.T) {
	text := "a" + "é" + "テ" + "😀"
	cases := []struct {
		pos  int
		want int
	}{
		{pos: 0, want: 0},
		{pos: 1, want: 1},
		{pos: 3, want: 2},
		{pos: 6, want: 3},
		{pos: 10, want: 4},
		{pos: 11, want: 0},
	}
	for _, tc := range cases {
		if got := PrevBoundary(text, tc.pos); got != tc.want {
			t.Fatalf("PrevBoundary(%d)=%d, want %d", tc.pos, got, tc.want)
		}
	}
}

func TestPrevBoundary_Malformed(t *testing.T) {
	if got := PrevBoundary("a\x80", 2); got != 1 {
		t.Fatalf("stray continuation: got %d, want 1", got)
	}
	if got := PrevBoundary("\x80\x80\x80\x80\x80", 5); got != 1 {
		t.Fatalf("continuation run: got %d, want 1", got)
	}
}

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "b"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("split len=%d, want %d", len(got), 3)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
}

func TestIsBoundary(t *testing.T) {
	for _, r := range []rune{' ', '\t', '.', ',', '!', '+', '\x01'} {
		if !IsBoundary(r) {
			t.Fatalf("%q should be a boundary", r)
		}
	}
	for _, r := range []rune{'a', 'Z', '7', 'é', 'テ'} {
		if IsBoundary(r) {
			t.Fatalf("%q should not be a boundary", r)
		}
	}
}

func TestTrailingWord(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		want string
	}{
		{text: "hello wor", pos: 9, want: "wor"},
		{text: "hello ", pos: 6, want: ""},
		{text: "héllo", pos: 6, want: "héllo"},
		{text: "a,b", pos: 3, want: "b"},
		{text: "abc", pos: 1, want: "a"},
	}
	for _, tc := range cases {
		if got := TrailingWord(tc.text, tc.pos); got != tc.want {
			t.Fatalf("TrailingWord(%q, %d)=%q, want %q", tc.text, tc.pos, got, tc.want)
		}
	}
}

func TestWordLeftRight(t *testing.T) {
	text := "say  hello world"
	if got, want := WordLeft(text, len(text), 0), 11; got != want {
		t.Fatalf("WordLeft end=%d, want %d", got, want)
	}
	if got, want := WordLeft(text, 11, 0), 5; got != want {
		t.Fatalf("WordLeft from 11=%d, want %d", got, want)
	}
	if got, want := WordLeft(text, 5, 0), 0; got != want {
		t.Fatalf("WordLeft from 5=%d, want %d", got, want)
	}
	if got, want := WordRight(text, 0), 3; got != want {
		t.Fatalf("WordRight from 0=%d, want %d", got, want)
	}
	if got, want := WordRight(text, 3), 10; got != want {
		t.Fatalf("WordRight from 3=%d, want %d", got, want)
	}
}

func TestWordLeft_RespectsFloor(t *testing.T) {
	text := "/ban user"
	if got, want := WordLeft(text, 4, 1), 1; got != want {
		t.Fatalf("WordLeft=%d, want %d", got, want)
	}
}

func TestWordMoves_KeepClustersWhole(t *testing.T) {
	text := "x éé"
	end := len(text)
	if got, want := WordLeft(text, end, 0), 2; got != want {
		t.Fatalf("WordLeft=%d, want %d", got, want)
	}
	if got := WordRight(text, 1); got != end {
		t.Fatalf("WordRight=%d, want %d", got, end)
	}
}
