package input

import "testing"

func TestCharPair_Resolve_CaseRule(t *testing.T) {
	letter := CharPair{Plain: "a", Shifted: "A"}
	digit := CharPair{Plain: "1", Shifted: "!"}

	cases := []struct {
		pair        CharPair
		shift, caps bool
		want        string
	}{
		{pair: letter, shift: false, caps: false, want: "a"},
		{pair: letter, shift: true, caps: false, want: "A"},
		{pair: letter, shift: false, caps: true, want: "A"},
		{pair: letter, shift: true, caps: true, want: "a"},
		{pair: digit, shift: false, caps: false, want: "1"},
		{pair: digit, shift: true, caps: false, want: "!"},
		{pair: digit, shift: false, caps: true, want: "1"},
		{pair: digit, shift: true, caps: true, want: "!"},
	}
	for _, tc := range cases {
		if got := tc.pair.Resolve(tc.shift, tc.caps); got != tc.want {
			t.Fatalf("Resolve(%q, shift=%v, caps=%v)=%q, want %q", tc.pair.Plain, tc.shift, tc.caps, got, tc.want)
		}
	}
}

func TestCharPair_Resolve_NonASCIILetter(t *testing.T) {
	p := CharPair{Plain: "é", Shifted: "É"}
	if got, want := p.Resolve(false, true), "É"; got != want {
		t.Fatalf("Resolve=%q, want %q", got, want)
	}
}

func TestCharTable_KeysSorted(t *testing.T) {
	tbl := CharTable{KeyZ: {}, KeyA: {}, Key5: {}}
	keys := tbl.Keys()
	if len(keys) != 3 || keys[0] != Key5 || keys[1] != KeyA || keys[2] != KeyZ {
		t.Fatalf("keys=%v, want [5 a z]", keys)
	}
}

func TestUSLayout_Lookup(t *testing.T) {
	tbl := USLayout()
	cases := []struct {
		s     string
		key   Key
		shift bool
	}{
		{s: "a", key: KeyA, shift: false},
		{s: "Q", key: KeyQ, shift: true},
		{s: "!", key: Key1, shift: true},
		{s: "0", key: Key0, shift: false},
		{s: "?", key: KeySlash, shift: true},
		{s: " ", key: KeySpace, shift: false},
	}
	for _, tc := range cases {
		k, shift, ok := tbl.Lookup(tc.s)
		if !ok || k != tc.key || shift != tc.shift {
			t.Fatalf("Lookup(%q)=(%v,%v,%v), want (%v,%v,true)", tc.s, k, shift, ok, tc.key, tc.shift)
		}
	}
	if _, _, ok := tbl.Lookup("é"); ok {
		t.Fatalf("expected é to be missing from the US layout")
	}
}
