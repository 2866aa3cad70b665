package input

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// CharPair is what a key types without and with shift.
type CharPair struct {
	Plain   string
	Shifted string
}

// Resolve applies the case rule. Letters are upper case when exactly one of
// shift and caps lock is active; other keys only follow shift.
func (p CharPair) Resolve(shift, caps bool) string {
	if p.isAlpha() {
		if shift != caps {
			return p.Shifted
		}
		return p.Plain
	}
	if shift {
		return p.Shifted
	}
	return p.Plain
}

func (p CharPair) isAlpha() bool {
	r, _ := utf8.DecodeRuneInString(p.Plain)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

// CharTable maps keys to the characters they type. Contents are layout
// specific and supplied by the host.
type CharTable map[Key]CharPair

// Keys returns the table keys in ascending order.
func (t CharTable) Keys() []Key {
	out := make([]Key, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Lookup finds the key typing s and whether shift is needed. It is the
// reverse mapping used by hosts that receive characters instead of keys.
func (t CharTable) Lookup(s string) (k Key, shift bool, ok bool) {
	for _, k := range t.Keys() {
		p := t[k]
		if p.Plain == s {
			return k, false, true
		}
		if p.Shifted == s {
			return k, true, true
		}
	}
	return KeyNone, false, false
}

// USLayout returns the US QWERTY table.
func USLayout() CharTable {
	t := CharTable{
		KeySpace:        {Plain: " ", Shifted: " "},
		KeyMinus:        {Plain: "-", Shifted: "_"},
		KeyEqual:        {Plain: "=", Shifted: "+"},
		KeyLeftBracket:  {Plain: "[", Shifted: "{"},
		KeyRightBracket: {Plain: "]", Shifted: "}"},
		KeyBackslash:    {Plain: `\`, Shifted: "|"},
		KeySemicolon:    {Plain: ";", Shifted: ":"},
		KeyApostrophe:   {Plain: "'", Shifted: `"`},
		KeyComma:        {Plain: ",", Shifted: "<"},
		KeyPeriod:       {Plain: ".", Shifted: ">"},
		KeySlash:        {Plain: "/", Shifted: "?"},
		KeyGrave:        {Plain: "`", Shifted: "~"},
	}
	digits := ")!@#$%^&*("
	for i := 0; i < 10; i++ {
		t[Key0+Key(i)] = CharPair{Plain: string(rune('0' + i)), Shifted: digits[i : i+1]}
	}
	for i := 0; i < 26; i++ {
		t[KeyA+Key(i)] = CharPair{Plain: string(rune('a' + i)), Shifted: string(rune('A' + i))}
	}
	return t
}
