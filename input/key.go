package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key. The numeric order is the tie-break order
// used when several character keys are held at once.
type Key uint16

const (
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyBackspace
	KeyHome
	KeyEnd
	KeyCapsLock

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Punctuation keys, named after the US layout.
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave

	keyCount
)

var specialNames = map[Key]string{
	KeyNone:         "none",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyBackspace:    "backspace",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "capslock",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeySpace:        "space",
	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyLeftBracket:  "leftbracket",
	KeyRightBracket: "rightbracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeyGrave:        "grave",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := KeyNone; k < keyCount; k++ {
		m[k.String()] = k
	}
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	return m
}()

// String returns the lower-case key name used in config files.
func (k Key) String() string {
	if name, ok := specialNames[k]; ok {
		return name
	}
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	default:
		return fmt.Sprintf("key(%d)", k)
	}
}

// Valid reports whether k is a known key other than KeyNone.
func (k Key) Valid() bool { return k > KeyNone && k < keyCount }

func (k Key) IsArrow() bool { return k >= KeyUp && k <= KeyRight }

// ParseKey resolves a key name as printed by Key.String. Matching ignores case.
func ParseKey(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok || k == KeyNone {
		return KeyNone, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// AllKeys returns every valid key in ascending order.
func AllKeys() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// Modifier is a bit set of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
)

func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }
