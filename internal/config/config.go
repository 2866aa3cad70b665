// Package config loads field settings from TOML or YAML files.
package config

import (
	"fmt"
	"time"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/history"
	"github.com/iw2rmb/lineedit/input"
	"github.com/iw2rmb/lineedit/repeat"
)

// Settings is the on-disk shape of a field configuration. Durations are in
// milliseconds.
type Settings struct {
	Prefix         string `toml:"prefix" yaml:"prefix"`
	MinCursor      int    `toml:"min_cursor" yaml:"min_cursor"`
	MaxLength      int    `toml:"max_length" yaml:"max_length"`
	HistoryLimit   int    `toml:"history_limit" yaml:"history_limit"`
	UndoLimit      int    `toml:"undo_limit" yaml:"undo_limit"`
	DeleteCodeUnit bool   `toml:"delete_code_unit" yaml:"delete_code_unit"`

	Width           int  `toml:"width" yaml:"width"`
	SystemClipboard bool `toml:"system_clipboard" yaml:"system_clipboard"`

	Repeat RepeatSettings `toml:"repeat" yaml:"repeat"`

	// Keys overrides or extends the US layout, keyed by key name.
	Keys map[string]CharSettings `toml:"keys" yaml:"keys"`
}

type RepeatSettings struct {
	Char       ProfileSettings `toml:"char" yaml:"char"`
	Arrow      ProfileSettings `toml:"arrow" yaml:"arrow"`
	Backspace  ProfileSettings `toml:"backspace" yaml:"backspace"`
	WordJumpMS int             `toml:"word_jump_ms" yaml:"word_jump_ms"`
}

type ProfileSettings struct {
	DelayMS    int `toml:"delay_ms" yaml:"delay_ms"`
	IntervalMS int `toml:"interval_ms" yaml:"interval_ms"`
}

type CharSettings struct {
	Plain   string `toml:"plain" yaml:"plain"`
	Shifted string `toml:"shifted" yaml:"shifted"`
}

// Default returns the settings matching a zero editor.Config.
func Default() Settings {
	t := repeat.DefaultTiming()
	return Settings{
		MaxLength:    buffer.DefaultMaxLength,
		HistoryLimit: history.DefaultLimit,
		UndoLimit:    buffer.DefaultUndoLimit,
		Repeat: RepeatSettings{
			Char:       profileSettings(t.Char),
			Arrow:      profileSettings(t.Arrow),
			Backspace:  profileSettings(t.Backspace),
			WordJumpMS: int(t.WordJump / time.Millisecond),
		},
	}
}

func profileSettings(p repeat.Profile) ProfileSettings {
	return ProfileSettings{
		DelayMS:    int(p.Delay / time.Millisecond),
		IntervalMS: int(p.Interval / time.Millisecond),
	}
}

func (p ProfileSettings) profile() repeat.Profile {
	return repeat.Profile{
		Delay:    time.Duration(p.DelayMS) * time.Millisecond,
		Interval: time.Duration(p.IntervalMS) * time.Millisecond,
	}
}

// Validate reports the first invalid value.
func (s Settings) Validate() error {
	ints := []struct {
		name string
		v    int
	}{
		{"min_cursor", s.MinCursor},
		{"max_length", s.MaxLength},
		{"history_limit", s.HistoryLimit},
		{"undo_limit", s.UndoLimit},
		{"width", s.Width},
		{"repeat.char.delay_ms", s.Repeat.Char.DelayMS},
		{"repeat.char.interval_ms", s.Repeat.Char.IntervalMS},
		{"repeat.arrow.delay_ms", s.Repeat.Arrow.DelayMS},
		{"repeat.arrow.interval_ms", s.Repeat.Arrow.IntervalMS},
		{"repeat.backspace.delay_ms", s.Repeat.Backspace.DelayMS},
		{"repeat.backspace.interval_ms", s.Repeat.Backspace.IntervalMS},
		{"repeat.word_jump_ms", s.Repeat.WordJumpMS},
	}
	for _, f := range ints {
		if f.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.name, f.v)
		}
	}
	if s.MaxLength > 0 && s.MinCursor > s.MaxLength {
		return fmt.Errorf("min_cursor %d exceeds max_length %d", s.MinCursor, s.MaxLength)
	}
	if s.MaxLength > 0 && len(s.Prefix) > s.MaxLength {
		return fmt.Errorf("prefix %q exceeds max_length %d", s.Prefix, s.MaxLength)
	}
	for name, c := range s.Keys {
		if _, err := input.ParseKey(name); err != nil {
			return fmt.Errorf("keys.%s: %w", name, err)
		}
		if c.Plain == "" {
			return fmt.Errorf("keys.%s: plain must not be empty", name)
		}
	}
	return nil
}

// CharTable returns the US layout with the configured overrides applied.
func (s Settings) CharTable() (input.CharTable, error) {
	t := input.USLayout()
	for name, c := range s.Keys {
		k, err := input.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", name, err)
		}
		shifted := c.Shifted
		if shifted == "" {
			shifted = c.Plain
		}
		t[k] = input.CharPair{Plain: c.Plain, Shifted: shifted}
	}
	return t, nil
}

// EditorConfig converts s into an editor.Config. Callbacks, clipboard and
// style are left for the host.
func (s Settings) EditorConfig() (editor.Config, error) {
	if err := s.Validate(); err != nil {
		return editor.Config{}, err
	}
	chars, err := s.CharTable()
	if err != nil {
		return editor.Config{}, err
	}
	return editor.Config{
		Text:           s.Prefix,
		MaxLength:      s.MaxLength,
		MinCursor:      s.MinCursor,
		Prefix:         s.Prefix,
		Chars:          chars,
		HistoryLimit:   s.HistoryLimit,
		UndoLimit:      s.UndoLimit,
		DeleteCodeUnit: s.DeleteCodeUnit,
		Width:          s.Width,
		Timing: repeat.Timing{
			Char:      s.Repeat.Char.profile(),
			Arrow:     s.Repeat.Arrow.profile(),
			Backspace: s.Repeat.Backspace.profile(),
			WordJump:  time.Duration(s.Repeat.WordJumpMS) * time.Millisecond,
		},
	}, nil
}
