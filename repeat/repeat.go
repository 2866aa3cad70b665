// Package repeat turns held keys into a bounded stream of actions.
//
// Each key runs a small state machine: idle, pressed (fired once on the down
// edge), repeating (fires every Interval once held for Delay). The caller
// drives it once per tick with the key's held state and the tick time.
package repeat

import (
	"time"

	"github.com/iw2rmb/lineedit/input"
)

// Profile is the timing of one class of keys.
type Profile struct {
	Delay    time.Duration // hold time before the first repeat
	Interval time.Duration // time between repeats
}

// Timing groups the profiles used by the editor.
type Timing struct {
	Char      Profile
	Arrow     Profile
	Backspace Profile

	// WordJump is the minimum spacing between word jumps. Word jumps never
	// repeat while held.
	WordJump time.Duration
}

// DefaultTiming returns the stock profiles.
func DefaultTiming() Timing {
	return Timing{
		Char:      Profile{Delay: 500 * time.Millisecond, Interval: 50 * time.Millisecond},
		Arrow:     Profile{Delay: 500 * time.Millisecond, Interval: 30 * time.Millisecond},
		Backspace: Profile{Delay: 500 * time.Millisecond, Interval: 30 * time.Millisecond},
		WordJump:  100 * time.Millisecond,
	}
}

// Normalize fills zero fields from DefaultTiming.
func (t Timing) Normalize() Timing {
	def := DefaultTiming()
	t.Char = t.Char.orDefault(def.Char)
	t.Arrow = t.Arrow.orDefault(def.Arrow)
	t.Backspace = t.Backspace.orDefault(def.Backspace)
	if t.WordJump <= 0 {
		t.WordJump = def.WordJump
	}
	return t
}

func (p Profile) orDefault(def Profile) Profile {
	if p.Delay <= 0 {
		p.Delay = def.Delay
	}
	if p.Interval <= 0 {
		p.Interval = def.Interval
	}
	return p
}

// Phase is the state of one key.
type Phase uint8

const (
	Idle Phase = iota
	Pressed
	Repeating
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

type keyState struct {
	phase      Phase
	pressStart time.Time
	lastRepeat time.Time
}

// Scheduler holds the repeat state of every key for one editor instance.
//
// At most one key is active for character production; switching the active
// key resets every key so a new key never inherits another key's timers.
type Scheduler struct {
	keys   map[input.Key]*keyState
	active input.Key

	lastJump time.Time
	jumped   bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{keys: make(map[input.Key]*keyState)}
}

// Fire advances k by one tick and reports whether an action fires now.
//
// edge marks a down edge: k is held now and was not held on the previous
// tick. Only an edge moves an idle key to pressed; a key that is held but
// idle stays idle until it is released and pressed again.
func (s *Scheduler) Fire(k input.Key, held, edge bool, now time.Time, p Profile) bool {
	if !held {
		s.Release(k)
		return false
	}
	if edge {
		s.keys[k] = &keyState{phase: Pressed, pressStart: now, lastRepeat: now}
		return true
	}

	st, ok := s.keys[k]
	if !ok || st.phase == Idle {
		return false
	}

	if st.phase == Pressed {
		if now.Sub(st.pressStart) < p.Delay {
			return false
		}
		st.phase = Repeating
	}
	if now.Sub(st.lastRepeat) >= p.Interval {
		st.lastRepeat = now
		return true
	}
	return false
}

// Activate makes k the key allowed to produce characters. KeyNone releases
// the active key. Changing the active key resets all keys.
func (s *Scheduler) Activate(k input.Key) {
	if k == s.active {
		return
	}
	s.active = k
	s.Reset()
}

func (s *Scheduler) Active() input.Key { return s.active }

// Debounce reports whether a down edge may fire, given the minimum spacing
// min since the last debounced action of any key.
func (s *Scheduler) Debounce(edge bool, now time.Time, min time.Duration) bool {
	if !edge {
		return false
	}
	if s.jumped && now.Sub(s.lastJump) < min {
		return false
	}
	s.lastJump = now
	s.jumped = true
	return true
}

// Release returns k to idle.
func (s *Scheduler) Release(k input.Key) {
	delete(s.keys, k)
}

// Reset returns every key to idle.
func (s *Scheduler) Reset() {
	for k := range s.keys {
		delete(s.keys, k)
	}
}

// Phase returns the current phase of k.
func (s *Scheduler) Phase(k input.Key) Phase {
	if st, ok := s.keys[k]; ok {
		return st.phase
	}
	return Idle
}
