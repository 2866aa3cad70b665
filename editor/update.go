package editor

import (
	"time"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/history"
	"github.com/iw2rmb/lineedit/input"
)

// Update processes one tick of keyboard state and reports whether the tick
// was consumed.
//
// Caps lock toggles on its press edge and never blocks other input. After
// that, the first matching group wins: ctrl chords, arrows, Home/End, Enter,
// Escape, Up/Down history, character keys, Backspace. Press-edge keys count
// as consumed whenever the edge is seen; repeating keys count as consumed
// only on ticks where they fire. A held repeating key that does not fire
// still blocks lower groups.
func (f *Field) Update(now time.Time, src input.Source) bool {
	if src == nil {
		return false
	}
	f.now = now
	defer f.endTick(src)

	if !f.focused {
		return false
	}

	toggled := false
	if f.pressed(src, input.KeyCapsLock) {
		f.caps = !f.caps
		toggled = true
	}
	return f.dispatch(src) || toggled
}

func (f *Field) dispatch(src input.Source) bool {
	shift, ctrl := src.Shift(), src.Ctrl()

	if ctrl {
		if fired, claimed := f.updateChord(src, shift); claimed {
			return fired
		}
	} else {
		if fired, claimed := f.updateArrows(src, shift); claimed {
			return fired
		}
	}

	switch {
	case f.pressed(src, input.KeyHome):
		f.buf.MoveHome(shift)
		return true
	case f.pressed(src, input.KeyEnd):
		f.buf.MoveEnd(shift)
		return true
	case f.pressed(src, input.KeyEnter):
		f.submit()
		return true
	case f.pressed(src, input.KeyEscape):
		if f.cfg.OnEscape != nil {
			f.cfg.OnEscape()
		}
		return true
	case f.pressed(src, input.KeyUp):
		if entry, ok := f.log.Older(); ok {
			f.load(entry)
		}
		return true
	case f.pressed(src, input.KeyDown):
		if entry, ok := f.log.Newer(); ok {
			f.load(entry)
		}
		return true
	}

	if !ctrl {
		if fired, claimed := f.updateChars(src, shift); claimed {
			return fired
		}
	}

	if src.Held(input.KeyBackspace) {
		if f.rep.Fire(input.KeyBackspace, true, f.pressed(src, input.KeyBackspace), f.now, f.cfg.Timing.Backspace) {
			f.buf.DeleteBackward()
			return true
		}
	}
	return false
}

// updateChord handles ctrl shortcuts and word jumps. Ctrl chords never type.
func (f *Field) updateChord(src input.Source, shift bool) (fired, claimed bool) {
	switch {
	case f.pressed(src, input.KeyZ) && shift, f.pressed(src, input.KeyY):
		f.buf.Redo()
		return true, true
	case f.pressed(src, input.KeyZ):
		f.buf.Undo()
		return true, true
	case f.pressed(src, input.KeyA):
		f.buf.SelectAll()
		return true, true
	case f.pressed(src, input.KeyX):
		f.buf.Cut()
		return true, true
	case f.pressed(src, input.KeyC):
		f.buf.Copy()
		return true, true
	case f.pressed(src, input.KeyV):
		f.buf.Paste()
		return true, true
	}

	for _, j := range [...]struct {
		key input.Key
		dir buffer.MoveDir
	}{
		{input.KeyLeft, buffer.DirLeft},
		{input.KeyRight, buffer.DirRight},
	} {
		if !src.Held(j.key) {
			continue
		}
		if f.rep.Debounce(f.pressed(src, j.key), f.now, f.cfg.Timing.WordJump) {
			f.buf.MoveWord(j.dir, shift)
			return true, true
		}
		return false, true
	}
	return false, false
}

func (f *Field) updateArrows(src input.Source, shift bool) (fired, claimed bool) {
	for _, a := range [...]struct {
		key   input.Key
		delta int
	}{
		{input.KeyLeft, -1},
		{input.KeyRight, 1},
	} {
		if !src.Held(a.key) {
			continue
		}
		if f.rep.Fire(a.key, true, f.pressed(src, a.key), f.now, f.cfg.Timing.Arrow) {
			f.buf.MoveCursor(a.delta, shift)
			return true, true
		}
		return false, true
	}
	return false, false
}

// updateChars types the lowest held character key. Only that key repeats;
// switching to another key restarts every key's timer, so a key that stayed
// down through the switch is silent until pressed again.
func (f *Field) updateChars(src input.Source, shift bool) (fired, claimed bool) {
	k := input.KeyNone
	for _, ck := range f.chars {
		if src.Held(ck) {
			k = ck
			break
		}
	}
	f.rep.Activate(k)
	if k == input.KeyNone {
		return false, false
	}
	if !f.rep.Fire(k, true, f.pressed(src, k), f.now, f.cfg.Timing.Char) {
		return false, true
	}
	f.buf.Insert(f.cfg.Chars[k].Resolve(shift, f.caps))
	return true, true
}

func (f *Field) submit() {
	text := f.buf.Text()
	if text != "" {
		f.log.Submit(text)
	}
	if f.cfg.OnEnter != nil {
		f.cfg.OnEnter(text)
	}
}

func (f *Field) load(entry string) {
	f.buf.SetText(history.WithPrefix(f.cfg.Prefix, entry))
}

// pressed reports a press edge: held now, not held on the previous tick.
func (f *Field) pressed(src input.Source, k input.Key) bool {
	return src.Held(k) && !f.prev[k]
}

// endTick records this tick's key state and drops repeat timers of released
// keys.
func (f *Field) endTick(src input.Source) {
	for _, k := range f.keys {
		held := src.Held(k)
		f.prev[k] = held
		if !held {
			f.rep.Release(k)
		}
	}
}
