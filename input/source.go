package input

// Source is one tick's view of the keyboard. Edges are derived by the
// consumer from consecutive samples.
type Source interface {
	Held(k Key) bool
	Shift() bool
	Ctrl() bool
}

// State is a plain Source for hosts that can poll key state directly.
type State struct {
	Keys map[Key]bool
	Mods Modifier
}

// Hold builds a State with keys held under mods.
func Hold(mods Modifier, keys ...Key) State {
	s := State{Keys: make(map[Key]bool, len(keys)), Mods: mods}
	for _, k := range keys {
		s.Keys[k] = true
	}
	return s
}

func (s State) Held(k Key) bool { return s.Keys[k] }

func (s State) Shift() bool { return s.Mods.Has(ModShift) }

func (s State) Ctrl() bool { return s.Mods.Has(ModCtrl) }
