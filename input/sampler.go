package input

// Event is a discrete key press as delivered by terminal-style hosts.
type Event struct {
	Key  Key
	Mods Modifier
}

// Sampler turns a stream of discrete key events into per-tick samples.
//
// Each queued event is reported as one tick with the key held followed by one
// tick with nothing held, so every event yields exactly one down edge.
// Terminals repeat keys on their own; the sampler never invents holds.
type Sampler struct {
	queue   []Event
	settled bool
}

func NewSampler() *Sampler { return &Sampler{settled: true} }

// Push queues ev for a later Sample.
func (s *Sampler) Push(ev Event) {
	if !ev.Key.Valid() {
		return
	}
	s.queue = append(s.queue, ev)
}

// Sample returns the state for the next tick.
func (s *Sampler) Sample() State {
	if !s.settled || len(s.queue) == 0 {
		s.settled = true
		return State{}
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	s.settled = false
	return Hold(ev.Mods, ev.Key)
}

// Pending reports how many events have not been sampled yet.
func (s *Sampler) Pending() int { return len(s.queue) }

// Reset drops queued events.
func (s *Sampler) Reset() {
	s.queue = nil
	s.settled = true
}
