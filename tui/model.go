package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/input"
)

// SubmitMsg is emitted after Enter with the submitted text.
type SubmitMsg struct{ Text string }

// CancelMsg is emitted after Escape.
type CancelMsg struct{}

// ChangedMsg is emitted when a key message changed the field.
type ChangedMsg struct{ Event editor.ChangeEvent }

type outbox struct{ msgs []tea.Msg }

func (o *outbox) add(msg tea.Msg) { o.msgs = append(o.msgs, msg) }

func (o *outbox) flush() tea.Cmd {
	if len(o.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(o.msgs))
	for _, msg := range o.msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	o.msgs = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// Model is a Bubble Tea component wrapping one field.
type Model struct {
	field   *editor.Field
	sampler *input.Sampler
	chars   input.CharTable
	keys    KeyMap
	now     func() time.Time
	out     *outbox
}

// New builds the field from cfg. OnEnter and OnEscape still run; the model
// additionally emits SubmitMsg and CancelMsg.
func New(cfg editor.Config) Model {
	out := &outbox{}
	onEnter, onEscape := cfg.OnEnter, cfg.OnEscape
	cfg.OnEnter = func(text string) {
		if onEnter != nil {
			onEnter(text)
		}
		out.add(SubmitMsg{Text: text})
	}
	cfg.OnEscape = func() {
		if onEscape != nil {
			onEscape()
		}
		out.add(CancelMsg{})
	}
	if cfg.Chars == nil {
		cfg.Chars = input.USLayout()
	}

	return Model{
		field:   editor.New(cfg),
		sampler: input.NewSampler(),
		chars:   cfg.Chars,
		keys:    DefaultKeyMap(),
		now:     time.Now,
		out:     out,
	}
}

func (m Model) Field() *editor.Field { return m.field }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) WithKeyMap(km KeyMap) Model {
	m.keys = km
	return m
}

// WithClock replaces the tick clock.
func (m Model) WithClock(now func() time.Time) Model {
	if now != nil {
		m.now = now
	}
	return m
}

func (m Model) Focus() Model {
	m.field.Focus()
	return m
}

func (m Model) Blur() Model {
	m.field.Blur()
	m.sampler.Reset()
	return m
}

func (m Model) Focused() bool { return m.field.Focused() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.field.Focused() {
		return m, nil
	}

	before := m.field.Buffer().Version()
	m.handleKey(km)
	if m.field.Buffer().Version() != before {
		m.out.add(ChangedMsg{Event: m.field.Event()})
	}
	return m, m.out.flush()
}

func (m Model) View() string { return m.field.View() }

func (m Model) handleKey(msg tea.KeyMsg) {
	if msg.Paste {
		m.field.Buffer().InsertText(string(msg.Runes))
		return
	}
	for _, b := range m.keys.bindings() {
		if key.Matches(msg, b.b) {
			m.feed(b.ev)
			return
		}
	}

	runes := msg.Runes
	if msg.Type == tea.KeySpace {
		runes = []rune{' '}
	} else if msg.Type != tea.KeyRunes || msg.Alt {
		return
	}
	for _, r := range runes {
		s := string(r)
		k, shift, ok := m.chars.Lookup(s)
		if !ok {
			// Not on the layout; type it directly.
			m.field.Buffer().Insert(s)
			continue
		}
		var mods input.Modifier
		if shift {
			mods = input.ModShift
		}
		m.feed(input.Event{Key: k, Mods: mods})
	}
}

// feed runs one event through the sampler: a held tick, then a released
// tick.
func (m Model) feed(ev input.Event) {
	m.sampler.Push(ev)
	now := m.now()
	for m.sampler.Pending() > 0 {
		m.field.Update(now, m.sampler.Sample())
		m.field.Update(now, m.sampler.Sample())
	}
}
