// Command lineedit-demo is a console-style host: a scrolling log with the
// input field composited over its bottom rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/lineedit"
	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/tui"
)

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	log    viewport.Model
	input  tui.Model
	lines  []string
	status string
	prefix string

	width, height int
}

func newModel(cfg editor.Config) model {
	cfg.Style = editor.DefaultStyle()
	m := model{
		log:    viewport.New(80, 20),
		input:  tui.New(cfg),
		prefix: cfg.Prefix,
		lines:  []string{"lineedit demo. Type help and press enter. Ctrl+Q quits."},
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	return m
}

func (m model) Init() tea.Cmd { return m.input.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.log.Width = msg.Width
		m.log.Height = max(msg.Height-4, 1)
		m.log.GotoBottom()
		m.input.Field().SetWidth(max(msg.Width-4, 1))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}
	case tui.SubmitMsg:
		return m.run(msg.Text)
	case tui.CancelMsg:
		m.input.Field().Reset()
		return m, nil
	case tui.ChangedMsg:
		m.status = describe(msg.Event)
		return m, nil
	case reloadMsg:
		return m.reload(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) run(text string) (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(strings.TrimPrefix(text, m.prefix))
	m.input.Field().Reset()
	if line == "" {
		return m, nil
	}
	m.print(text)

	switch line {
	case "quit", "exit":
		return m, tea.Quit
	case "clear":
		m.lines = nil
	case "history":
		for i, e := range m.input.Field().History().Entries() {
			m.print(fmt.Sprintf("%3d  %s", i+1, e))
		}
	case "help":
		m.print("commands: help, history, clear, quit")
		m.print("keys: ctrl+a/x/c/v select all, cut, copy, paste; ctrl+z/y undo, redo; up/down history")
	default:
		m.print("echo: " + line)
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
	return m, nil
}

// reloadMsg carries settings re-read after the config file changed.
type reloadMsg struct {
	settings config.Settings
	err      error
}

func (m model) reload(msg reloadMsg) model {
	cfg, err := msg.settings.EditorConfig()
	if msg.err != nil {
		err = msg.err
	}
	if err != nil {
		m.print("config: " + err.Error())
	} else {
		m.input.Field().SetTiming(cfg.Timing)
		m.print("config reloaded")
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
	return m
}

func (m *model) print(s string) { m.lines = append(m.lines, s) }

func describe(ev editor.ChangeEvent) string {
	s := fmt.Sprintf("v%d cursor %d", ev.Version, ev.Cursor)
	if ev.Selection.Active {
		s += fmt.Sprintf(" sel %d-%d", ev.Selection.Span.Start, ev.Selection.Span.End)
	}
	return s
}

func (m model) View() string {
	base := m.log.View() + "\n\n\n\n" + statusStyle.Render(m.status)
	if m.width == 0 {
		return base
	}
	box := boxStyle.Width(max(m.width-2, 1)).Render(m.input.View())
	return overlay.Composite(box, base, overlay.Left, overlay.Top, 0, max(m.height-4, 0))
}

func main() {
	path := flag.String("config", "lineedit.toml", "settings file (.toml, .yaml or .yml)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("lineedit-demo " + lineedit.Version())
		return
	}

	settings, err := config.Load(*path)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	cfg, err := settings.EditorConfig()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if settings.SystemClipboard {
		if cb := (tui.SystemClipboard{}); cb.Available() {
			cfg.Clipboard = cb
		}
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := config.Watch(ctx, *path, func(s config.Settings, err error) {
		p.Send(reloadMsg{settings: s, err: err})
	}); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
	}

	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
