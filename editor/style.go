package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how View renders the field. The zero value renders plain
// text with no visible cursor.
type Style struct {
	Text      lipgloss.Style
	Prefix    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Prefix:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
