package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellRole uint8

const (
	roleText cellRole = iota
	rolePrefix
	roleSelection
	roleCursor
)

// View renders the field on one line. With Config.Width set, the field
// scrolls horizontally to keep the cursor visible, so View updates the
// scroll offset.
func (f *Field) View() string {
	text := f.buf.Text()
	cursor := f.buf.Cursor()
	sel, hasSel := f.buf.Selection()

	prefixEnd := 0
	if p := f.cfg.Prefix; p != "" && strings.HasPrefix(text, p) {
		prefixEnd = len(p)
	}

	cells := layoutCells(text)
	if f.focused && cursor >= len(text) {
		cells = append(cells, cell{text: " ", start: len(text), end: len(text) + 1, width: 1})
	}

	roles := make([]cellRole, len(cells))
	curCol, curW, total := -1, 0, 0
	for i, c := range cells {
		switch {
		case f.focused && c.start <= cursor && cursor < c.end:
			roles[i] = roleCursor
			curCol, curW = total, c.width
		case hasSel && c.start >= sel.Start && c.end <= sel.End:
			roles[i] = roleSelection
		case c.end <= prefixEnd:
			roles[i] = rolePrefix
		}
		total += c.width
	}
	f.followCursor(curCol, curW, total)

	var sb strings.Builder
	var run strings.Builder
	runRole := roleText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(f.styleFor(runRole).Render(run.String()))
		run.Reset()
	}

	col := 0
	for i, c := range cells {
		start := col
		col += c.width
		if f.cfg.Width > 0 {
			if start < f.xOff {
				continue
			}
			if col > f.xOff+f.cfg.Width {
				break
			}
		}
		if roles[i] != runRole {
			flush()
			runRole = roles[i]
		}
		run.WriteString(c.text)
	}
	flush()
	return sb.String()
}

func (f *Field) followCursor(col, w, total int) {
	width := f.cfg.Width
	if width <= 0 {
		f.xOff = 0
		return
	}
	if col >= 0 {
		if col < f.xOff {
			f.xOff = col
		}
		if col+w > f.xOff+width {
			f.xOff = col + w - width
		}
	}
	if max := total - width; f.xOff > max {
		f.xOff = max
	}
	if f.xOff < 0 {
		f.xOff = 0
	}
}

func (f *Field) styleFor(r cellRole) lipgloss.Style {
	switch r {
	case rolePrefix:
		return f.cfg.Style.Prefix
	case roleSelection:
		return f.cfg.Style.Selection
	case roleCursor:
		return f.cfg.Style.Cursor
	default:
		return f.cfg.Style.Text
	}
}
