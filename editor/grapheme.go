package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// cell is one rendered grapheme cluster and the byte range it covers.
type cell struct {
	text       string
	start, end int
	width      int
}

func layoutCells(text string) []cell {
	clusters := grapheme.Split(text)
	out := make([]cell, 0, len(clusters)+1)
	off := 0
	for _, c := range clusters {
		w := graphemeCellWidth(c)
		out = append(out, cell{text: c, start: off, end: off + len(c), width: w})
		off += len(c)
	}
	return out
}

func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	if w < 1 {
		w = 1
	}
	return w
}
