// Package grapheme holds the character boundary helpers shared by the buffer
// and the renderer.
//
// Offsets are UTF-8 byte offsets. The lead-byte helpers never decode runes, so
// they are total over malformed input; the cluster helpers are backed by uniseg.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// NextBoundary returns the character starting at byte offset pos, sized by
// its lead byte. It returns "" when pos is out of range.
func NextBoundary(text string, pos int) string {
	if pos < 0 || pos >= len(text) {
		return ""
	}
	n := leadLen(text[pos])
	if pos+n > len(text) {
		n = len(text) - pos
	}
	return text[pos : pos+n]
}

// PrevBoundary returns the byte length of the character ending right before
// pos. It returns 0 when there is no such character and 1 for a stray
// continuation byte.
func PrevBoundary(text string, pos int) int {
	if pos <= 0 || pos > len(text) {
		return 0
	}
	for n := 1; n <= utf8.UTFMax && pos-n >= 0; n++ {
		c := text[pos-n]
		if c&0xC0 == 0x80 {
			continue
		}
		if leadLen(c) >= n {
			return n
		}
		return 1
	}
	return 1
}

func leadLen(c byte) int {
	switch {
	case c < 0xC0:
		return 1
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	default:
		return 4
	}
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsBoundary reports whether r ends a word: whitespace, punctuation, symbols
// and control characters.
func IsBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsControl(r)
}

// TrailingWord returns the run of non-boundary runes ending at pos.
func TrailingWord(text string, pos int) string {
	if pos > len(text) {
		pos = len(text)
	}
	start := pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if IsBoundary(r) {
			break
		}
		start -= size
	}
	if start >= pos {
		return ""
	}
	return text[start:pos]
}

// WordLeft returns the offset of the start of the word before pos, never
// going below floor.
//
// Word rules follow the usual terminal convention: skip whitespace, then skip
// non-whitespace. Steps are whole grapheme clusters.
func WordLeft(text string, pos, floor int) int {
	pos = clampInt(pos, 0, len(text))
	floor = clampInt(floor, 0, pos)

	clusters := Split(text[floor:pos])
	i := len(clusters)
	off := pos
	for i > 0 && IsSpace(clusters[i-1]) {
		i--
		off -= len(clusters[i])
	}
	for i > 0 && !IsSpace(clusters[i-1]) {
		i--
		off -= len(clusters[i])
	}
	return off
}

// WordRight returns the offset of the end of the word after pos.
func WordRight(text string, pos int) int {
	pos = clampInt(pos, 0, len(text))

	clusters := Split(text[pos:])
	i := 0
	off := pos
	for i < len(clusters) && IsSpace(clusters[i]) {
		off += len(clusters[i])
		i++
	}
	for i < len(clusters) && !IsSpace(clusters[i]) {
		off += len(clusters[i])
		i++
	}
	return off
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
