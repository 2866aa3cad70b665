// Package buffer implements the single-line edit model: text, cursor,
// selection, clipboard and word-grained undo/redo.
//
// Offsets are 0-based UTF-8 byte offsets. The cursor always rests on a
// character boundary and never goes below the configured minimum cursor.
// Spans are half-open: [Start, End).
package buffer
