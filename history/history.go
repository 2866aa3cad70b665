// Package history keeps the log of submitted lines and the browse position
// used by up/down navigation.
package history

import "strings"

// DefaultLimit is the number of submissions kept.
const DefaultLimit = 50

// Log is a bounded, most-recent-first list of submitted lines.
//
// Index 0 means the user is editing a live line; Older walks back in time.
type Log struct {
	entries []string
	limit   int
	index   int
}

// New creates a log keeping at most limit entries (default 50).
func New(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Submit records text as the newest entry. Empty text and repeats of the
// newest entry are ignored. The browse position is reset either way.
func (l *Log) Submit(text string) bool {
	l.index = 0
	if text == "" {
		return false
	}
	if len(l.entries) > 0 && l.entries[0] == text {
		return false
	}
	l.entries = append(l.entries, "")
	copy(l.entries[1:], l.entries)
	l.entries[0] = text
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
	return true
}

// Older steps one entry back in time and returns it. ok is false when there
// is nothing older.
func (l *Log) Older() (entry string, ok bool) {
	if l.index >= len(l.entries) {
		return "", false
	}
	l.index++
	return l.entries[l.index-1], true
}

// Newer steps one entry forward in time. Stepping back to the live line
// returns "" with ok set; ok is false when already live.
func (l *Log) Newer() (entry string, ok bool) {
	if l.index == 0 {
		return "", false
	}
	l.index--
	if l.index == 0 {
		return "", true
	}
	return l.entries[l.index-1], true
}

func (l *Log) Len() int { return len(l.entries) }

func (l *Log) Index() int { return l.index }

func (l *Log) Limit() int { return l.limit }

// At returns the i-th entry, newest first.
func (l *Log) At(i int) (string, bool) {
	if i < 0 || i >= len(l.entries) {
		return "", false
	}
	return l.entries[i], true
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Reset returns to the live line without touching the entries.
func (l *Log) Reset() { l.index = 0 }

// WithPrefix prepends prefix to entry unless it is already there.
func WithPrefix(prefix, entry string) string {
	if prefix == "" || strings.HasPrefix(entry, prefix) {
		return entry
	}
	return prefix + entry
}
