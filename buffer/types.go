package buffer

// Span is a half-open byte range: [Start, End).
type Span struct {
	Start int
	End   int
}

// Normalize returns s with Start <= End.
func (s Span) Normalize() Span {
	if s.Start <= s.End {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

func (s Span) Len() int {
	n := s.Normalize()
	return n.End - n.Start
}

// clampInt clamps v into [min, max]. The upper bound wins when max < min.
func clampInt(v, min, max int) int {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// alignLeft moves p back to the start of the character containing it.
func alignLeft(text string, p, floor int) int {
	for p > floor && p < len(text) && isContinuation(text[p]) {
		p--
	}
	return p
}

// truncate cuts s to at most max bytes without splitting a character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	cut := max
	for cut > 0 && isContinuation(s[cut]) {
		cut--
	}
	return s[:cut]
}
