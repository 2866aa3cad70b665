// Package editor provides the single-line input field driven by per-tick key
// samples.
//
// A host calls Field.Update once per frame with the tick time and an
// input.Source. The field decides which action fires, mutates its buffer and
// history log, and reports whether the tick was consumed. Rendering is left to
// the host; View is a lipgloss-based default.
package editor
