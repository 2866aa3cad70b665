// Package tui hosts an editor.Field inside a Bubble Tea program.
//
// Terminals deliver discrete key messages instead of key state, so the model
// routes each message through an input.Sampler: one tick with the key held,
// one tick released. Key repeat comes from the terminal.
package tui
