// Package input defines the keystroke contract between a host and the editor:
// key identifiers, per-tick key samples, the key-to-character table, and a
// sampler that turns discrete key events into per-tick samples.
package input
