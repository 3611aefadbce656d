// Package cursor defines the pointer state model: immutable point-in-time
// snapshots, the discrete events derived from them, and the canonical JSON
// forms used for interchange.
//
// A State is a complete picture of the pointer at one instant: position,
// resolved shape label, button flags, and a millisecond-precision
// timestamp. Events are a closed set of variants (Move, Click, Release,
// TypeChange) synthesized by comparing two consecutive snapshots; they are
// fire-and-forget notifications, never authoritative state.
package cursor
