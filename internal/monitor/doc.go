// Package monitor implements the cursor polling engine.
//
// A Monitor runs a debounced sampling loop on its own goroutine: each
// tick it reads a raw pointer sample from the platform, resolves the
// shape handle to a label through a memoizing cache, diffs the resulting
// snapshot against the previous one, atomically publishes the new
// snapshot, and delivers the synthesized events to the registered
// handler in a fixed order (Move, TypeChange, then button transitions,
// left before right).
//
// The published snapshot is safe to read from any goroutine at any time
// via State; readers never observe a partially updated value and never
// block the sampling loop. A transient sampling failure skips the tick
// and keeps the previous snapshot; only failure to obtain the very
// first sample is fatal.
package monitor
