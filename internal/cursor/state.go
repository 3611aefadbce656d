package cursor

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical timestamp layout used by snapshots,
// events, and activity log lines. The fractional second is truncated to
// milliseconds, never rounded; Go's zero-padded layout guarantees that.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Timestamp formats t in the canonical layout using local wall-clock time.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Position is a pointer location in screen coordinates.
type Position struct {
	X float64
	Y float64
}

// Equal reports whether two positions are identical. Comparison is exact:
// both values originate from the same discrete pixel source, so no
// tolerance is applied.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns the position formatted as "(x, y)" with whole pixels.
func (p Position) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

// State is one immutable snapshot of the pointer. Updates never mutate a
// State in place; the monitor builds a fresh value each tick and swaps it
// into the shared surface atomically.
type State struct {
	// Position is the last known pointer coordinates.
	Position Position `json:"position"`

	// CursorType is the resolved symbolic name of the active pointer
	// shape, e.g. "arrow" or "hand", or a synthesized "custom_<id>"
	// label for shapes outside the built-in set.
	CursorType string `json:"cursor_type"`

	// LeftClick reports whether the left button is currently down.
	LeftClick bool `json:"left_click"`

	// RightClick reports whether the right button is currently down.
	RightClick bool `json:"right_click"`

	// Timestamp is the capture time in TimestampLayout form.
	Timestamp string `json:"timestamp"`
}

// NewState returns the zero-position starting state stamped at now.
func NewState(now time.Time) State {
	return State{
		CursorType: "default",
		Timestamp:  Timestamp(now),
	}
}
