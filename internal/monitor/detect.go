package monitor

import "github.com/luuma/cursorwatch/internal/cursor"

// Diff compares two consecutive snapshots and synthesizes the discrete
// events that occurred between them. Events come back in a fixed order:
// Move, then TypeChange, then button transitions with left before
// right. Identical snapshots produce no events, keeping event volume
// proportional to activity rather than polling frequency.
//
// Motion between the two snapshots is not reconstructed; periodic
// sampling only sees the start and end states of an interval.
func Diff(prev, cur cursor.State) []cursor.Event {
	var events []cursor.Event

	if !cur.Position.Equal(prev.Position) {
		events = append(events, cursor.Move{
			Position:   cur.Position,
			CursorType: cur.CursorType,
			Timestamp:  cur.Timestamp,
		})
	}

	if cur.CursorType != prev.CursorType {
		events = append(events, cursor.TypeChange{
			NewType:   cur.CursorType,
			Position:  cur.Position,
			Timestamp: cur.Timestamp,
		})
	}

	events = appendButtonTransition(events, cursor.ButtonLeft, prev.LeftClick, cur.LeftClick, cur)
	events = appendButtonTransition(events, cursor.ButtonRight, prev.RightClick, cur.RightClick, cur)

	return events
}

// appendButtonTransition appends a Click or Release if the button state
// changed. Each button is considered independently.
func appendButtonTransition(events []cursor.Event, b cursor.Button, was, down bool, cur cursor.State) []cursor.Event {
	switch {
	case down && !was:
		return append(events, cursor.Click{
			Button:    b,
			Position:  cur.Position,
			Timestamp: cur.Timestamp,
		})
	case !down && was:
		return append(events, cursor.Release{
			Button:    b,
			Timestamp: cur.Timestamp,
		})
	}
	return events
}
