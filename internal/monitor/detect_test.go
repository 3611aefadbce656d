package monitor

import (
	"reflect"
	"testing"

	"github.com/luuma/cursorwatch/internal/cursor"
)

func baseState() cursor.State {
	return cursor.State{
		Position:   cursor.Position{X: 100, Y: 100},
		CursorType: "arrow",
		Timestamp:  "2025-01-02 03:04:05.000",
	}
}

func TestDiffNoChangeNoEvents(t *testing.T) {
	s := baseState()
	if events := Diff(s, s); len(events) != 0 {
		t.Errorf("Diff(identical) = %v, want no events", events)
	}
}

func TestDiffMoveOnly(t *testing.T) {
	prev := baseState()
	cur := prev
	cur.Position = cursor.Position{X: 150, Y: 120}
	cur.Timestamp = "2025-01-02 03:04:05.016"

	events := Diff(prev, cur)

	want := []cursor.Event{
		cursor.Move{Position: cur.Position, CursorType: "arrow", Timestamp: cur.Timestamp},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Diff() = %v, want %v", events, want)
	}
}

func TestDiffTypeChangeWithoutMove(t *testing.T) {
	prev := baseState()
	cur := prev
	cur.CursorType = "ibeam"

	events := Diff(prev, cur)

	want := []cursor.Event{
		cursor.TypeChange{NewType: "ibeam", Position: cur.Position, Timestamp: cur.Timestamp},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Diff() = %v, want %v", events, want)
	}
}

func TestDiffEventOrdering(t *testing.T) {
	// Position, type, and left button all change on one tick: the fixed
	// order is Move, TypeChange, Click.
	prev := baseState()
	cur := cursor.State{
		Position:   cursor.Position{X: 150, Y: 120},
		CursorType: "hand",
		LeftClick:  true,
		Timestamp:  "2025-01-02 03:04:05.016",
	}

	events := Diff(prev, cur)

	want := []cursor.Event{
		cursor.Move{Position: cur.Position, CursorType: "hand", Timestamp: cur.Timestamp},
		cursor.TypeChange{NewType: "hand", Position: cur.Position, Timestamp: cur.Timestamp},
		cursor.Click{Button: cursor.ButtonLeft, Position: cur.Position, Timestamp: cur.Timestamp},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Diff() = %v, want %v", events, want)
	}
}

func TestDiffButtonIndependence(t *testing.T) {
	// Left goes down while right goes up on the same tick; both fire,
	// left before right.
	prev := baseState()
	prev.RightClick = true
	cur := prev
	cur.LeftClick = true
	cur.RightClick = false

	events := Diff(prev, cur)

	want := []cursor.Event{
		cursor.Click{Button: cursor.ButtonLeft, Position: cur.Position, Timestamp: cur.Timestamp},
		cursor.Release{Button: cursor.ButtonRight, Timestamp: cur.Timestamp},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Diff() = %v, want %v", events, want)
	}
}

func TestDiffReleaseOnly(t *testing.T) {
	prev := baseState()
	prev.LeftClick = true
	cur := prev
	cur.LeftClick = false

	events := Diff(prev, cur)

	want := []cursor.Event{
		cursor.Release{Button: cursor.ButtonLeft, Timestamp: cur.Timestamp},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Diff() = %v, want %v", events, want)
	}
}

func TestDiffHeldButtonIsSilent(t *testing.T) {
	// A button held across ticks is not a new Click.
	prev := baseState()
	prev.LeftClick = true
	cur := prev

	if events := Diff(prev, cur); len(events) != 0 {
		t.Errorf("Diff(held button) = %v, want no events", events)
	}
}
