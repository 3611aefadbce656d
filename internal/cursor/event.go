package cursor

import (
	"encoding/json"
	"fmt"
)

// Button identifies a mouse button.
type Button int

const (
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns the button name used in event payloads and log lines.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the button as its name.
func (b Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a button from its name. Unknown names are a
// parse error, not a default.
func (b *Button) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("cursor: button must be a string: %w", err)
	}
	switch name {
	case "left":
		*b = ButtonLeft
	case "right":
		*b = ButtonRight
	default:
		return fmt.Errorf("cursor: unknown button %q", name)
	}
	return nil
}

// Event is a discrete cursor occurrence derived from one sampling tick.
// The set of implementations is closed: Move, Click, Release, and
// TypeChange. Dispatch sites can type-switch exhaustively over those
// four variants.
type Event interface {
	// Tag returns the variant name used as the JSON object key.
	Tag() string

	event()
}

// Move reports that the pointer moved to a new position.
type Move struct {
	Position   Position `json:"position"`
	CursorType string   `json:"cursor_type"`
	Timestamp  string   `json:"timestamp"`
}

// Tag implements Event.
func (Move) Tag() string { return "Move" }

func (Move) event() {}

// Click reports that a button transitioned from up to down.
type Click struct {
	Button    Button   `json:"button"`
	Position  Position `json:"position"`
	Timestamp string   `json:"timestamp"`
}

// Tag implements Event.
func (Click) Tag() string { return "Click" }

func (Click) event() {}

// Release reports that a button transitioned from down to up.
type Release struct {
	Button    Button `json:"button"`
	Timestamp string `json:"timestamp"`
}

// Tag implements Event.
func (Release) Tag() string { return "Release" }

func (Release) event() {}

// TypeChange reports that the active pointer shape changed.
type TypeChange struct {
	NewType   string   `json:"new_type"`
	Position  Position `json:"position"`
	Timestamp string   `json:"timestamp"`
}

// Tag implements Event.
func (TypeChange) Tag() string { return "TypeChange" }

func (TypeChange) event() {}
