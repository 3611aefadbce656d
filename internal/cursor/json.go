package cursor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// The wire format is fixed: a State is a flat object with a [x,y]
// position tuple, and an Event is a single-key object whose key is the
// variant tag. Parsing is strict; text that does not match the schema
// fails rather than decoding to a default value.

// MarshalJSON encodes the position as a two-element [x, y] array.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a position from a two-element [x, y] array.
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("cursor: position must be an [x, y] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("cursor: position must have exactly 2 elements, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// MarshalState renders the compact canonical JSON form of a State.
func MarshalState(s State) ([]byte, error) {
	return json.Marshal(s)
}

// MarshalStateIndent renders the pretty-printed JSON form of a State.
func MarshalStateIndent(s State) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// StateFromJSON parses the canonical JSON form of a State, compact or
// pretty. All five fields must be present and no others may appear.
func StateFromJSON(data []byte) (State, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() || !gjson.ValidBytes(data) {
		return State{}, fmt.Errorf("cursor: state is not a JSON object")
	}
	if err := requireFields(root, "position", "cursor_type", "left_click", "right_click", "timestamp"); err != nil {
		return State{}, err
	}
	var s State
	if err := strictUnmarshal(data, &s); err != nil {
		return State{}, err
	}
	return s, nil
}

// MarshalEvent renders the compact canonical JSON form of an Event:
// a single-key object keyed by the variant tag.
func MarshalEvent(ev Event) ([]byte, error) {
	return json.Marshal(map[string]Event{ev.Tag(): ev})
}

// MarshalEventIndent renders the pretty-printed JSON form of an Event.
func MarshalEventIndent(ev Event) ([]byte, error) {
	return json.MarshalIndent(map[string]Event{ev.Tag(): ev}, "", "  ")
}

// EventFromJSON parses the canonical tagged form of an Event. The input
// must be an object with exactly one key naming a known variant.
func EventFromJSON(data []byte) (Event, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() || !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("cursor: event is not a JSON object")
	}

	var tag string
	var payload gjson.Result
	keys := 0
	root.ForEach(func(k, v gjson.Result) bool {
		tag = k.String()
		payload = v
		keys++
		return true
	})
	if keys != 1 {
		return nil, fmt.Errorf("cursor: event must have exactly one variant key, got %d", keys)
	}
	if !payload.IsObject() {
		return nil, fmt.Errorf("cursor: event payload for %q is not an object", tag)
	}

	raw := []byte(payload.Raw)
	switch tag {
	case "Move":
		if err := requireFields(payload, "position", "cursor_type", "timestamp"); err != nil {
			return nil, err
		}
		var ev Move
		if err := strictUnmarshal(raw, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case "Click":
		if err := requireFields(payload, "button", "position", "timestamp"); err != nil {
			return nil, err
		}
		var ev Click
		if err := strictUnmarshal(raw, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case "Release":
		if err := requireFields(payload, "button", "timestamp"); err != nil {
			return nil, err
		}
		var ev Release
		if err := strictUnmarshal(raw, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case "TypeChange":
		if err := requireFields(payload, "new_type", "position", "timestamp"); err != nil {
			return nil, err
		}
		var ev TypeChange
		if err := strictUnmarshal(raw, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("cursor: unknown event variant %q", tag)
	}
}

// requireFields verifies that obj contains every named field.
func requireFields(obj gjson.Result, fields ...string) error {
	for _, f := range fields {
		if !obj.Get(f).Exists() {
			return fmt.Errorf("cursor: missing required field %q", f)
		}
	}
	return nil
}

// strictUnmarshal decodes data into v, rejecting unknown fields.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("cursor: decoding JSON: %w", err)
	}
	return nil
}
