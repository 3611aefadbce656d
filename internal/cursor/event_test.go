package cursor

import "testing"

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{Button(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEventTags(t *testing.T) {
	tests := []struct {
		event Event
		tag   string
	}{
		{Move{}, "Move"},
		{Click{}, "Click"},
		{Release{}, "Release"},
		{TypeChange{}, "TypeChange"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := tt.event.Tag(); got != tt.tag {
				t.Errorf("Tag() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestButtonUnmarshalRejectsUnknown(t *testing.T) {
	var b Button
	if err := b.UnmarshalJSON([]byte(`"middle"`)); err == nil {
		t.Error("expected error for unknown button name")
	}
	if err := b.UnmarshalJSON([]byte(`3`)); err == nil {
		t.Error("expected error for non-string button")
	}
}
