package hook

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/luuma/cursorwatch/internal/cursor"
)

const countingScript = `
moves = 0
clicks = 0

function on_move(e)
	moves = moves + 1
	last_type = e.cursor_type
	last_x = e.position.x
end

function on_click(e)
	clicks = clicks + 1
	last_button = e.button
end
`

func mustLoad(t *testing.T, src string) *Engine {
	t.Helper()
	e, err := LoadString(src, nil)
	if err != nil {
		t.Fatalf("LoadString() error: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func globalNumber(t *testing.T, e *Engine, name string) float64 {
	t.Helper()
	v := e.state.GetGlobal(name)
	n, ok := v.(lua.LNumber)
	if !ok {
		t.Fatalf("global %s = %v, want a number", name, v)
	}
	return float64(n)
}

func TestDispatchInvokesMatchingHook(t *testing.T) {
	e := mustLoad(t, countingScript)

	e.Dispatch(cursor.Move{
		Position:   cursor.Position{X: 150, Y: 120},
		CursorType: "hand",
		Timestamp:  "2025-01-02 03:04:05.678",
	})

	if got := globalNumber(t, e, "moves"); got != 1 {
		t.Errorf("moves = %v, want 1", got)
	}
	if got := e.state.GetGlobal("last_type"); got.String() != "hand" {
		t.Errorf("last_type = %v, want hand", got)
	}
	if got := globalNumber(t, e, "last_x"); got != 150 {
		t.Errorf("last_x = %v, want 150", got)
	}
	if got := globalNumber(t, e, "clicks"); got != 0 {
		t.Errorf("clicks = %v, want 0", got)
	}
}

func TestDispatchClickButtonName(t *testing.T) {
	e := mustLoad(t, countingScript)

	e.Dispatch(cursor.Click{
		Button:    cursor.ButtonRight,
		Position:  cursor.Position{X: 1, Y: 2},
		Timestamp: "2025-01-02 03:04:05.678",
	})

	if got := e.state.GetGlobal("last_button"); got.String() != "right" {
		t.Errorf("last_button = %v, want right", got)
	}
}

func TestDispatchMissingHookIsSilent(t *testing.T) {
	e := mustLoad(t, countingScript)

	// The script defines no on_release; dispatch must be a no-op.
	e.Dispatch(cursor.Release{Button: cursor.ButtonLeft, Timestamp: "t"})
}

func TestDispatchHookErrorDoesNotPanic(t *testing.T) {
	e := mustLoad(t, `function on_move(e) error("boom") end`)

	e.Dispatch(cursor.Move{Timestamp: "t"})
}

func TestLoadStringRejectsBadScript(t *testing.T) {
	if _, err := LoadString("function broken(", nil); err == nil {
		t.Error("LoadString(malformed) succeeded, want error")
	}
}
