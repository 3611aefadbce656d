// Package hook runs user-supplied Lua scripts against cursor events.
//
// A script may define any of the functions on_move, on_click,
// on_release, and on_type_change. Each receives one table argument with
// the same field names as the event's JSON form; positions are nested
// tables with x and y keys. Hooks observe events; they cannot alter
// monitoring behavior, and a failing hook is logged and skipped.
package hook

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/logging"
)

// Hook function names a script may define.
const (
	fnMove       = "on_move"
	fnClick      = "on_click"
	fnRelease    = "on_release"
	fnTypeChange = "on_type_change"
)

// Engine executes event hooks from a Lua script.
//
// gopher-lua's LState is not goroutine-safe. The monitor invokes its
// handler synchronously on the sampling goroutine, and that is the only
// goroutine that may call Dispatch.
type Engine struct {
	state *lua.LState
	log   *logging.Logger
}

// Load compiles and runs the script at path, returning an engine bound
// to whatever hook functions it defined.
func Load(path string, log *logging.Logger) (*Engine, error) {
	if log == nil {
		log = logging.Nop()
	}
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("hook: loading %s: %w", path, err)
	}
	return &Engine{state: L, log: log}, nil
}

// LoadString is Load for in-memory script source.
func LoadString(src string, log *logging.Logger) (*Engine, error) {
	if log == nil {
		log = logging.Nop()
	}
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("hook: loading script: %w", err)
	}
	return &Engine{state: L, log: log}, nil
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.state.Close()
}

// Dispatch invokes the hook matching the event, if the script defined
// one. Script errors are logged and do not interrupt monitoring.
// Must only be called from the goroutine that owns the engine.
func (e *Engine) Dispatch(ev cursor.Event) {
	var name string
	var arg *lua.LTable

	switch ev := ev.(type) {
	case cursor.Move:
		name = fnMove
		arg = e.newEventTable(ev.Timestamp)
		arg.RawSetString("position", e.positionTable(ev.Position))
		arg.RawSetString("cursor_type", lua.LString(ev.CursorType))
	case cursor.Click:
		name = fnClick
		arg = e.newEventTable(ev.Timestamp)
		arg.RawSetString("button", lua.LString(ev.Button.String()))
		arg.RawSetString("position", e.positionTable(ev.Position))
	case cursor.Release:
		name = fnRelease
		arg = e.newEventTable(ev.Timestamp)
		arg.RawSetString("button", lua.LString(ev.Button.String()))
	case cursor.TypeChange:
		name = fnTypeChange
		arg = e.newEventTable(ev.Timestamp)
		arg.RawSetString("new_type", lua.LString(ev.NewType))
		arg.RawSetString("position", e.positionTable(ev.Position))
	default:
		return
	}

	fn := e.state.GetGlobal(name)
	if fn == lua.LNil {
		return
	}

	err := e.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, arg)
	if err != nil {
		e.log.Warnf("hook %s failed: %v", name, err)
	}
}

func (e *Engine) newEventTable(timestamp string) *lua.LTable {
	t := e.state.NewTable()
	t.RawSetString("timestamp", lua.LString(timestamp))
	return t
}

func (e *Engine) positionTable(p cursor.Position) *lua.LTable {
	t := e.state.NewTable()
	t.RawSetString("x", lua.LNumber(p.X))
	t.RawSetString("y", lua.LNumber(p.Y))
	return t
}
