//go:build windows

package platform

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/monitor"
)

const (
	vkLButton = 0x01
	vkRButton = 0x02

	// High bit of GetAsyncKeyState: key is currently down.
	keyDownBit = 0x8000
)

type point struct {
	X int32
	Y int32
}

// cursorInfo mirrors the user32 CURSORINFO layout.
type cursorInfo struct {
	Size      uint32
	Flags     uint32
	Cursor    uintptr
	ScreenPos point
}

// Sampler reads the pointer state through user32. One GetCursorInfo
// call yields both position and shape handle; button state comes from
// GetAsyncKeyState.
type Sampler struct {
	getCursorInfo    *syscall.LazyProc
	getAsyncKeyState *syscall.LazyProc
}

// New returns the Windows pointer sampler, or an error if the user32
// entry points cannot be located. That error is the fatal
// monitoring-unavailable case; nothing is retried here.
func New() (*Sampler, error) {
	user32 := syscall.NewLazyDLL("user32.dll")
	s := &Sampler{
		getCursorInfo:    user32.NewProc("GetCursorInfo"),
		getAsyncKeyState: user32.NewProc("GetAsyncKeyState"),
	}
	if err := s.getCursorInfo.Find(); err != nil {
		return nil, fmt.Errorf("platform: GetCursorInfo unavailable: %w", err)
	}
	if err := s.getAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("platform: GetAsyncKeyState unavailable: %w", err)
	}
	return s, nil
}

// Sample implements monitor.Sampler.
func (s *Sampler) Sample() (monitor.Sample, error) {
	var info cursorInfo
	info.Size = uint32(unsafe.Sizeof(info))

	ret, _, errno := s.getCursorInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return monitor.Sample{}, fmt.Errorf("platform: GetCursorInfo failed: %v", errno)
	}

	return monitor.Sample{
		Position: cursor.Position{
			X: float64(info.ScreenPos.X),
			Y: float64(info.ScreenPos.Y),
		},
		Shape:     monitor.Shape(info.Cursor),
		LeftDown:  s.keyDown(vkLButton),
		RightDown: s.keyDown(vkRButton),
	}, nil
}

func (s *Sampler) keyDown(vk uintptr) bool {
	ret, _, _ := s.getAsyncKeyState.Call(vk)
	return uint16(ret)&keyDownBit != 0
}

// Resolver resolves shape handles by comparing them against the handles
// of the standard Windows cursors. LoadCursorW on a standard ordinal
// returns a shared handle, so equality identifies the shape.
type Resolver struct {
	loadCursor *syscall.LazyProc
}

// NewResolver returns the Windows shape resolver.
func NewResolver() *Resolver {
	user32 := syscall.NewLazyDLL("user32.dll")
	return &Resolver{loadCursor: user32.NewProc("LoadCursorW")}
}

// Resolve implements monitor.ShapeResolver. Handles outside the
// standard set map to a synthesized custom label; there is no error
// path.
func (r *Resolver) Resolve(handle monitor.Shape) string {
	for _, shape := range standardShapes {
		std, _, _ := r.loadCursor.Call(0, uintptr(shape.ordinal))
		if std != 0 && std == uintptr(handle) {
			return shape.label
		}
	}
	return FallbackLabel(handle)
}
