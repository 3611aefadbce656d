package monitor

import "github.com/luuma/cursorwatch/internal/cursor"

// Shape is an opaque platform identifier for the active pointer shape.
// Handles are assumed stable for the lifetime of a monitoring session.
type Shape uintptr

// Sample is one raw reading from the platform pointer subsystem.
type Sample struct {
	// Position is the pointer location in screen coordinates.
	Position cursor.Position

	// Shape identifies the active pointer shape.
	Shape Shape

	// LeftDown reports whether the left button is held.
	LeftDown bool

	// RightDown reports whether the right button is held.
	RightDown bool
}

// Sampler returns the current raw pointer snapshot. Implementations are
// expected to be fast and non-blocking; a returned error applies to a
// single reading only and the monitor retries on the next tick.
type Sampler interface {
	Sample() (Sample, error)
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() (Sample, error)

// Sample implements Sampler.
func (f SamplerFunc) Sample() (Sample, error) { return f() }

// ShapeResolver resolves an opaque shape handle to its symbolic label.
// Resolution is inexpensive but not free; the monitor memoizes results
// per handle in a ShapeCache.
type ShapeResolver interface {
	Resolve(Shape) string
}

// ShapeResolverFunc adapts a function to the ShapeResolver interface.
type ShapeResolverFunc func(Shape) string

// Resolve implements ShapeResolver.
func (f ShapeResolverFunc) Resolve(s Shape) string { return f(s) }
