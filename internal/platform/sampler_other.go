//go:build !windows

package platform

import (
	"github.com/go-vgo/robotgo"

	"github.com/luuma/cursorwatch/internal/cursor"
	"github.com/luuma/cursorwatch/internal/monitor"
)

// pseudoShape is the shape handle reported where the active pointer
// shape is not observable.
const pseudoShape monitor.Shape = 0

// Sampler reads the pointer position through robotgo. Shape identity
// and button state have no portable query, so samples report the
// default arrow shape with both buttons up. Move events keep full
// fidelity; Click/Release and TypeChange are Windows-only.
type Sampler struct{}

// New returns the portable pointer sampler.
func New() (*Sampler, error) {
	return &Sampler{}, nil
}

// Sample implements monitor.Sampler.
func (s *Sampler) Sample() (monitor.Sample, error) {
	x, y := robotgo.Location()
	return monitor.Sample{
		Position: cursor.Position{X: float64(x), Y: float64(y)},
		Shape:    pseudoShape,
	}, nil
}

// Resolver maps the portable pseudo-handle to the arrow label.
type Resolver struct{}

// NewResolver returns the portable shape resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve implements monitor.ShapeResolver.
func (Resolver) Resolve(handle monitor.Shape) string {
	if handle == pseudoShape {
		return "arrow"
	}
	return FallbackLabel(handle)
}
