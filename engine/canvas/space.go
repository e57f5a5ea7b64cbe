package canvas

import (
	"fmt"

	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/vector"
)

// DefaultCirclePrecision is the number of segments in the shared circle mesh.
const DefaultCirclePrecision = 100

// Space maps canvas pixels to normalized device coordinates. Build it with
// NewSpace or Scene.Space; shape geometry rejects a Space without a size.
type Space struct {
	Width, Height   float32
	CirclePrecision int
}

// NewSpace validates the canvas size.
func NewSpace(width, height int) (Space, error) {
	if width <= 0 || height <= 0 {
		return Space{}, &core.ConfigurationError{What: fmt.Sprintf("canvas size %dx%d", width, height)}
	}
	return Space{Width: float32(width), Height: float32(height), CirclePrecision: DefaultCirclePrecision}, nil
}

func (sp Space) check() error {
	if sp.Width <= 0 || sp.Height <= 0 {
		return &core.ConfigurationError{What: fmt.Sprintf("canvas size %gx%g", sp.Width, sp.Height)}
	}
	return nil
}

func (sp Space) Size() vector.Vector2 { return vector.V2(sp.Width, sp.Height) }

// Position maps a top-left-origin pixel position to bottom-left-origin
// device space.
func (sp Space) Position(p vector.Vector2) vector.Vector2 {
	p.Y = sp.Height - p.Y
	return p.Scale(2).Div(sp.Size()).Sub(vector.One)
}

// Scale maps a pixel extent to a device-space extent. Y is not flipped.
func (sp Space) Scale(size vector.Vector2) vector.Vector2 {
	return size.Div(sp.Size()).Scale(2)
}

// Pixel is the inverse of Position.
func (sp Space) Pixel(n vector.Vector2) vector.Vector2 {
	p := n.Add(vector.One).Mul(sp.Size()).Scale(0.5)
	p.Y = sp.Height - p.Y
	return p
}
