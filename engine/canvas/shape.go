// Package canvas holds the live set of 2D shapes and reduces each of them
// to triangles once per frame.
//
// Shapes are described in canvas pixels with a top-left origin. Every
// frame a shape is normalized to device space ([-1,1]², bottom-left
// origin) as a set of local points plus an anchor, scale and rotation;
// the shape's cached transform is applied and the result is drawn as a
// triangle fan.
//
// A Scene is not safe for concurrent use. Create, mutate, render and flush
// shapes from the goroutine that runs the frame loop.
package canvas

import (
	"github.com/hubastard/canvas2d/engine/colors"
	"github.com/hubastard/canvas2d/engine/vector"
)

// Kind tags the concrete shape variant.
type Kind int

const (
	KindCircle Kind = iota
	KindLine
	KindPolygon
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Geometry is a shape reduced to local points and the transform that maps
// them to device space: p' = R(Rotation)·S(Scale)·p + Anchor.
type Geometry struct {
	Points   []vector.Vector2
	Anchor   vector.Vector2
	Scale    vector.Vector2
	Rotation float32
}

// Shape is implemented by *Circle, *Line, *Polygon and *Rectangle.
type Shape interface {
	Kind() Kind
	// Geometry normalizes the shape for the given canvas. The returned
	// points are owned by the caller.
	Geometry(sp Space) (Geometry, error)

	base() *Base
}

// Base is the state shared by every shape: colour, lifecycle flags and
// the transform cache.
type Base struct {
	Color colors.Color

	id               uint64
	scene            *Scene
	self             Shape
	destroyed        bool
	destroyAfterDraw bool
	cache            transformCache
}

func (b *Base) base() *Base { return b }

// ID is unique within the shape's scene.
func (b *Base) ID() uint64 { return b.id }

// Destroyed reports whether Destroy has been called. It never resets.
func (b *Base) Destroyed() bool { return b.destroyed }

// Destroy queues the shape for removal at the end of the current frame.
// A shape destroyed before or during the render pass is still drawn in
// that pass and never again. Repeated calls are no-ops.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.scene != nil {
		b.scene.queue = append(b.scene.queue, b.self)
	}
}

// Close destroys the shape; it never fails.
func (b *Base) Close() error {
	b.Destroy()
	return nil
}

// Transform returns the compound matrix used by the last render.
func (b *Base) Transform() vector.Mat2 { return b.cache.transform }
