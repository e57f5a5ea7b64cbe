package canvas

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hubastard/canvas2d/engine/colors"
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/profiler"
	"github.com/hubastard/canvas2d/engine/vector"
)

// SizeProvider reports the logical canvas size in pixels.
// core.Window satisfies it.
type SizeProvider interface {
	Size() (width, height int)
}

// Drawer draws one flat-coloured convex polygon in device space.
// *renderer2d.Renderer2D satisfies it.
type Drawer interface {
	DrawPolygon(points []vector.Vector2, color colors.Color) error
}

// Scene owns the ordered set of live shapes and the destroy queue.
type Scene struct {
	size      SizeProvider
	drawer    Drawer
	precision int

	live   []Shape
	queue  []Shape
	nextID uint64
}

type Option func(*Scene)

// WithCirclePrecision sets the number of segments used for circles.
func WithCirclePrecision(n int) Option {
	return func(s *Scene) { s.precision = n }
}

// NewScene creates an empty scene. size and drawer may be nil and set
// later; rendering without them fails with a ConfigurationError.
func NewScene(size SizeProvider, drawer Drawer, opts ...Option) (*Scene, error) {
	s := &Scene{size: size, drawer: drawer, precision: DefaultCirclePrecision}
	for _, opt := range opts {
		opt(s)
	}
	// build the shared circle mesh up front
	if _, err := sharedCircle(s.precision); err != nil {
		return nil, fmt.Errorf("circle precision: %w", err)
	}
	return s, nil
}

func (s *Scene) SetSizeProvider(p SizeProvider) { s.size = p }
func (s *Scene) SetDrawer(d Drawer)             { s.drawer = d }

// Space returns the normalization space for the current canvas size.
func (s *Scene) Space() (Space, error) {
	if s.size == nil {
		return Space{}, &core.ConfigurationError{What: "canvas size provider"}
	}
	sp, err := NewSpace(s.size.Size())
	if err != nil {
		return Space{}, err
	}
	sp.CirclePrecision = s.precision
	return sp, nil
}

func (s *Scene) add(sh Shape, once bool) {
	s.nextID++
	b := sh.base()
	b.id = s.nextID
	b.scene = s
	b.self = sh
	b.destroyAfterDraw = once
	b.cache = newTransformCache()
	s.live = append(s.live, sh)
}

// NewCircle adds a circle at position with the given diameter in pixels.
func (s *Scene) NewCircle(position vector.Vector2, diameter float32, color colors.Color) *Circle {
	c := &Circle{Base: Base{Color: color}, Position: position, Diameter: diameter}
	s.add(c, false)
	return c
}

// NewLine adds a line of weight pixels from start to end.
func (s *Scene) NewLine(start, end vector.Vector2, weight float32, color colors.Color) *Line {
	l := &Line{Base: Base{Color: color}, Start: start, End: end, Weight: weight}
	s.add(l, false)
	return l
}

// NewPolygon adds a convex polygon. The points are copied.
func (s *Scene) NewPolygon(points []vector.Vector2, color colors.Color) (*Polygon, error) {
	if len(points) < 3 {
		return nil, &core.DegenerateGeometryError{Shape: KindPolygon.String(), Points: len(points)}
	}
	p := &Polygon{Base: Base{Color: color}, Points: slices.Clone(points)}
	s.add(p, false)
	return p, nil
}

// NewRectangle adds a rectangle pivoted at its (0,0) corner.
func (s *Scene) NewRectangle(position, size vector.Vector2, color colors.Color, rotation float32) *Rectangle {
	return s.NewRectangleWithPivot(position, size, vector.Zero, color, rotation)
}

func (s *Scene) NewRectangleWithPivot(position, size, pivot vector.Vector2, color colors.Color, rotation float32) *Rectangle {
	r := &Rectangle{Base: Base{Color: color}, Position: position, Size: size, Pivot: pivot, Rotation: rotation}
	s.add(r, false)
	return r
}

// Draw-once helpers: the shape is rendered in the next pass and destroyed
// right after its own draw.

func (s *Scene) DrawCircle(position vector.Vector2, diameter float32, color colors.Color) {
	s.add(&Circle{Base: Base{Color: color}, Position: position, Diameter: diameter}, true)
}

func (s *Scene) DrawLine(start, end vector.Vector2, weight float32, color colors.Color) {
	s.add(&Line{Base: Base{Color: color}, Start: start, End: end, Weight: weight}, true)
}

func (s *Scene) DrawPolygon(points []vector.Vector2, color colors.Color) error {
	if len(points) < 3 {
		return &core.DegenerateGeometryError{Shape: KindPolygon.String(), Points: len(points)}
	}
	s.add(&Polygon{Base: Base{Color: color}, Points: slices.Clone(points)}, true)
	return nil
}

func (s *Scene) DrawRectangle(position, size vector.Vector2, color colors.Color, rotation float32) {
	s.add(&Rectangle{Base: Base{Color: color}, Position: position, Size: size, Rotation: rotation}, true)
}

// Len is the number of shapes in the live set, including shapes destroyed
// this frame.
func (s *Scene) Len() int { return len(s.live) }

// Pending is the number of shapes waiting in the destroy queue.
func (s *Scene) Pending() int { return len(s.queue) }

// Shapes returns a copy of the live set in draw order.
func (s *Scene) Shapes() []Shape { return slices.Clone(s.live) }

// Clear destroys every live shape.
func (s *Scene) Clear() {
	for _, sh := range s.live {
		sh.base().Destroy()
	}
}

// Render draws every shape that is live when the pass starts, in insertion
// order. Shapes added during the pass are drawn next frame. A failing shape
// is logged and skipped; the errors of all failed shapes are joined.
//
// An empty canvas (a minimized window) skips the pass: nothing is drawn and
// draw-once shapes are destroyed without being drawn.
func (s *Scene) Render() error {
	defer profiler.Start("scene render")()

	if s.drawer == nil {
		return &core.ConfigurationError{What: "shape renderer"}
	}
	if s.size == nil {
		return &core.ConfigurationError{What: "canvas size provider"}
	}
	if w, h := s.size.Size(); w <= 0 || h <= 0 {
		s.skip()
		return nil
	}
	sp, err := s.Space()
	if err != nil {
		return err
	}

	log := core.Logger()
	var errs []error
	for _, sh := range s.live {
		b := sh.base()
		if err := s.renderShape(sh, sp); err != nil {
			log.Warn("shape skipped", "id", b.id, "kind", sh.Kind(), "error", err)
			errs = append(errs, fmt.Errorf("%s %d: %w", sh.Kind(), b.id, err))
		}
		if b.destroyAfterDraw {
			b.Destroy()
		}
	}
	return errors.Join(errs...)
}

func (s *Scene) skip() {
	dropped := 0
	for _, sh := range s.live {
		if b := sh.base(); b.destroyAfterDraw && !b.destroyed {
			b.Destroy()
			dropped++
		}
	}
	core.Logger().Debug("render pass skipped: empty canvas", "dropped", dropped)
}

func (s *Scene) renderShape(sh Shape, sp Space) error {
	g, err := sh.Geometry(sp)
	if err != nil {
		return err
	}
	if len(g.Points) < 3 {
		return &core.DegenerateGeometryError{Shape: sh.Kind().String(), Points: len(g.Points)}
	}
	b := sh.base()
	b.cache.apply(&g)
	return s.drawer.DrawPolygon(g.Points, b.Color)
}

// Flush removes destroyed shapes from the live set, keeping the order of
// the survivors, and empties the destroy queue. It returns the number of
// shapes removed.
func (s *Scene) Flush() int {
	defer profiler.Start("scene flush")()

	if len(s.queue) == 0 {
		return 0
	}
	kept := make([]Shape, 0, len(s.live))
	for _, sh := range s.live {
		if !sh.base().destroyed {
			kept = append(kept, sh)
		}
	}
	removed := len(s.live) - len(kept)
	s.live = kept
	clear(s.queue)
	s.queue = s.queue[:0]
	return removed
}
