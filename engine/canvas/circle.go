package canvas

import "github.com/hubastard/canvas2d/engine/vector"

// Circle is drawn from the shared unit-circle mesh.
type Circle struct {
	Base
	// Position of the centre in pixels.
	Position vector.Vector2
	// Diameter in pixels. The unit mesh has radius 1, so the drawn radius
	// equals Diameter.
	Diameter float32
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Geometry(sp Space) (Geometry, error) {
	if err := sp.check(); err != nil {
		return Geometry{}, err
	}
	precision := sp.CirclePrecision
	if precision == 0 {
		precision = DefaultCirclePrecision
	}
	mesh, err := UnitCircle(precision)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Points: mesh,
		Anchor: sp.Position(c.Position),
		Scale:  sp.Scale(vector.Splat(c.Diameter)),
	}, nil
}
