package canvas

import (
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/vector"
)

// Polygon is a convex outline in pixels. Points must be in clockwise or
// counter-clockwise order; concave outlines are drawn with wrong triangles.
type Polygon struct {
	Base
	Points []vector.Vector2
}

func (p *Polygon) Kind() Kind { return KindPolygon }

// Geometry normalizes each point on its own and returns an identity
// transform.
func (p *Polygon) Geometry(sp Space) (Geometry, error) {
	if err := sp.check(); err != nil {
		return Geometry{}, err
	}
	if len(p.Points) < 3 {
		return Geometry{}, &core.DegenerateGeometryError{Shape: KindPolygon.String(), Points: len(p.Points)}
	}
	pts := make([]vector.Vector2, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = sp.Position(pt)
	}
	return Geometry{Points: pts, Anchor: vector.Zero, Scale: vector.One}, nil
}
