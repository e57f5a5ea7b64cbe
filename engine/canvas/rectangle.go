package canvas

import "github.com/hubastard/canvas2d/engine/vector"

// Rectangle is an axis-aligned box of Size pixels rotated by Rotation
// radians around Pivot.
type Rectangle struct {
	Base
	Position vector.Vector2
	Size     vector.Vector2
	// Pivot is the point of the unit box placed at Position.
	Pivot    vector.Vector2
	Rotation float32
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

// Geometry returns the unit box corners relative to the pivot, in
// perimeter order so the fan covers the whole box.
func (r *Rectangle) Geometry(sp Space) (Geometry, error) {
	if err := sp.check(); err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Points: []vector.Vector2{
			r.Pivot.Neg(),
			vector.Right.Sub(r.Pivot),
			vector.One.Sub(r.Pivot),
			vector.Up.Sub(r.Pivot),
		},
		Anchor:   sp.Position(r.Position),
		Scale:    sp.Scale(r.Size),
		Rotation: r.Rotation,
	}, nil
}
