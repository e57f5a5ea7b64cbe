package canvas

import "github.com/hubastard/canvas2d/engine/vector"

// Line is a quad of width Weight from Start to End.
type Line struct {
	Base
	Start, End vector.Vector2
	Weight     float32
}

func (l *Line) Kind() Kind { return KindLine }

// Geometry places a unit-length quad centred on the X axis at Start,
// stretched to the line's length and weight. The angle is negated because
// Position flips Y. A zero-length line yields a zero-width quad.
func (l *Line) Geometry(sp Space) (Geometry, error) {
	if err := sp.check(); err != nil {
		return Geometry{}, err
	}
	delta := l.End.Sub(l.Start)
	return Geometry{
		Points: []vector.Vector2{
			{X: 0, Y: -0.5},
			{X: 1, Y: -0.5},
			{X: 1, Y: 0.5},
			{X: 0, Y: 0.5},
		},
		Anchor:   sp.Position(l.Start),
		Scale:    sp.Scale(vector.V2(delta.Magnitude(), l.Weight)),
		Rotation: -delta.Rotation(),
	}, nil
}
