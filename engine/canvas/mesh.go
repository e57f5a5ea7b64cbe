package canvas

import (
	"slices"
	"sync"

	"github.com/chewxy/math32"
	"github.com/hubastard/canvas2d/engine/core"
	"github.com/hubastard/canvas2d/engine/vector"
)

// circleMeshes holds one immutable unit circle per precision, shared by
// every scene in the process.
var circleMeshes sync.Map // int -> []vector.Vector2

func sharedCircle(precision int) ([]vector.Vector2, error) {
	if precision < 3 {
		return nil, &core.DegenerateGeometryError{Shape: "circle mesh", Points: precision}
	}
	if m, ok := circleMeshes.Load(precision); ok {
		return m.([]vector.Vector2), nil
	}

	mesh := make([]vector.Vector2, precision)
	for i := range mesh {
		arc := 2 * math32.Pi * float32(i) / float32(precision)
		mesh[i] = vector.V2(math32.Sin(arc), math32.Cos(arc))
	}
	m, _ := circleMeshes.LoadOrStore(precision, mesh)
	return m.([]vector.Vector2), nil
}

// UnitCircle returns a copy of the shared unit circle with precision
// points, starting at (0,1) and going clockwise.
func UnitCircle(precision int) ([]vector.Vector2, error) {
	m, err := sharedCircle(precision)
	if err != nil {
		return nil, err
	}
	return slices.Clone(m), nil
}
