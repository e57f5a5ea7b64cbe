package canvas

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/canvas2d/engine/vector"
)

// rotations closer than this reuse the cached rotation matrix
const rotationTolerance = 1e-3

// transformCache memoizes the scale, rotation and compound matrices keyed
// on the last scale and rotation seen.
type transformCache struct {
	scale    vector.Vector2
	rotation float32

	scaleM    vector.Mat2
	rotationM vector.Mat2
	transform vector.Mat2

	builds int // compound matrix recomputations
}

func newTransformCache() transformCache {
	return transformCache{
		scale:     vector.One,
		scaleM:    vector.Identity2(),
		rotationM: vector.Identity2(),
		transform: vector.Identity2(),
	}
}

// matrix returns R(rotation)·S(scale). Scale hits on exact equality only,
// with NaN equal to NaN.
func (c *transformCache) matrix(scale vector.Vector2, rotation float32) vector.Mat2 {
	scaleHit := c.scale.Equals(scale)
	rotationHit := math32.Abs(c.rotation-rotation) <= rotationTolerance

	if !scaleHit {
		c.scaleM = vector.Scale2(scale)
		c.scale = scale
	}
	if !rotationHit {
		c.rotationM = vector.Rotation2(rotation)
		c.rotation = rotation
	}
	if !scaleHit || !rotationHit {
		c.transform = c.rotationM.Mul(c.scaleM)
		c.builds++
	}
	return c.transform
}

// apply transforms g.Points in place into device space.
func (c *transformCache) apply(g *Geometry) {
	m := c.matrix(g.Scale, g.Rotation)
	for i, p := range g.Points {
		g.Points[i] = m.MulVec(p).Add(g.Anchor)
	}
}
