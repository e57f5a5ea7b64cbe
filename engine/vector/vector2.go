package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D float vector in pixel or normalized device space.
//
// Equality is plain == on the struct: exact per-component comparison with
// no epsilon. NaN components never compare equal with ==; use Equals to
// treat NaN as equal to NaN.
type Vector2 struct {
	X, Y float32
}

var (
	Zero  = Vector2{0, 0}
	One   = Vector2{1, 1}
	Right = Vector2{1, 0}
	Up    = Vector2{0, 1}
	Left  = Vector2{-1, 0}
	Down  = Vector2{0, -1}
)

// V2 is shorthand for Vector2{x, y}.
func V2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Splat returns a vector with both components set to v.
func Splat(v float32) Vector2 { return Vector2{X: v, Y: v} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Neg() Vector2          { return Vector2{-v.X, -v.Y} }

// Scale multiplies both components by s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// DivScalar divides both components by s.
func (v Vector2) DivScalar(s float32) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Mul is the component-wise product.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Div is the component-wise quotient.
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

func (v Vector2) Dot(o Vector2) float32 {
	m := v.Mul(o)
	return m.X + m.Y
}

func (v Vector2) SqrMagnitude() float32 { return v.X*v.X + v.Y*v.Y }
func (v Vector2) Magnitude() float32    { return math32.Sqrt(v.SqrMagnitude()) }

// Normalized divides v by its magnitude. A zero vector yields NaN
// components; callers that can see zero-length input must check.
func (v Vector2) Normalized() Vector2 { return v.DivScalar(v.Magnitude()) }

// WithMagnitude rescales v to length m. Zero vectors become NaN.
func (v Vector2) WithMagnitude(m float32) Vector2 { return v.Scale(m / v.Magnitude()) }

// Limit caps the magnitude of v at max.
func (v Vector2) Limit(max float32) Vector2 {
	if v.Magnitude() > max {
		return v.WithMagnitude(max)
	}
	return v
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float32) Vector2 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Rotation is the angle of v from the positive X axis, atan2(y, x).
func (v Vector2) Rotation() float32 { return math32.Atan2(v.Y, v.X) }

// Lerp interpolates from v (t=0) to o (t=1).
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return v.Scale(1 - t).Add(o.Scale(t))
}

func (v Vector2) Abs() Vector2  { return Vector2{math32.Abs(v.X), math32.Abs(v.Y)} }
func (v Vector2) Sqrt() Vector2 { return Vector2{math32.Sqrt(v.X), math32.Sqrt(v.Y)} }

func (v Vector2) Min(o Vector2) Vector2 {
	out := v
	if o.X < v.X {
		out.X = o.X
	}
	if o.Y < v.Y {
		out.Y = o.Y
	}
	return out
}

func (v Vector2) Max(o Vector2) Vector2 {
	out := v
	if o.X > v.X {
		out.X = o.X
	}
	if o.Y > v.Y {
		out.Y = o.Y
	}
	return out
}

// Equals compares exactly per component, with NaN equal to NaN.
func (v Vector2) Equals(o Vector2) bool {
	return sameFloat(v.X, o.X) && sameFloat(v.Y, o.Y)
}

func sameFloat(a, b float32) bool {
	return a == b || (math32.IsNaN(a) && math32.IsNaN(b))
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return !math32.IsNaN(v.X) && !math32.IsNaN(v.Y) &&
		!math32.IsInf(v.X, 0) && !math32.IsInf(v.Y, 0)
}

// Truncate converts to Vector2Int, truncating each component toward zero.
func (v Vector2) Truncate() Vector2Int { return Vector2Int{int(v.X), int(v.Y)} }

func (v Vector2) String() string { return fmt.Sprintf("<%g; %g>", v.X, v.Y) }
