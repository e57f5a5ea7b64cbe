package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2Int is a 2D integer vector, used for window sizes and positions.
// Operations that produce floats truncate toward zero when stored back.
type Vector2Int struct {
	X, Y int
}

// V2i is shorthand for Vector2Int{x, y}.
func V2i(x, y int) Vector2Int { return Vector2Int{X: x, Y: y} }

func (v Vector2Int) Add(o Vector2Int) Vector2Int { return Vector2Int{v.X + o.X, v.Y + o.Y} }
func (v Vector2Int) Sub(o Vector2Int) Vector2Int { return Vector2Int{v.X - o.X, v.Y - o.Y} }
func (v Vector2Int) Neg() Vector2Int             { return Vector2Int{-v.X, -v.Y} }
func (v Vector2Int) Scale(s int) Vector2Int      { return Vector2Int{v.X * s, v.Y * s} }
func (v Vector2Int) DivScalar(s int) Vector2Int  { return Vector2Int{v.X / s, v.Y / s} }
func (v Vector2Int) Mul(o Vector2Int) Vector2Int { return Vector2Int{v.X * o.X, v.Y * o.Y} }
func (v Vector2Int) Div(o Vector2Int) Vector2Int { return Vector2Int{v.X / o.X, v.Y / o.Y} }

// ScaleF multiplies by a float factor and truncates each component.
func (v Vector2Int) ScaleF(s float32) Vector2Int {
	return Vector2Int{int(float32(v.X) * s), int(float32(v.Y) * s)}
}

// DivF divides by a float and truncates each component.
func (v Vector2Int) DivF(s float32) Vector2Int {
	return Vector2Int{int(float32(v.X) / s), int(float32(v.Y) / s)}
}

func (v Vector2Int) SqrMagnitude() float32 { return float32(v.X*v.X + v.Y*v.Y) }
func (v Vector2Int) Magnitude() float32    { return math32.Sqrt(v.SqrMagnitude()) }

// Normalized divides by the magnitude and truncates, so anything but an
// axis-aligned vector collapses toward zero.
func (v Vector2Int) Normalized() Vector2Int { return v.DivF(v.Magnitude()) }

// WithMagnitude rescales v to length m, truncating the result.
func (v Vector2Int) WithMagnitude(m float32) Vector2Int { return v.ScaleF(m / v.Magnitude()) }

func (v Vector2Int) Limit(max float32) Vector2Int {
	if v.Magnitude() > max {
		return v.WithMagnitude(max)
	}
	return v
}

// Lerp interpolates in float space and truncates the result.
func (v Vector2Int) Lerp(o Vector2Int, t float32) Vector2Int {
	return v.Float().Lerp(o.Float(), t).Truncate()
}

func (v Vector2Int) Abs() Vector2Int {
	out := v
	if out.X < 0 {
		out.X = -out.X
	}
	if out.Y < 0 {
		out.Y = -out.Y
	}
	return out
}

func (v Vector2Int) Min(o Vector2Int) Vector2Int { return Vector2Int{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vector2Int) Max(o Vector2Int) Vector2Int { return Vector2Int{max(v.X, o.X), max(v.Y, o.Y)} }

// Sqrt is component-wise and returns a float vector.
func (v Vector2Int) Sqrt() Vector2 { return v.Float().Sqrt() }

// Float converts to Vector2 without loss for |components| < 2^24.
func (v Vector2Int) Float() Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

func (v Vector2Int) String() string { return fmt.Sprintf("[%d; %d]", v.X, v.Y) }
