package vector

import "github.com/chewxy/math32"

// Mat2 is a row-major 2x2 matrix: {m11, m12, m21, m22}.
type Mat2 [4]float32

// Identity2 returns the identity matrix.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

// Scale2 returns diag(s.X, s.Y).
func Scale2(s Vector2) Mat2 { return Mat2{s.X, 0, 0, s.Y} }

// Rotation2 returns [[cos,-sin],[sin,cos]] for angle a.
func Rotation2(a float32) Mat2 {
	c, s := math32.Cos(a), math32.Sin(a)
	return Mat2{c, -s, s, c}
}

// Mul returns m·n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		m[0]*n[0] + m[1]*n[2], m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2], m[2]*n[1] + m[3]*n[3],
	}
}

// MulVec returns m·v.
func (m Mat2) MulVec(v Vector2) Vector2 {
	return Vector2{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}
