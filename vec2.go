package pxlmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float32
}

func Vec2Zero() Vec2     { return Vec2{} }
func Vec2Left() Vec2     { return Vec2{-1, 0} }
func Vec2Right() Vec2    { return Vec2{1, 0} }
func Vec2Up() Vec2       { return Vec2{0, 1} }
func Vec2Down() Vec2     { return Vec2{0, -1} }
func Vec2Infinity() Vec2 { return Vec2{Inf(), Inf()} }

// Vec2Splat returns a vector with every component set to s.
func Vec2Splat(s float32) Vec2 { return Vec2{s, s} }

// SqrMagnitude returns the squared length of v.
func (v Vec2) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the length of v, or 0 when the squared length is below
// Epsilon.
func (v Vec2) Magnitude() float32 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return 0
	}
	return math32.Sqrt(sqrmag)
}

// Normalize scales v to unit length in place. Vectors whose squared length is
// below Epsilon become the zero vector.
func (v *Vec2) Normalize() *Vec2 {
	*v = v.Normalized()
	return v
}

// Normalized returns v scaled to unit length, or the zero vector when the
// squared length is below Epsilon.
func (v Vec2) Normalized() Vec2 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return Vec2{}
	}
	return v.Scale(RSqrt(sqrmag))
}

// Add returns v + u.
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v.X + u.X, v.Y + u.Y}
}

// Sub returns v - u.
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

// Mul returns the component-wise product of v and u.
func (v Vec2) Mul(u Vec2) Vec2 {
	return Vec2{v.X * u.X, v.Y * u.Y}
}

// Div returns the component-wise quotient of v and u.
func (v Vec2) Div(u Vec2) Vec2 {
	return Vec2{v.X / u.X, v.Y / u.Y}
}

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Scale multiplies every component by t.
func (v Vec2) Scale(t float32) Vec2 {
	return Vec2{v.X * t, v.Y * t}
}

// DivScalar divides every component by s.
func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// ScalarSub returns s - v per component.
func (v Vec2) ScalarSub(s float32) Vec2 {
	return Vec2{s - v.X, s - v.Y}
}

// ScalarDiv returns s / v per component.
func (v Vec2) ScalarDiv(s float32) Vec2 {
	return Vec2{s / v.X, s / v.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Inc adds 1 to every component in place.
func (v *Vec2) Inc() *Vec2 {
	v.X++
	v.Y++
	return v
}

// Dec subtracts 1 from every component in place.
func (v *Vec2) Dec() *Vec2 {
	v.X--
	v.Y--
	return v
}

// Dot returns the dot product of v and u.
func (v Vec2) Dot(u Vec2) float32 {
	return v.X*u.X + v.Y*u.Y
}

// Cross returns the z component of the 3D cross product of v and u.
func (v Vec2) Cross(u Vec2) float32 {
	return v.X*u.Y - v.Y*u.X
}

// Lerp interpolates between v and u.
func (v Vec2) Lerp(u Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t)}
}

// At returns component i (0 is X). It panics if i is out of range.
func (v Vec2) At(i int) float32 {
	return v.array()[i]
}

// Set assigns component i. It panics if i is out of range.
func (v *Vec2) Set(i int, f float32) {
	a := v.array()
	a[i] = f
	*v = Vec2{a[0], a[1]}
}

func (v Vec2) array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// Equal reports whether v and u have bit-identical components.
func (v Vec2) Equal(u Vec2) bool {
	return bitsEqual(v.X, u.X) && bitsEqual(v.Y, u.Y)
}

// ApproxEqual reports whether every component of v is within eps of u.
func (v Vec2) ApproxEqual(u Vec2, eps float32) bool {
	return approx(v.X, u.X, eps) && approx(v.Y, u.Y, eps)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
