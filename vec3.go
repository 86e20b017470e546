package pxlmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z float32
}

func Vec3Zero() Vec3     { return Vec3{} }
func Vec3Left() Vec3     { return Vec3{-1, 0, 0} }
func Vec3Right() Vec3    { return Vec3{1, 0, 0} }
func Vec3Up() Vec3       { return Vec3{0, 1, 0} }
func Vec3Down() Vec3     { return Vec3{0, -1, 0} }
func Vec3Forward() Vec3  { return Vec3{0, 0, 1} }
func Vec3Back() Vec3     { return Vec3{0, 0, -1} }
func Vec3Infinity() Vec3 { return Vec3{Inf(), Inf(), Inf()} }

// Vec3Splat returns a vector with every component set to s.
func Vec3Splat(s float32) Vec3 { return Vec3{s, s, s} }

func (v Vec3) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of v, or 0 when the squared length is below
// Epsilon.
func (v Vec3) Magnitude() float32 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return 0
	}
	return math32.Sqrt(sqrmag)
}

// Normalize scales v to unit length in place; near-zero vectors become zero.
func (v *Vec3) Normalize() *Vec3 {
	*v = v.Normalized()
	return v
}

func (v Vec3) Normalized() Vec3 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return Vec3{}
	}
	return v.Scale(RSqrt(sqrmag))
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

func (v Vec3) Mul(u Vec3) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

func (v Vec3) Div(u Vec3) Vec3 {
	return Vec3{v.X / u.X, v.Y / u.Y, v.Z / u.Z}
}

// AddXY adds u to the X and Y components; Z is returned unchanged.
func (v Vec3) AddXY(u Vec2) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z}
}

func (v Vec3) SubXY(u Vec2) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z}
}

func (v Vec3) MulXY(u Vec2) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z}
}

func (v Vec3) DivXY(u Vec2) Vec3 {
	return Vec3{v.X / u.X, v.Y / u.Y, v.Z}
}

func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

func (v Vec3) Scale(t float32) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// ScalarSub returns s - v per component.
func (v Vec3) ScalarSub(s float32) Vec3 {
	return Vec3{s - v.X, s - v.Y, s - v.Z}
}

// ScalarDiv returns s / v per component.
func (v Vec3) ScalarDiv(s float32) Vec3 {
	return Vec3{s / v.X, s / v.Y, s / v.Z}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v *Vec3) Inc() *Vec3 {
	v.X++
	v.Y++
	v.Z++
	return v
}

func (v *Vec3) Dec() *Vec3 {
	v.X--
	v.Y--
	v.Z--
	return v
}

// XY drops Z.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// SetXY assigns X and Y from u and keeps Z.
func (v *Vec3) SetXY(u Vec2) {
	v.X, v.Y = u.X, u.Y
}

func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3) Lerp(u Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t), Lerp(v.Z, u.Z, t)}
}

// RotateAroundAxis rotates v by angle radians around axis using Rodrigues'
// formula. The axis does not need to be normalized.
func (v Vec3) RotateAroundAxis(axis Vec3, angle float32) Vec3 {
	axis = axis.Normalized()
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

func (v Vec3) At(i int) float32 {
	return v.array()[i]
}

func (v *Vec3) Set(i int, f float32) {
	a := v.array()
	a[i] = f
	*v = Vec3{a[0], a[1], a[2]}
}

func (v Vec3) array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Equal reports whether v and u have bit-identical components.
func (v Vec3) Equal(u Vec3) bool {
	return bitsEqual(v.X, u.X) && bitsEqual(v.Y, u.Y) && bitsEqual(v.Z, u.Z)
}

func (v Vec3) ApproxEqual(u Vec3, eps float32) bool {
	return approx(v.X, u.X, eps) && approx(v.Y, u.Y, eps) && approx(v.Z, u.Z, eps)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
