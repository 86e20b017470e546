package pxlmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a 4D vector, typically a homogeneous point or an RGBA value.
type Vec4 struct {
	X, Y, Z, W float32
}

func Vec4Zero() Vec4     { return Vec4{} }
func Vec4Infinity() Vec4 { return Vec4{Inf(), Inf(), Inf(), Inf()} }

// Vec4Splat returns a vector with every component set to s.
func Vec4Splat(s float32) Vec4 { return Vec4{s, s, s, s} }

func (v Vec4) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Magnitude() float32 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return 0
	}
	return math32.Sqrt(sqrmag)
}

func (v *Vec4) Normalize() *Vec4 {
	*v = v.Normalized()
	return v
}

func (v Vec4) Normalized() Vec4 {
	sqrmag := v.SqrMagnitude()
	if sqrmag < Epsilon {
		return Vec4{}
	}
	return v.Scale(RSqrt(sqrmag))
}

func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W}
}

func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W}
}

func (v Vec4) Mul(u Vec4) Vec4 {
	return Vec4{v.X * u.X, v.Y * u.Y, v.Z * u.Z, v.W * u.W}
}

func (v Vec4) Div(u Vec4) Vec4 {
	return Vec4{v.X / u.X, v.Y / u.Y, v.Z / u.Z, v.W / u.W}
}

// The XY and XYZ variants combine only the leading components and return the
// rest of v unchanged.

func (v Vec4) AddXY(u Vec2) Vec4 { return Vec4{v.X + u.X, v.Y + u.Y, v.Z, v.W} }
func (v Vec4) SubXY(u Vec2) Vec4 { return Vec4{v.X - u.X, v.Y - u.Y, v.Z, v.W} }
func (v Vec4) MulXY(u Vec2) Vec4 { return Vec4{v.X * u.X, v.Y * u.Y, v.Z, v.W} }
func (v Vec4) DivXY(u Vec2) Vec4 { return Vec4{v.X / u.X, v.Y / u.Y, v.Z, v.W} }

func (v Vec4) AddXYZ(u Vec3) Vec4 { return Vec4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W} }
func (v Vec4) SubXYZ(u Vec3) Vec4 { return Vec4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W} }
func (v Vec4) MulXYZ(u Vec3) Vec4 { return Vec4{v.X * u.X, v.Y * u.Y, v.Z * u.Z, v.W} }
func (v Vec4) DivXYZ(u Vec3) Vec4 { return Vec4{v.X / u.X, v.Y / u.Y, v.Z / u.Z, v.W} }

func (v Vec4) AddScalar(s float32) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

func (v Vec4) SubScalar(s float32) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

func (v Vec4) Scale(t float32) Vec4 {
	return Vec4{v.X * t, v.Y * t, v.Z * t, v.W * t}
}

func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vec4) ScalarSub(s float32) Vec4 {
	return Vec4{s - v.X, s - v.Y, s - v.Z, s - v.W}
}

func (v Vec4) ScalarDiv(s float32) Vec4 {
	return Vec4{s / v.X, s / v.Y, s / v.Z, s / v.W}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v *Vec4) Inc() *Vec4 {
	v.X++
	v.Y++
	v.Z++
	v.W++
	return v
}

func (v *Vec4) Dec() *Vec4 {
	v.X--
	v.Y--
	v.Z--
	v.W--
	return v
}

func (v Vec4) XY() Vec2  { return Vec2{v.X, v.Y} }
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// SetXY assigns X and Y from u; Z and W are kept.
func (v *Vec4) SetXY(u Vec2) {
	v.X, v.Y = u.X, u.Y
}

// SetXYZ assigns X, Y and Z from u; W is kept.
func (v *Vec4) SetXYZ(u Vec3) {
	v.X, v.Y, v.Z = u.X, u.Y, u.Z
}

func (v Vec4) Dot(u Vec4) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

func (v Vec4) Lerp(u Vec4, t float32) Vec4 {
	return Vec4{Lerp(v.X, u.X, t), Lerp(v.Y, u.Y, t), Lerp(v.Z, u.Z, t), Lerp(v.W, u.W, t)}
}

func (v Vec4) At(i int) float32 {
	return v.array()[i]
}

func (v *Vec4) Set(i int, f float32) {
	a := v.array()
	a[i] = f
	*v = Vec4{a[0], a[1], a[2], a[3]}
}

func (v Vec4) array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) Equal(u Vec4) bool {
	return bitsEqual(v.X, u.X) && bitsEqual(v.Y, u.Y) && bitsEqual(v.Z, u.Z) && bitsEqual(v.W, u.W)
}

func (v Vec4) ApproxEqual(u Vec4, eps float32) bool {
	return approx(v.X, u.X, eps) && approx(v.Y, u.Y, eps) && approx(v.Z, u.Z, eps) && approx(v.W, u.W, eps)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
