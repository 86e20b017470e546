package pxlmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion. W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

func QuatZero() Quat     { return Quat{} }
func QuatIdentity() Quat { return Quat{0, 0, 0, 1} }

// QuatAxisAngle returns the rotation of angle radians around axis.
func QuatAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normalized().Scale(math32.Sin(angle * 0.5))
	return Quat{a.X, a.Y, a.Z, math32.Cos(angle * 0.5)}
}

// QuatFromEuler builds a quaternion from per-axis angles in radians. The
// rotations are composed as rot(Y) * rot(Z) * rot(X): X is applied first.
func QuatFromEuler(r Vec3) Quat {
	hr := r.Scale(0.5)
	x0, x1 := math32.Cos(hr.X), math32.Sin(hr.X)
	y0, y1 := math32.Cos(hr.Y), math32.Sin(hr.Y)
	z0, z1 := math32.Cos(hr.Z), math32.Sin(hr.Z)
	y0z0, y0z1 := y0*z0, y0*z1
	y1z0, y1z1 := y1*z0, y1*z1
	return Quat{
		y0z0*x1 + y1z1*x0,
		y1z0*x0 + y0z1*x1,
		y0z1*x0 - y1z0*x1,
		y0z0*x0 - y1z1*x1,
	}
}

// Euler returns the per-axis angles, in radians, that QuatFromEuler turns
// back into q. Near the singularity where the Z angle reaches ±90 degrees
// the X angle is fixed to 0 and the whole remaining twist goes to Y.
// Libraries that report this case as {0, ±90°, twist} put the last two
// angles on the other axes.
func (q Quat) Euler() Vec3 {
	x2, y2, z2, w2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	u := x2 + y2 + z2 + w2
	t := q.X*q.Y + q.Z*q.W
	if t > 0.499*u {
		return Vec3{0, 2 * math32.Atan2(q.X, q.W), HalfPi}
	}
	if t < -0.499*u {
		return Vec3{0, -2 * math32.Atan2(q.X, q.W), -HalfPi}
	}
	return Vec3{
		math32.Atan2(2*q.X*q.W-2*q.Y*q.Z, -x2+y2-z2+w2),
		math32.Atan2(2*q.Y*q.W-2*q.X*q.Z, x2-y2-z2+w2),
		math32.Asin(2 * t / u),
	}
}

// SetEuler replaces q with QuatFromEuler(r).
func (q *Quat) SetEuler(r Vec3) *Quat {
	*q = QuatFromEuler(r)
	return q
}

func (q Quat) SqrMagnitude() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

func (q Quat) Magnitude() float32 {
	sqrmag := q.SqrMagnitude()
	if sqrmag < Epsilon {
		return 0
	}
	return math32.Sqrt(sqrmag)
}

// Normalize scales q to unit length in place; near-zero quaternions become
// QuatZero.
func (q *Quat) Normalize() *Quat {
	*q = q.Normalized()
	return q
}

func (q Quat) Normalized() Quat {
	sqrmag := q.SqrMagnitude()
	if sqrmag < Epsilon {
		return Quat{}
	}
	r := RSqrt(sqrmag)
	return Quat{q.X * r, q.Y * r, q.Z * r, q.W * r}
}

// Conjugate negates the vector part in place.
func (q *Quat) Conjugate() *Quat {
	q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z
	return q
}

func (q Quat) Conjugated() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns the Hamilton product q * o. Rotating by the result applies o
// first and q second.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.X*o.W + q.Y*o.Z - q.Z*o.Y + q.W*o.X,
		-q.X*o.Z + q.Y*o.W + q.Z*o.X + q.W*o.Y,
		q.X*o.Y - q.Y*o.X + q.Z*o.W + q.W*o.Z,
		-q.X*o.X - q.Y*o.Y - q.Z*o.Z + q.W*o.W,
	}
}

// MulAssign sets q to q * o.
func (q *Quat) MulAssign(o Quat) *Quat {
	*q = q.Mul(o)
	return q
}

func (q Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Rotate applies the rotation q to v. q is assumed to be a unit quaternion.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

func (q Quat) At(i int) float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}[i]
}

func (q *Quat) Set(i int, f float32) {
	a := [4]float32{q.X, q.Y, q.Z, q.W}
	a[i] = f
	*q = Quat{a[0], a[1], a[2], a[3]}
}

// Equal reports whether q and o have bit-identical components. q and -q
// describe the same rotation but are not Equal.
func (q Quat) Equal(o Quat) bool {
	return bitsEqual(q.X, o.X) && bitsEqual(q.Y, o.Y) && bitsEqual(q.Z, o.Z) && bitsEqual(q.W, o.W)
}

func (q Quat) ApproxEqual(o Quat, eps float32) bool {
	return approx(q.X, o.X, eps) && approx(q.Y, o.Y, eps) && approx(q.Z, o.Z, eps) && approx(q.W, o.W, eps)
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
