package pxlmath

import "github.com/chewxy/math32"

// Translation returns the translation column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// Rotation extracts the rotation of m as a quaternion. It branches on the
// largest diagonal term to keep the divisor away from zero. m must not carry
// scale.
func (m Mat4) Rotation() Quat {
	if e := m[0] + m[5] + m[10]; e > 0 {
		a := RSqrt(e+1) * 0.5
		return Quat{
			(m[9] - m[6]) * a,
			(m[2] - m[8]) * a,
			(m[4] - m[1]) * a,
			0.25 / a,
		}
	}
	if m[0] > m[5] && m[0] > m[10] {
		a := RSqrt(1+m[0]-m[5]-m[10]) * 0.5
		return Quat{
			0.25 / a,
			(m[1] + m[4]) * a,
			(m[2] + m[8]) * a,
			(m[9] - m[6]) * a,
		}
	}
	if m[5] > m[10] {
		a := RSqrt(1+m[5]-m[0]-m[10]) * 0.5
		return Quat{
			(m[1] + m[4]) * a,
			0.25 / a,
			(m[6] + m[9]) * a,
			(m[2] - m[8]) * a,
		}
	}
	a := RSqrt(1+m[10]-m[0]-m[5]) * 0.5
	return Quat{
		(m[2] + m[8]) * a,
		(m[6] + m[9]) * a,
		0.25 / a,
		(m[4] - m[1]) * a,
	}
}

// SqrScale returns the squared lengths of the first three columns of m.
// Take the square root of each component for the actual scale factors.
func (m Mat4) SqrScale() Vec3 {
	return Vec3{
		m[0]*m[0] + m[4]*m[4] + m[8]*m[8],
		m[1]*m[1] + m[5]*m[5] + m[9]*m[9],
		m[2]*m[2] + m[6]*m[6] + m[10]*m[10],
	}
}

type rotationTerms struct {
	xx, yy, zz, xy, xz, yz, wx, wy, wz float32
}

func newRotationTerms(r Quat) rotationTerms {
	return rotationTerms{
		xx: r.X * r.X, yy: r.Y * r.Y, zz: r.Z * r.Z,
		xy: r.X * r.Y, xz: r.X * r.Z, yz: r.Y * r.Z,
		wx: r.W * r.X, wy: r.W * r.Y, wz: r.W * r.Z,
	}
}

// setRotationScale writes the upper 3x3 block (rotation columns scaled by s)
// and the bottom row. The translation column is left to the caller.
func (m *Mat4) setRotationScale(r Quat, s Vec3) {
	q := newRotationTerms(r)
	m[0], m[1], m[2] = (1-2*(q.yy+q.zz))*s.X, (2*(q.xy-q.wz))*s.Y, (2*(q.xz+q.wy))*s.Z
	m[4], m[5], m[6] = (2*(q.xy+q.wz))*s.X, (1-2*(q.xx+q.zz))*s.Y, (2*(q.yz-q.wx))*s.Z
	m[8], m[9], m[10] = (2*(q.xz-q.wy))*s.X, (2*(q.yz+q.wx))*s.Y, (1-2*(q.xx+q.yy))*s.Z
	m[12], m[13], m[14], m[15] = 0, 0, 0, 1
}

// TRS returns the transform that scales by s, rotates by r, then translates
// by t.
func TRS(t Vec3, r Quat, s Vec3) Mat4 {
	var m Mat4
	m.SetTRS(t, r, s)
	return m
}

// SetTRS overwrites m with TRS(t, r, s).
func (m *Mat4) SetTRS(t Vec3, r Quat, s Vec3) *Mat4 {
	m.setRotationScale(r, s)
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

// View returns a camera matrix laid out like TRS except that the X and Y
// translation are negated while Z is kept: the camera looks down +Z and the
// X and Y offsets are mirrored into camera space.
func View(t Vec3, r Quat, s Vec3) Mat4 {
	var m Mat4
	m.SetView(t, r, s)
	return m
}

// SetView overwrites m with View(t, r, s).
func (m *Mat4) SetView(t Vec3, r Quat, s Vec3) *Mat4 {
	m.setRotationScale(r, s)
	m[3], m[7], m[11] = -t.X, -t.Y, t.Z
	return m
}

// Orthographic returns an off-axis orthographic projection. size scales the
// X, Y and Z terms; pass 1 for a plain projection.
func Orthographic(near, far, left, right, top, bottom, size float32) Mat4 {
	var m Mat4
	m.SetOrthographic(near, far, left, right, top, bottom, size)
	return m
}

// SetOrthographic overwrites m with Orthographic(near, far, left, right, top,
// bottom, size).
func (m *Mat4) SetOrthographic(near, far, left, right, top, bottom, size float32) *Mat4 {
	n, f, l, r, t, b := near, far, left, right, top, bottom
	*m = Mat4{
		2 / (r - l) * size, 0, 0, -((r + l) / (r - l)),
		0, 2 / (t - b) * size, 0, -((t + b) / (t - b)),
		0, 0, -2 / (f - n) * size, -((f + n) / (f - n)),
		0, 0, 0, 1,
	}
	return m
}

// Perspective returns an off-axis perspective projection mapping depth to
// the [-1, 1] clip range.
func Perspective(near, far, left, right, top, bottom float32) Mat4 {
	var m Mat4
	m.SetPerspective(near, far, left, right, top, bottom)
	return m
}

// SetPerspective overwrites m with Perspective(near, far, left, right, top,
// bottom).
func (m *Mat4) SetPerspective(near, far, left, right, top, bottom float32) *Mat4 {
	n, f, l, r, t, b := near, far, left, right, top, bottom
	*m = Mat4{
		(2 * n) / (r - l), 0, (r + l) / (r - l), 0,
		0, (2 * n) / (t - b), (t + b) / (t - b), 0,
		0, 0, (f + n) / (n - f), (2 * f * n) / (n - f),
		0, 0, -1, 0,
	}
	return m
}

// PerspectiveFov returns a symmetric perspective projection for a vertical
// field of view in radians and a width/height aspect ratio.
func PerspectiveFov(fovY, aspect, near, far float32) Mat4 {
	top := near * math32.Tan(fovY*0.5)
	right := top * aspect
	return Perspective(near, far, -right, right, top, -top)
}

// LookAt returns a view matrix for an eye at eye looking at center. The view
// looks down -Z with up mapped to +Y, the convention Perspective expects.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	return Mat4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}
