package pxlmath

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 transform matrix. Elements are stored in the order
//
//	m[0]  m[1]  m[2]  m[3]     M00 M01 M02 M03
//	m[4]  m[5]  m[6]  m[7]  =  M10 M11 M12 M13
//	m[8]  m[9]  m[10] m[11]    M20 M21 M22 M23
//	m[12] m[13] m[14] m[15]    M30 M31 M32 M33
//
// where Mij is row i, column j of the transform applied to column vectors:
// TRS keeps the translation in m[3], m[7] and m[11]. This is the layout of
// f32.Mat4.
//
// At and Set address the same storage column-major (col*4 + row), the way a
// graphics API reads the array without transposition.
type Mat4 [16]float32

func Mat4Zero() Mat4 { return Mat4{} }

// Mat4Fill returns a matrix with every element set to s.
func Mat4Fill(s float32) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = s
	}
	return m
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns m[col*4+row].
func (m Mat4) At(row, col int) float32 {
	return m[col<<2+row]
}

// Set assigns m[col*4+row].
func (m *Mat4) Set(row, col int, v float32) {
	m[col<<2+row] = v
}

// minors holds the 2x2 minors of the lower rows that both Det and Inverse
// expand along. Field mABCD is the minor of rows C,D and columns A,B.
type minors struct {
	m2323, m1323, m1223, m0323, m0223, m0123 float32
	m2313, m1313, m1213, m2312, m1312, m1212 float32
	m0313, m0213, m0312, m0212, m0113, m0112 float32
}

func (m *Mat4) minors() minors {
	return minors{
		m2323: m[10]*m[15] - m[11]*m[14],
		m1323: m[9]*m[15] - m[11]*m[13],
		m1223: m[9]*m[14] - m[10]*m[13],
		m0323: m[8]*m[15] - m[11]*m[12],
		m0223: m[8]*m[14] - m[10]*m[12],
		m0123: m[8]*m[13] - m[9]*m[12],
		m2313: m[6]*m[15] - m[7]*m[14],
		m1313: m[5]*m[15] - m[7]*m[13],
		m1213: m[5]*m[14] - m[6]*m[13],
		m2312: m[6]*m[11] - m[7]*m[10],
		m1312: m[5]*m[11] - m[7]*m[9],
		m1212: m[5]*m[10] - m[6]*m[9],
		m0313: m[4]*m[15] - m[7]*m[12],
		m0213: m[4]*m[14] - m[6]*m[12],
		m0312: m[4]*m[11] - m[7]*m[8],
		m0212: m[4]*m[10] - m[6]*m[8],
		m0113: m[4]*m[13] - m[5]*m[12],
		m0112: m[4]*m[9] - m[5]*m[8],
	}
}

func (m *Mat4) det(n *minors) float32 {
	return m[0]*(m[5]*n.m2323-m[6]*n.m1323+m[7]*n.m1223) -
		m[1]*(m[4]*n.m2323-m[6]*n.m0323+m[7]*n.m0223) +
		m[2]*(m[4]*n.m1323-m[5]*n.m0323+m[7]*n.m0123) -
		m[3]*(m[4]*n.m1223-m[5]*n.m0223+m[6]*n.m0123)
}

// Det returns the determinant of m.
func (m Mat4) Det() float32 {
	n := m.minors()
	return m.det(&n)
}

// Inverse writes the inverse of m into out and returns the determinant. When
// the determinant is exactly 0, out is left untouched; near-singular
// matrices are still inverted. The returned determinant is bit-identical to
// Det.
func (m Mat4) Inverse(out *Mat4) float32 {
	n := m.minors()
	det := m.det(&n)
	if det == 0 {
		return det
	}
	r := 1 / det
	*out = Mat4{
		r * (m[5]*n.m2323 - m[6]*n.m1323 + m[7]*n.m1223),
		r * -(m[1]*n.m2323 - m[2]*n.m1323 + m[3]*n.m1223),
		r * (m[1]*n.m2313 - m[2]*n.m1313 + m[3]*n.m1213),
		r * -(m[1]*n.m2312 - m[2]*n.m1312 + m[3]*n.m1212),

		r * -(m[4]*n.m2323 - m[6]*n.m0323 + m[7]*n.m0223),
		r * (m[0]*n.m2323 - m[2]*n.m0323 + m[3]*n.m0223),
		r * -(m[0]*n.m2313 - m[2]*n.m0313 + m[3]*n.m0213),
		r * (m[0]*n.m2312 - m[2]*n.m0312 + m[3]*n.m0212),

		r * (m[4]*n.m1323 - m[5]*n.m0323 + m[7]*n.m0123),
		r * -(m[0]*n.m1323 - m[1]*n.m0323 + m[3]*n.m0123),
		r * (m[0]*n.m1313 - m[1]*n.m0313 + m[3]*n.m0113),
		r * -(m[0]*n.m1312 - m[1]*n.m0312 + m[3]*n.m0112),

		r * -(m[4]*n.m1223 - m[5]*n.m0223 + m[6]*n.m0123),
		r * (m[0]*n.m1223 - m[1]*n.m0223 + m[2]*n.m0123),
		r * -(m[0]*n.m1213 - m[1]*n.m0213 + m[2]*n.m0113),
		r * (m[0]*n.m1212 - m[1]*n.m0212 + m[2]*n.m0112),
	}
	return det
}

// Inverted returns the inverse of m and whether it exists.
func (m Mat4) Inverted() (Mat4, bool) {
	var out Mat4
	if m.Inverse(&out) == 0 {
		Logger().Debug("pxlmath: singular matrix", "matrix", m)
		return Mat4{}, false
	}
	return out, true
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[i*4]*o[j] + m[i*4+1]*o[4+j] + m[i*4+2]*o[8+j] + m[i*4+3]*o[12+j]
		}
	}
	return r
}

// MulAssign sets m to m * o.
func (m *Mat4) MulAssign(o Mat4) *Mat4 {
	*m = m.Mul(o)
	return m
}

// Scale returns m with every element multiplied by s.
func (m Mat4) Scale(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

func (m *Mat4) ScaleAssign(s float32) *Mat4 {
	*m = m.Scale(s)
	return m
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MulVec4 returns m * v with v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to p with w=1 and performs the perspective divide
// when the resulting w is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if r.W != 0 && r.W != 1 {
		return r.XYZ().DivScalar(r.W)
	}
	return r.XYZ()
}

// Equal reports whether m and o are bit-identical.
func (m Mat4) Equal(o Mat4) bool {
	for i := range m {
		if !bitsEqual(m[i], o[i]) {
			return false
		}
	}
	return true
}

func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for i := range m {
		if !approx(m[i], o[i], eps) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%12.6g %12.6g %12.6g %12.6g]", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return b.String()
}
