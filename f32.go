package pxlmath

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32. Mat4 shares the
// f32.Mat4 row-major layout, so no element is reordered.

func (v Vec2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }
func (m Mat4) F32() f32.Mat4 { return f32.Mat4(m) }

func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{v[0], v[1]} }
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4{v[0], v[1], v[2], v[3]} }
func Mat4FromF32(m f32.Mat4) Mat4 { return Mat4(m) }

// Mat4FromMat3 embeds a 3x3 linear transform in the upper-left block of an
// otherwise identity matrix.
func Mat4FromMat3(m f32.Mat3) Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}
