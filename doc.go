// Package pxlmath provides float32 vectors, quaternions and 4x4 matrices for
// real-time graphics code.
//
// All types are plain values. Methods with value receivers return new
// values; the few pointer-receiver methods (Normalize, Conjugate, Inc, Dec,
// MulAssign and the Set* builders) modify the receiver and return it for
// chaining:
//
//	q := pxlmath.QuatFromEuler(pxlmath.Vec3{Y: 90 * pxlmath.Deg2Rad})
//	model := pxlmath.TRS(pxlmath.Vec3{X: 2}, q, pxlmath.Vec3{X: 1, Y: 1, Z: 1})
//	proj := pxlmath.PerspectiveFov(60*pxlmath.Deg2Rad, 16.0/9, 0.1, 100)
//	mvp := proj.Mul(model)
//
// Nothing returns an error. Zero-length vectors normalize to zero and
// Inverse reports a zero determinant instead of writing its output.
//
// Equality helpers compare bit patterns (Equal) or use a tolerance
// (ApproxEqual); results of arithmetic should be compared with the latter.
package pxlmath
