package pxlmath

import (
	"testing"
)

// sameRotation reports whether q and o describe the same rotation, allowing
// for the q / -q ambiguity.
func sameRotation(q, o Quat, eps float32) bool {
	return q.ApproxEqual(o, eps) || q.ApproxEqual(Quat{-o.X, -o.Y, -o.Z, -o.W}, eps)
}

var sampleQuats = []Quat{
	QuatIdentity(),
	QuatFromEuler(Vec3{0.3, -0.7, 0.5}),
	QuatFromEuler(Vec3{-2.5, 1.2, 0.1}),
	QuatAxisAngle(Vec3{1, 1, 0}, 2),
	{1, 2, 3, 4},
	{0, 0, 0, 0},
}

func TestQuat_IdentityMul(t *testing.T) {
	id := QuatIdentity()
	for _, q := range sampleQuats {
		if got := id.Mul(q); !got.ApproxEqual(q, 1e-6) {
			t.Errorf("identity * %v = %v", q, got)
		}
		if got := q.Mul(id); !got.ApproxEqual(q, 1e-6) {
			t.Errorf("%v * identity = %v", q, got)
		}
	}
}

func TestQuat_Mul(t *testing.T) {
	x := QuatAxisAngle(Vec3Right(), HalfPi)
	y := QuatAxisAngle(Vec3Up(), HalfPi)

	// y * x rotates by x first: forward -> down -> down.
	v := y.Mul(x).Rotate(Vec3Forward())
	if !v.ApproxEqual(Vec3Down(), 1e-5) {
		t.Errorf("(y*x).Rotate(forward) = %v, want down", v)
	}
	// x * y rotates by y first: forward -> right -> right.
	v = x.Mul(y).Rotate(Vec3Forward())
	if !v.ApproxEqual(Vec3Right(), 1e-5) {
		t.Errorf("(x*y).Rotate(forward) = %v, want right", v)
	}

	q := y
	q.MulAssign(x)
	if !q.Equal(y.Mul(x)) {
		t.Errorf("MulAssign = %v, want %v", q, y.Mul(x))
	}
}

func TestQuat_FromEulerComposition(t *testing.T) {
	r := Vec3{0.3, -0.7, 0.5}
	want := QuatAxisAngle(Vec3Up(), r.Y).
		Mul(QuatAxisAngle(Vec3Forward(), r.Z)).
		Mul(QuatAxisAngle(Vec3Right(), r.X))
	if got := QuatFromEuler(r); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("QuatFromEuler(%v) = %v, want %v", r, got, want)
	}
}

func TestQuat_EulerRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		r    Vec3
	}{
		{"zero", Vec3{}},
		{"x only", Vec3{1, 0, 0}},
		{"y only", Vec3{0, -2, 0}},
		{"z only", Vec3{0, 0, 0.7}},
		{"mixed", Vec3{0.3, -0.7, 0.5}},
		{"large", Vec3{-2.5, 2.9, -1.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromEuler(tt.r)
			e := q.Euler()
			if !e.ApproxEqual(tt.r, 1e-4) {
				t.Errorf("Euler() = %v, want %v", e, tt.r)
			}
			if back := QuatFromEuler(e); !sameRotation(back, q, 1e-5) {
				t.Errorf("QuatFromEuler(Euler()) = %v, want %v", back, q)
			}
		})
	}
}

func TestQuat_EulerGimbalLock(t *testing.T) {
	tests := []struct {
		name string
		r    Vec3
		want Vec3
	}{
		{"north pole", Vec3{0.4, 0.9, HalfPi}, Vec3{0, 1.3, HalfPi}},
		{"south pole", Vec3{0.4, 0.9, -HalfPi}, Vec3{0, 0.5, -HalfPi}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromEuler(tt.r)
			e := q.Euler()
			if !e.ApproxEqual(tt.want, 1e-4) {
				t.Errorf("Euler() = %v, want %v", e, tt.want)
			}
			if e.X != 0 {
				t.Errorf("X angle = %v, want exactly 0", e.X)
			}
			if back := QuatFromEuler(e); !sameRotation(back, q, 1e-4) {
				t.Errorf("QuatFromEuler(Euler()) = %v, want %v", back, q)
			}
		})
	}
}

func TestQuat_SetEuler(t *testing.T) {
	var q Quat
	q.SetEuler(Vec3{0, HalfPi, 0})
	if !q.ApproxEqual(QuatAxisAngle(Vec3Up(), HalfPi), 1e-6) {
		t.Errorf("SetEuler = %v", q)
	}
}

func TestQuat_Conjugate(t *testing.T) {
	q := Quat{1, -2, 3, 4}
	if got := q.Conjugated(); !got.Equal(Quat{-1, 2, -3, 4}) {
		t.Errorf("Conjugated() = %v", got)
	}
	q.Conjugate()
	if !q.Equal(Quat{-1, 2, -3, 4}) {
		t.Errorf("Conjugate() = %v", q)
	}

	u := QuatFromEuler(Vec3{0.2, 0.4, 0.6})
	if got := u.Mul(u.Conjugated()); !got.ApproxEqual(QuatIdentity(), 1e-6) {
		t.Errorf("q * conj(q) = %v, want identity", got)
	}
}

func TestQuat_Normalize(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	if m := q.Normalized().Magnitude(); !approx(m, 1, 1e-3) {
		t.Errorf("Normalized().Magnitude() = %v", m)
	}
	if !approx(q.Magnitude(), 5.477226, 1e-5) {
		t.Errorf("Magnitude() = %v", q.Magnitude())
	}

	tiny := Quat{1e-4, 0, 0, 1e-4}
	if tiny.Magnitude() != 0 {
		t.Errorf("tiny Magnitude() = %v, want 0", tiny.Magnitude())
	}
	tiny.Normalize()
	if !tiny.Equal(QuatZero()) {
		t.Errorf("tiny Normalize() = %v, want zero", tiny)
	}
}

func TestQuat_Rotate(t *testing.T) {
	q := QuatFromEuler(Vec3{0.3, -0.7, 0.5})
	m := TRS(Vec3{}, q, Vec3{1, 1, 1})
	for _, v := range []Vec3{Vec3Right(), Vec3Up(), Vec3Forward(), {1, -2, 3}} {
		want := m.TransformPoint(v)
		if got := q.Rotate(v); !got.ApproxEqual(want, 1e-5) {
			t.Errorf("Rotate(%v) = %v, matrix gives %v", v, got, want)
		}
	}
}

func TestQuat_Index(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	if q.At(3) != 4 || q.At(0) != 1 {
		t.Errorf("At = %v %v", q.At(0), q.At(3))
	}
	q.Set(3, 9)
	if q.W != 9 {
		t.Errorf("Set(3) = %v", q)
	}
	if d := (Quat{1, 2, 3, 4}).Dot(Quat{1, 1, 1, 1}); d != 10 {
		t.Errorf("Dot = %v", d)
	}
}
