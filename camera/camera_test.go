package camera

import (
	"math"
	"testing"

	"pxlmath"
)

const eps = 1e-5

func TestNew(t *testing.T) {
	c := New(pxlmath.Vec3{X: 1, Y: 2, Z: 3})
	if !c.Position().Equal(pxlmath.Vec3{X: 1, Y: 2, Z: 3}) || !c.FixedPosition().Equal(c.Position()) {
		t.Errorf("positions = %v, %v", c.Position(), c.FixedPosition())
	}
	if !c.Direction().Equal(pxlmath.Vec3Forward()) || !c.Right().Equal(pxlmath.Vec3Right()) || !c.Up().Equal(pxlmath.Vec3Up()) {
		t.Errorf("basis = %v %v %v", c.Direction(), c.Right(), c.Up())
	}
	if c.Pitch() != pxlmath.HalfPi {
		t.Errorf("Pitch() = %v, want HalfPi", c.Pitch())
	}
	if !c.Orientation().ApproxEqual(pxlmath.QuatIdentity(), eps) {
		t.Errorf("Orientation() = %v, want identity", c.Orientation())
	}
}

func TestLook(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		direction  pxlmath.Vec3
		right      pxlmath.Vec3
	}{
		{"none", 0, 0, pxlmath.Vec3Forward(), pxlmath.Vec3Right()},
		{"yaw quarter turn", pxlmath.HalfPi, 0, pxlmath.Vec3Right(), pxlmath.Vec3Back()},
		{"pitch down", 0, 0.5, pxlmath.Vec3{Y: -float32(math.Sin(0.5)), Z: float32(math.Cos(0.5))}, pxlmath.Vec3Right()},
		{"pitch up", 0, -0.5, pxlmath.Vec3{Y: float32(math.Sin(0.5)), Z: float32(math.Cos(0.5))}, pxlmath.Vec3Right()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(pxlmath.Vec3{})
			c.Look(tt.yaw, tt.pitch)
			if !c.Direction().ApproxEqual(tt.direction, eps) {
				t.Errorf("Direction() = %v, want %v", c.Direction(), tt.direction)
			}
			if !c.Right().ApproxEqual(tt.right, eps) {
				t.Errorf("Right() = %v, want %v", c.Right(), tt.right)
			}
		})
	}
}

func TestLook_ClampsPitch(t *testing.T) {
	c := New(pxlmath.Vec3{})
	c.Look(0, 10)
	if c.Pitch() != maxPitch {
		t.Errorf("Pitch() = %v, want %v", c.Pitch(), maxPitch)
	}
	if d := c.Direction(); d.Y > -0.999 || d.Z <= 0 {
		t.Errorf("Direction() = %v, want almost straight down", d)
	}
	if !c.Right().ApproxEqual(pxlmath.Vec3Right(), eps) {
		t.Errorf("Right() = %v after clamping", c.Right())
	}

	c.Look(0, -20)
	if c.Pitch() != minPitch {
		t.Errorf("Pitch() = %v, want %v", c.Pitch(), minPitch)
	}
	if d := c.Direction(); d.Y < 0.999 {
		t.Errorf("Direction() = %v, want almost straight up", d)
	}
}

func TestMove(t *testing.T) {
	step := DefaultSpeed
	tests := []struct {
		name  string
		m     Movement
		delta pxlmath.Vec3
	}{
		{"forward", Forward, pxlmath.Vec3{Z: step * ForwardBoost}},
		{"back", Back, pxlmath.Vec3{Z: -step}},
		{"left", Left, pxlmath.Vec3{X: -step}},
		{"right", Right, pxlmath.Vec3{X: step}},
		{"up", Up, pxlmath.Vec3{Y: step}},
		{"down", Down, pxlmath.Vec3{Y: -step}},
		{"slow forward", Forward | Slow, pxlmath.Vec3{Z: step * ForwardBoost * SlowScale}},
		{"diagonal", Right | Up, pxlmath.Vec3{X: step, Y: step}},
		{"opposites cancel", Left | Right, pxlmath.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(pxlmath.Vec3{})
			c.Move(tt.m)
			if !c.Position().ApproxEqual(tt.delta, eps) {
				t.Errorf("Position() = %v, want %v", c.Position(), tt.delta)
			}
			if !c.FixedPosition().ApproxEqual(tt.delta, eps) {
				t.Errorf("FixedPosition() = %v, want %v", c.FixedPosition(), tt.delta)
			}
		})
	}
}

func TestMove_FreeVersusFixed(t *testing.T) {
	c := New(pxlmath.Vec3{})
	c.Look(pxlmath.HalfPi, 0)
	c.Move(Forward)

	step := DefaultSpeed * ForwardBoost
	if !c.Position().ApproxEqual(pxlmath.Vec3{X: step}, eps) {
		t.Errorf("Position() = %v, want movement along the view direction", c.Position())
	}
	if !c.FixedPosition().ApproxEqual(pxlmath.Vec3{Z: step}, eps) {
		t.Errorf("FixedPosition() = %v, want movement along world +Z", c.FixedPosition())
	}
}

func TestOrientation(t *testing.T) {
	c := New(pxlmath.Vec3{X: 4})
	c.Look(0.7, -0.3)
	c.Look(-0.2, 0.9)

	q := c.Orientation()
	if got := q.Rotate(pxlmath.Vec3Forward()); !got.ApproxEqual(c.Direction(), 1e-4) {
		t.Errorf("Orientation maps forward to %v, want %v", got, c.Direction())
	}
	if got := q.Rotate(pxlmath.Vec3Right()); !got.ApproxEqual(c.Right(), 1e-4) {
		t.Errorf("Orientation maps right to %v, want %v", got, c.Right())
	}

	ahead := c.Transform().TransformPoint(pxlmath.Vec3Forward())
	if want := c.Position().Add(c.Direction()); !ahead.ApproxEqual(want, 1e-4) {
		t.Errorf("Transform() maps forward to %v, want %v", ahead, want)
	}
}

func TestViewMatrix(t *testing.T) {
	c := New(pxlmath.Vec3{X: 1, Y: 2, Z: 3})
	c.Look(0.4, 0.2)
	v := c.ViewMatrix()

	if p := v.TransformPoint(c.Position()); !p.ApproxEqual(pxlmath.Vec3{}, 1e-5) {
		t.Errorf("eye in view space = %v, want origin", p)
	}
	ahead := c.Position().Add(c.Direction().Scale(2))
	if p := v.TransformPoint(ahead); !p.ApproxEqual(pxlmath.Vec3{Z: -2}, 1e-5) {
		t.Errorf("point ahead in view space = %v, want (0, 0, -2)", p)
	}
}
