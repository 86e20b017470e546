package camera

import "pxlmath"

// DefaultSensitivity converts cursor pixels to radians.
const DefaultSensitivity = 0.003

// Cursor turns absolute cursor positions into per-frame look deltas. The
// first sample only records the origin. Angles accumulate against that
// origin so that no motion is lost between frames.
type Cursor struct {
	Sensitivity float64

	started      bool
	startX       float64
	startY       float64
	yaw, pitch   float64
	yawD, pitchD float64
}

// NewCursor returns a cursor tracker using DefaultSensitivity.
func NewCursor() *Cursor {
	return &Cursor{Sensitivity: DefaultSensitivity}
}

// Update records a cursor position.
func (c *Cursor) Update(x, y float64) {
	if !c.started {
		c.started = true
		c.startX, c.startY = x, y
		c.yaw, c.pitch, c.yawD, c.pitchD = 0, float64(pxlmath.HalfPi), 0, 0
		return
	}
	pitchDelta := (y-c.startY)*c.Sensitivity + float64(pxlmath.HalfPi) - c.pitch
	yawDelta := (x-c.startX)*c.Sensitivity - c.yaw
	c.yaw += yawDelta
	c.pitch += pitchDelta
	c.yawD += yawDelta
	c.pitchD += pitchDelta
}

// Deltas returns the yaw and pitch accumulated since the last call and
// resets them.
func (c *Cursor) Deltas() (yaw, pitch float32) {
	yaw, pitch = float32(c.yawD), float32(c.pitchD)
	c.yawD, c.pitchD = 0, 0
	return yaw, pitch
}
