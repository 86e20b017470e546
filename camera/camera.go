// Package camera implements a first-person fly camera on top of pxlmath.
//
// The camera is input agnostic: callers translate their own mouse and key
// state into Look and Move calls, once per frame.
package camera

import (
	"pxlmath"
)

const (
	minPitch = 0.001
	maxPitch = pxlmath.Pi - 0.001

	// DefaultSpeed is the distance moved per Move call at scale 1.
	DefaultSpeed float32 = 0.05
	// ForwardBoost multiplies the speed when moving forward.
	ForwardBoost float32 = 1.5
	// SlowScale multiplies every movement while the Slow flag is set.
	SlowScale float32 = 0.2
)

// Movement is a set of movement directions active for one step.
type Movement uint8

const (
	Forward Movement = 1 << iota
	Back
	Left
	Right
	Up
	Down
	Slow
)

// Camera is a fly camera. The free position moves along the camera's own
// axes while the fixed position moves along the world axes by the same
// amounts, which suits shaders that want both.
type Camera struct {
	position      pxlmath.Vec3
	fixedPosition pxlmath.Vec3
	direction     pxlmath.Vec3
	right         pxlmath.Vec3
	up            pxlmath.Vec3
	pitch         float32
	Speed         float32
}

// New returns a camera at position looking down +Z with +Y up.
func New(position pxlmath.Vec3) *Camera {
	return &Camera{
		position:      position,
		fixedPosition: position,
		direction:     pxlmath.Vec3Forward(),
		right:         pxlmath.Vec3Right(),
		up:            pxlmath.Vec3Up(),
		pitch:         pxlmath.HalfPi,
		Speed:         DefaultSpeed,
	}
}

// Look turns the camera. Pitch is the angle between the view direction and
// world up and is clamped short of the poles; a positive pitchDelta looks
// down.
func (c *Camera) Look(yawDelta, pitchDelta float32) {
	pitch := pxlmath.Clamp(c.pitch+pitchDelta, minPitch, maxPitch)
	c.direction = c.direction.
		RotateAroundAxis(c.right, pitch-c.pitch).
		RotateAroundAxis(c.up, yawDelta).
		Normalized()
	c.right = c.up.Cross(c.direction).Normalized()
	c.pitch = pitch
}

// Move advances the camera by one step in every direction set in m.
func (c *Camera) Move(m Movement) {
	var movement, fixed pxlmath.Vec3
	scale := float32(1)
	if m&Slow != 0 {
		scale = SlowScale
	}
	if m&Forward != 0 {
		movement = movement.Add(c.direction.Scale(c.Speed * ForwardBoost))
		fixed = fixed.Add(pxlmath.Vec3{Z: c.Speed * ForwardBoost})
	}
	if m&Back != 0 {
		movement = movement.Add(c.direction.Scale(-c.Speed))
		fixed = fixed.Add(pxlmath.Vec3{Z: -c.Speed})
	}
	if m&Left != 0 {
		movement = movement.Add(c.right.Scale(-c.Speed))
		fixed = fixed.Add(pxlmath.Vec3{X: -c.Speed})
	}
	if m&Right != 0 {
		movement = movement.Add(c.right.Scale(c.Speed))
		fixed = fixed.Add(pxlmath.Vec3{X: c.Speed})
	}
	if m&Up != 0 {
		movement = movement.Add(c.up.Scale(c.Speed))
		fixed = fixed.Add(pxlmath.Vec3{Y: c.Speed})
	}
	if m&Down != 0 {
		movement = movement.Add(c.up.Scale(-c.Speed))
		fixed = fixed.Add(pxlmath.Vec3{Y: -c.Speed})
	}
	c.position = c.position.Add(movement.Scale(scale))
	c.fixedPosition = c.fixedPosition.Add(fixed.Scale(scale))
}

func (c *Camera) Position() pxlmath.Vec3      { return c.position }
func (c *Camera) FixedPosition() pxlmath.Vec3 { return c.fixedPosition }
func (c *Camera) Direction() pxlmath.Vec3     { return c.direction }
func (c *Camera) Right() pxlmath.Vec3         { return c.right }
func (c *Camera) Up() pxlmath.Vec3            { return c.up }
func (c *Camera) Pitch() float32              { return c.pitch }

// Orientation returns the rotation taking +X, +Y and +Z to the camera's
// right, local up and direction.
func (c *Camera) Orientation() pxlmath.Quat {
	localUp := c.direction.Cross(c.right)
	m := pxlmath.Mat4{
		c.right.X, localUp.X, c.direction.X, 0,
		c.right.Y, localUp.Y, c.direction.Y, 0,
		c.right.Z, localUp.Z, c.direction.Z, 0,
		0, 0, 0, 1,
	}
	return m.Rotation().Normalized()
}

// Transform returns the camera's model matrix.
func (c *Camera) Transform() pxlmath.Mat4 {
	return pxlmath.TRS(c.position, c.Orientation(), pxlmath.Vec3{X: 1, Y: 1, Z: 1})
}

// ViewMatrix returns the world-to-view matrix for use with
// pxlmath.Perspective.
func (c *Camera) ViewMatrix() pxlmath.Mat4 {
	return pxlmath.LookAt(c.position, c.position.Add(c.direction), c.up)
}
