// Package camera implements a first-person camera: it folds pointer and
// key input into a position/yaw/pitch pose and derives the view and
// projection matrices consumed by the renderer each frame.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Options configures a Camera. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees
	Pitch       float32 // degrees
	Sensitivity float32 // degrees per pixel of pointer motion

	// MoveSpeed is the distance covered per movement step. With
	// TimeScaled false (the default) a step is one frame, so effective
	// speed depends on frame rate, matching the original demo. With
	// TimeScaled true the step is MoveSpeed per second.
	MoveSpeed  float32
	TimeScaled bool

	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultOptions returns the original demo's pose and projection for an
// 800x600 window.
func DefaultOptions() Options {
	return Options{
		Position:    mgl32.Vec3{0, 1.6, 5},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Sensitivity: DefaultSensitivity,
		MoveSpeed:   DefaultMoveSpeed,
		FOV:         DefaultFOV,
		Aspect:      800.0 / 600.0,
		Near:        DefaultNear,
		Far:         DefaultFar,
	}
}

// Camera owns the camera pose and the two matrices derived from it. It
// is mutated only by Update, on the frame-loop goroutine.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	worldUp mgl32.Vec3

	// Derived from yaw/pitch by updateVectors.
	front         mgl32.Vec3 // full look direction
	groundForward mgl32.Vec3 // yaw-only forward, for movement
	groundRight   mgl32.Vec3 // yaw-only right, for movement

	sensitivity float32
	moveSpeed   float32
	timeScaled  bool

	projection mgl32.Mat4
	view       mgl32.Mat4
}

// New creates a camera, validating the projection parameters. A bad
// projection configuration is a fatal startup error.
func New(opts Options) (*Camera, error) {
	projection, err := Perspective(opts.FOV, opts.Aspect, opts.Near, opts.Far)
	if err != nil {
		return nil, err
	}

	c := &Camera{
		position:    opts.Position,
		yaw:         opts.Yaw,
		pitch:       clampPitch(opts.Pitch),
		worldUp:     mgl32.Vec3{0, 1, 0},
		sensitivity: opts.Sensitivity,
		moveSpeed:   opts.MoveSpeed,
		timeScaled:  opts.TimeScaled,
		projection:  projection,
	}
	c.updateVectors()
	c.view = LookAt(c.position, c.position.Add(c.front), c.worldUp)
	return c, nil
}

// Update advances the pose by one frame: consume the pending look
// delta, recompute the basis, move along it per the held keys, and
// rebuild the view matrix. dt is the frame time in seconds; it is only
// used when the camera is configured as time-scaled.
func (c *Camera) Update(in *InputState, keys KeyState, dt float32) {
	dYaw, dPitch := in.ConsumeLookDelta(c.sensitivity)
	c.ApplyLook(dYaw, dPitch)

	step := c.moveSpeed
	if c.timeScaled {
		step = c.moveSpeed * dt
	}
	c.Move(in.MovementIntent(keys), step)

	c.view = LookAt(c.position, c.position.Add(c.front), c.worldUp)
}

// ApplyLook adds a yaw/pitch delta in degrees. Yaw is unbounded; pitch
// is clamped to [MinPitch, MaxPitch].
func (c *Camera) ApplyLook(dYaw, dPitch float32) {
	c.yaw += dYaw
	c.pitch = clampPitch(c.pitch + dPitch)
	c.updateVectors()
}

// Move shifts the position along the ground-plane basis: W/S along
// forward, A/D along right. Vertical position never changes; walking
// while looking up or down still covers the same ground distance.
func (c *Camera) Move(intent MovementIntent, step float32) {
	if intent.Forward {
		c.position = c.position.Add(c.groundForward.Mul(step))
	}
	if intent.Backward {
		c.position = c.position.Sub(c.groundForward.Mul(step))
	}
	if intent.Left {
		c.position = c.position.Sub(c.groundRight.Mul(step))
	}
	if intent.Right {
		c.position = c.position.Add(c.groundRight.Mul(step))
	}
}

// updateVectors recomputes the look direction and the ground-plane
// movement basis from the Euler angles. The pitch clamp keeps the
// ground projections away from zero length at the poles.
func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	dir := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = dir.Normalize()

	c.groundForward = mgl32.Vec3{dir.X(), 0, dir.Z()}.Normalize()
	c.groundRight = mgl32.Vec3{-dir.Z(), 0, dir.X()}.Normalize()
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// ViewMatrix returns the view matrix built by the last Update.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix computed at init.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns the current yaw and pitch in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Front returns the full look direction.
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// GroundBasis returns the ground-plane forward and right vectors used
// for movement.
func (c *Camera) GroundBasis() (forward, right mgl32.Vec3) {
	return c.groundForward, c.groundRight
}
