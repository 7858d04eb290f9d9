package camera

// Camera defaults matching the original demo pose: standing at
// (0, 1.6, 5) looking down negative Z.
const (
	DefaultYaw   = -90.0
	DefaultPitch = 0.0

	DefaultSensitivity = 0.1
	DefaultMoveSpeed   = 0.1

	DefaultFOV  = 60.0
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Pitch is clamped strictly inside (-90, 90) so the ground-plane
	// movement basis never degenerates at the poles.
	MaxPitch = 89.0
	MinPitch = -89.0
)
