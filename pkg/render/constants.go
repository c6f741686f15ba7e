package render

// Camera constants
const (
	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Movement and look tuning
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1

	// Zoom doubles as the vertical field of view, in degrees
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 45.0

	// Pitch constraints, avoids flipping the basis at the poles
	MaxPitch = 89.0
	MinPitch = -89.0
)
