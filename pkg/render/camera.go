package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person free-look camera. Orientation is stored
// as yaw/pitch Euler angles in degrees; the front/right/up basis is derived
// from them and recomputed after every orientation change.
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles
	yaw   float32
	pitch float32

	// Camera options
	moveSpeed   float32
	sensitivity float32
	zoom        float32

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a new camera at the given position with sensible defaults.
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},  // Y-up coordinate system
		front:       mgl32.Vec3{0, 0, -1}, // Looking along negative Z
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		zoom:        DefaultZoom,
		width:       800, // Default size
		height:      600,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates the orthonormal basis from the Euler angles
func (c *Camera) updateCameraVectors() {
	front := mgl32.Vec3{
		float32(math.Cos(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// updateProjectionMatrix recalculates the projection matrix
func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, 0.1, 1000.0)
}

// UpdateKeyboard moves the camera along the requested directions. The
// composite direction vector is normalized so combined directions (e.g.
// forward+right) do not move faster than a single one; the final step is
// moveSpeed*dt regardless of how many directions are held. An empty or
// exactly cancelling set is a no-op.
func (c *Camera) UpdateKeyboard(dirs DirectionSet, dt float32) {
	update := mgl32.Vec3{}

	if dirs.Has(Forward) {
		update = update.Add(c.front)
	}
	if dirs.Has(Backward) {
		update = update.Sub(c.front)
	}
	if dirs.Has(Left) {
		update = update.Sub(c.right)
	}
	if dirs.Has(Right) {
		update = update.Add(c.right)
	}
	if dirs.Has(Up) {
		update = update.Add(c.worldUp)
	}
	if dirs.Has(Down) {
		update = update.Sub(c.worldUp)
	}

	// Never normalize a zero vector
	if update.Dot(update) == 0 {
		return
	}
	c.position = c.position.Add(update.Normalize().Mul(c.moveSpeed * dt))
}

// UpdateMouse rotates the camera by the given screen-space offsets. The
// caller is expected to have flipped the sign of yOffset already (screen y
// grows downward). Pitch is clamped to avoid flipping over the poles unless
// constrainPitch is false.
func (c *Camera) UpdateMouse(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.sensitivity
	yOffset *= c.sensitivity

	c.yaw += xOffset
	c.pitch += yOffset

	if constrainPitch {
		if c.pitch > MaxPitch {
			c.pitch = MaxPitch
		}
		if c.pitch < MinPitch {
			c.pitch = MinPitch
		}
	}

	c.updateCameraVectors()
}

// UpdateScroll adjusts the zoom (vertical field of view) from scroll-wheel
// input and refreshes the projection matrix.
func (c *Camera) UpdateScroll(offset float32) {
	c.zoom -= offset

	if c.zoom < MinZoom {
		c.zoom = MinZoom
	}
	if c.zoom > MaxZoom {
		c.zoom = MaxZoom
	}

	c.updateProjectionMatrix()
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// SetViewport updates the projection matrix for new window dimensions
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch) in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// Zoom returns the current vertical field of view in degrees
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// SetMoveSpeed sets the translation speed in world units per second
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// SetSensitivity sets the mouse look sensitivity
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// LookAt orients the camera toward a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()

	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))

	c.updateCameraVectors()
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}
