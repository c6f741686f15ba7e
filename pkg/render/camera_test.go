package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func checkOrthonormal(t *testing.T, c *Camera, context string) {
	t.Helper()

	front, right, up := c.FrontVector(), c.RightVector(), c.UpVector()

	for name, v := range map[string]mgl32.Vec3{"front": front, "right": right, "up": up} {
		if absf(v.Len()-1) > epsilon {
			t.Errorf("%s: %s is not unit length: %v (len %v)", context, name, v, v.Len())
		}
	}
	if d := front.Dot(right); absf(d) > epsilon {
		t.Errorf("%s: front.right = %v, want ~0", context, d)
	}
	if d := front.Dot(up); absf(d) > epsilon {
		t.Errorf("%s: front.up = %v, want ~0", context, d)
	}
	if d := right.Dot(up); absf(d) > epsilon {
		t.Errorf("%s: right.up = %v, want ~0", context, d)
	}
}

func TestBasisOrthonormalAfterConstruction(t *testing.T) {
	checkOrthonormal(t, NewCamera(mgl32.Vec3{1, 2, 3}), "construction")
}

func TestBasisOrthonormalUnderMouseInput(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	offsets := [][2]float32{
		{10, 5},
		{-400, 900},  // drives pitch into the upper clamp
		{123, -2000}, // and into the lower clamp
		{10000, 0},   // several full yaw revolutions
		{-0.001, 0.001},
	}
	for _, off := range offsets {
		c.UpdateMouse(off[0], off[1], true)
		checkOrthonormal(t, c, "after mouse update")
	}
}

func TestPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.UpdateMouse(0, 1e6, true)
	if _, pitch := c.Orientation(); pitch != MaxPitch {
		t.Errorf("Expected pitch clamped to %v, got %v", float32(MaxPitch), pitch)
	}

	c.UpdateMouse(0, -1e6, true)
	if _, pitch := c.Orientation(); pitch != MinPitch {
		t.Errorf("Expected pitch clamped to %v, got %v", float32(MinPitch), pitch)
	}

	// Repeated saturating updates must not wrap
	for i := 0; i < 10; i++ {
		c.UpdateMouse(0, 500, true)
	}
	if _, pitch := c.Orientation(); pitch != MaxPitch {
		t.Errorf("Pitch escaped the clamp after repeated updates: %v", pitch)
	}
}

func TestUnconstrainedPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	c.UpdateMouse(0, 1200, false) // 1200 * 0.1 sensitivity = 120 degrees
	if _, pitch := c.Orientation(); pitch <= MaxPitch {
		t.Errorf("Expected pitch beyond %v with constraint off, got %v", float32(MaxPitch), pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})

	c.UpdateScroll(1e6)
	if c.Zoom() != MinZoom {
		t.Errorf("Expected zoom clamped to %v, got %v", float32(MinZoom), c.Zoom())
	}

	c.UpdateScroll(-1e6)
	if c.Zoom() != MaxZoom {
		t.Errorf("Expected zoom clamped to %v, got %v", float32(MaxZoom), c.Zoom())
	}

	c.UpdateScroll(5)
	if c.Zoom() != MaxZoom-5 {
		t.Errorf("Expected zoom %v, got %v", float32(MaxZoom-5), c.Zoom())
	}
}

func TestScrollUpdatesProjection(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	before := c.ProjectionMatrix()
	c.UpdateScroll(10)
	if c.ProjectionMatrix() == before {
		t.Error("Projection matrix unchanged after zoom change")
	}

	want := mgl32.Perspective(mgl32.DegToRad(c.Zoom()), 800.0/600.0, 0.1, 1000.0)
	if c.ProjectionMatrix() != want {
		t.Error("Projection matrix does not match the current zoom")
	}
}

// compositeDirection mirrors the documented movement semantics using only
// the camera's public basis accessors.
func compositeDirection(c *Camera, dirs DirectionSet) mgl32.Vec3 {
	v := mgl32.Vec3{}
	if dirs.Has(Forward) {
		v = v.Add(c.FrontVector())
	}
	if dirs.Has(Backward) {
		v = v.Sub(c.FrontVector())
	}
	if dirs.Has(Left) {
		v = v.Sub(c.RightVector())
	}
	if dirs.Has(Right) {
		v = v.Add(c.RightVector())
	}
	if dirs.Has(Up) {
		v = v.Add(mgl32.Vec3{0, 1, 0})
	}
	if dirs.Has(Down) {
		v = v.Sub(mgl32.Vec3{0, 1, 0})
	}
	return v
}

func TestMovementSpeedConstantForAllCombinations(t *testing.T) {
	const dt = 0.016

	// Every subset of the six directions
	for bits := 0; bits < 64; bits++ {
		var dirs DirectionSet
		for d := Forward; d <= Down; d++ {
			if bits&(1<<uint(d)) != 0 {
				dirs.Set(d)
			}
		}

		c := NewCamera(mgl32.Vec3{})
		c.UpdateMouse(33, 21, true) // arbitrary orientation, not axis-aligned
		start := c.Position()

		c.UpdateKeyboard(dirs, dt)
		moved := c.Position().Sub(start)

		if compositeDirection(c, dirs).Dot(compositeDirection(c, dirs)) == 0 {
			if moved.Len() != 0 {
				t.Errorf("Combination %06b cancels out but moved %v", bits, moved)
			}
			continue
		}

		want := c.moveSpeed * dt
		if absf(moved.Len()-want) > epsilon {
			t.Errorf("Combination %06b: moved %v, want %v (diagonal speedup?)", bits, moved.Len(), want)
		}
	}
}

func TestCancellingDirectionsAreNoOp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{5, 5, 5})
	start := c.Position()

	var dirs DirectionSet
	dirs.Set(Forward)
	dirs.Set(Backward)
	dirs.Set(Left)
	dirs.Set(Right)
	c.UpdateKeyboard(dirs, 1.0)

	if c.Position() != start {
		t.Errorf("Cancelling directions moved the camera from %v to %v", start, c.Position())
	}

	c.UpdateKeyboard(DirectionSet{}, 1.0)
	if c.Position() != start {
		t.Errorf("Empty direction set moved the camera to %v", c.Position())
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{1, 2, 3})
	c.UpdateMouse(120, -45, true)

	want := mgl32.LookAtV(c.Position(), c.Position().Add(c.FrontVector()), c.UpVector())
	if c.ViewMatrix() != want {
		t.Error("View matrix does not match look-at of position/front/up")
	}
}

func TestDefaultOrientationLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{})
	front := c.FrontVector()
	want := mgl32.Vec3{0, 0, -1}
	if front.Sub(want).Len() > epsilon {
		t.Errorf("Default front = %v, want %v", front, want)
	}
}

func TestLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	front := c.FrontVector()
	want := mgl32.Vec3{0, 0, -1}
	if front.Sub(want).Len() > epsilon {
		t.Errorf("Front after LookAt = %v, want %v", front, want)
	}
	checkOrthonormal(t, c, "after LookAt")
}

func TestDirectionSet(t *testing.T) {
	var s DirectionSet
	if s.Any() {
		t.Error("Zero-value set should be empty")
	}

	s.Set(Forward)
	s.Set(Down)
	if !s.Has(Forward) || !s.Has(Down) || s.Has(Backward) {
		t.Errorf("Unexpected set contents: %v", s)
	}

	s.Clear(Forward)
	if s.Has(Forward) {
		t.Error("Forward still present after Clear")
	}
	if !s.Any() {
		t.Error("Set should still contain Down")
	}
}
