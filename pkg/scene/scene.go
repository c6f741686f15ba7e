package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is the contract the frame loop's hooks fan out to: Update runs
// on simulate-eligible frames only, Draw runs every frame. Drawables are
// assumed infallible once constructed.
type Drawable interface {
	Update(dt float32)
	Draw(view, projection mgl32.Mat4, cameraPos mgl32.Vec3)
}

// Scene is an ordered collection of drawables. Draw order is insertion
// order, so translucent or depth-tricky objects (the skybox) should be
// added last.
type Scene struct {
	drawables []Drawable
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a drawable to the scene.
func (s *Scene) Add(d Drawable) {
	s.drawables = append(s.drawables, d)
}

// Update runs one simulation step on every drawable.
func (s *Scene) Update(dt float32) {
	for _, d := range s.drawables {
		d.Update(dt)
	}
}

// Draw renders every drawable in insertion order.
func (s *Scene) Draw(view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	for _, d := range s.drawables {
		d.Draw(view, projection, cameraPos)
	}
}
