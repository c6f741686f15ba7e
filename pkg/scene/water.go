// Package scene contains the drawable objects of the water demo: the
// simulated water surface and the skybox it reflects. Drawables are
// updated on simulate-eligible frames and drawn every frame.
package scene

import (
	"math"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/internal/openglhelper"
)

// Wave is one directional sine component of the water surface
// (sum-of-sines model from GPU Gems chapter 1).
type Wave struct {
	Amplitude  float32    // crest height above the rest plane
	Wavelength float32    // world-space distance between crests
	Speed      float32    // phase speed in world units per second
	Direction  mgl32.Vec2 // horizontal travel direction, unit length
}

// frequency is the angular frequency w = 2*pi/L.
func (w Wave) frequency() float32 {
	return 2 * math.Pi / w.Wavelength
}

// phase returns the wave phase at (x, z) and time t.
func (w Wave) phase(x, z, t float32) float32 {
	freq := w.frequency()
	return (w.Direction.X()*x+w.Direction.Y()*z)*freq + t*w.Speed*freq
}

// Period returns the time after which the wave repeats exactly.
func (w Wave) Period() float32 {
	return w.Wavelength / w.Speed
}

// DefaultWaves returns the wave set used by the demo: a few components of
// differing wavelength and direction so the surface never looks periodic.
func DefaultWaves() []Wave {
	return []Wave{
		{Amplitude: 0.30, Wavelength: 12.0, Speed: 1.2, Direction: mgl32.Vec2{1, 0}},
		{Amplitude: 0.18, Wavelength: 7.0, Speed: 1.8, Direction: mgl32.Vec2{0.8, 0.6}},
		{Amplitude: 0.10, Wavelength: 3.5, Speed: 2.4, Direction: mgl32.Vec2{-0.6, 0.8}},
		{Amplitude: 0.05, Wavelength: 1.8, Speed: 3.1, Direction: mgl32.Vec2{0.28, -0.96}},
	}
}

// surfaceHeight evaluates the summed surface height at (x, z) and time t.
func surfaceHeight(waves []Wave, x, z, t float32) float32 {
	var height float32
	for _, w := range waves {
		height += w.Amplitude * float32(math.Sin(float64(w.phase(x, z, t))))
	}
	return height
}

// surfaceNormal evaluates the analytic surface normal at (x, z) and time t
// from the partial derivatives of the height field.
func surfaceNormal(waves []Wave, x, z, t float32) mgl32.Vec3 {
	var dx, dz float32
	for _, w := range waves {
		cosTerm := w.Amplitude * w.frequency() * float32(math.Cos(float64(w.phase(x, z, t))))
		dx += w.Direction.X() * cosTerm
		dz += w.Direction.Y() * cosTerm
	}
	return mgl32.Vec3{-dx, 1, -dz}.Normalize()
}

// floatsPerVertex is position (3) plus normal (3), interleaved.
const floatsPerVertex = 6

// tessellate writes positions and normals for a (cols+1)x(rows+1) vertex
// grid into verts, which must hold gridVertexCount(cols, rows) vertices.
func tessellate(verts []float32, waves []Wave, originX, originZ, cellW, cellD float32, cols, rows int, t float32) {
	i := 0
	for row := 0; row <= rows; row++ {
		z := originZ + float32(row)*cellD
		for col := 0; col <= cols; col++ {
			x := originX + float32(col)*cellW

			n := surfaceNormal(waves, x, z, t)
			verts[i] = x
			verts[i+1] = surfaceHeight(waves, x, z, t)
			verts[i+2] = z
			verts[i+3] = n.X()
			verts[i+4] = n.Y()
			verts[i+5] = n.Z()
			i += floatsPerVertex
		}
	}
}

// gridVertexCount returns the number of vertices in a cols x rows cell grid.
func gridVertexCount(cols, rows int) int {
	return (cols + 1) * (rows + 1)
}

// gridIndices builds the triangle indices for a cols x rows cell grid,
// two triangles per cell.
func gridIndices(cols, rows int) []uint32 {
	indices := make([]uint32, 0, cols*rows*6)
	stride := uint32(cols + 1)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topLeft := uint32(row)*stride + uint32(col)
			bottomLeft := topLeft + stride

			indices = append(indices,
				topLeft, bottomLeft, topLeft+1,
				topLeft+1, bottomLeft, bottomLeft+1,
			)
		}
	}
	return indices
}

// Water simulates and renders the water surface as a regular XZ grid whose
// heights and normals are re-tessellated from the wave set every
// simulation step and re-uploaded into a dynamic vertex buffer.
type Water struct {
	originX, originZ float32
	cellW, cellD     float32
	cols, rows       int

	waves []Wave
	time  float32

	vertices []float32
	indices  []uint32

	shader  *openglhelper.Shader
	vao     *openglhelper.VertexArrayObject
	vbo     *openglhelper.BufferObject
	ebo     *openglhelper.BufferObject
	cubemap uint32
}

// NewWater creates a water surface of the given world-space size centered
// on the origin, tessellated into cols x rows cells. The cubemap texture
// is sampled for reflections and is owned by the caller.
func NewWater(size float32, cols, rows int, waves []Wave, cubemap uint32) (*Water, error) {
	w := &Water{
		originX: -size / 2,
		originZ: -size / 2,
		cellW:   size / float32(cols),
		cellD:   size / float32(rows),
		cols:    cols,
		rows:    rows,
		waves:   waves,
		cubemap: cubemap,
	}

	w.vertices = make([]float32, gridVertexCount(cols, rows)*floatsPerVertex)
	w.indices = gridIndices(cols, rows)
	tessellate(w.vertices, w.waves, w.originX, w.originZ, w.cellW, w.cellD, w.cols, w.rows, 0)

	shader, err := openglhelper.NewShader(waterVertexShader, waterFragmentShader)
	if err != nil {
		return nil, err
	}
	w.shader = shader

	w.vao = openglhelper.NewVAO()
	w.vao.Bind()
	w.vbo = openglhelper.NewVBO(w.vertices, openglhelper.DynamicDraw)
	w.ebo = openglhelper.NewEBO(w.indices, openglhelper.StaticDraw)
	w.vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, 0)
	w.vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, floatsPerVertex*4, 3*4)
	w.vao.Unbind()

	return w, nil
}

// UpdateTime advances the simulation clock.
func (w *Water) UpdateTime(dt float32) {
	w.time += dt
}

// UpdateMesh re-tessellates heights and normals at the current simulation
// time and re-uploads the vertex buffer.
func (w *Water) UpdateMesh() {
	tessellate(w.vertices, w.waves, w.originX, w.originZ, w.cellW, w.cellD, w.cols, w.rows, w.time)
	w.vbo.UpdateFloats(w.vertices)
}

// Update runs one simulation step.
func (w *Water) Update(dt float32) {
	w.UpdateTime(dt)
	w.UpdateMesh()
}

// Draw renders the surface with the environment cubemap reflection.
func (w *Water) Draw(view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	w.shader.Use()
	w.shader.SetMat4("projection", projection)
	w.shader.SetMat4("view", view)
	w.shader.SetMat4("model", mgl32.Ident4())
	w.shader.SetVec3("cameraPos", cameraPos)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, w.cubemap)
	w.shader.SetInt("skybox", 0)

	w.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(w.indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	w.vao.Unbind()
}

// Delete releases the GPU resources held by the surface.
func (w *Water) Delete() {
	w.vbo.Delete()
	w.ebo.Delete()
	w.vao.Delete()
	w.shader.Delete()
}
