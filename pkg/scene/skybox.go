package scene

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/internal/openglhelper"
)

// skyboxFaceSize is the edge length in pixels of each generated cubemap face.
const skyboxFaceSize = 256

// skyboxVertices is a unit cube, 36 vertices, positions only.
var skyboxVertices = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// Skybox renders the environment cube and owns the cubemap texture that
// the water samples for reflections. The cubemap is generated
// procedurally (a vertical sky gradient), so no image files are decoded.
type Skybox struct {
	shader  *openglhelper.Shader
	vao     *openglhelper.VertexArrayObject
	vbo     *openglhelper.BufferObject
	cubemap uint32
}

// NewSkybox creates the skybox and its procedural cubemap.
func NewSkybox() (*Skybox, error) {
	shader, err := openglhelper.NewShader(skyboxVertexShader, skyboxFragmentShader)
	if err != nil {
		return nil, err
	}

	s := &Skybox{shader: shader}

	s.vao = openglhelper.NewVAO()
	s.vao.Bind()
	s.vbo = openglhelper.NewVBO(skyboxVertices, openglhelper.StaticDraw)
	s.vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)
	s.vao.Unbind()

	s.cubemap = newGradientCubemap(skyboxFaceSize)

	return s, nil
}

// faceDirection maps a pixel on a cubemap face to its sampling direction.
// u and v are in [-1, 1]; face order follows GL_TEXTURE_CUBE_MAP_POSITIVE_X.
func faceDirection(face int, u, v float32) mgl32.Vec3 {
	switch face {
	case 0: // +X
		return mgl32.Vec3{1, -v, -u}
	case 1: // -X
		return mgl32.Vec3{-1, -v, u}
	case 2: // +Y
		return mgl32.Vec3{u, 1, v}
	case 3: // -Y
		return mgl32.Vec3{u, -1, -v}
	case 4: // +Z
		return mgl32.Vec3{u, -v, 1}
	default: // -Z
		return mgl32.Vec3{-u, -v, -1}
	}
}

// newGradientCubemap builds a cubemap whose color blends from a warm
// horizon tone to a deep zenith blue by the sampling direction's height.
func newGradientCubemap(size int) uint32 {
	horizon := mgl32.Vec3{0.85, 0.80, 0.70}
	zenith := mgl32.Vec3{0.18, 0.34, 0.62}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	pixels := make([]uint8, size*size*3)
	for face := 0; face < 6; face++ {
		i := 0
		for py := 0; py < size; py++ {
			v := 2*float32(py)/float32(size-1) - 1
			for px := 0; px < size; px++ {
				u := 2*float32(px)/float32(size-1) - 1

				dir := faceDirection(face, u, v).Normalize()
				blend := dir.Y()*0.5 + 0.5
				color := horizon.Mul(1 - blend).Add(zenith.Mul(blend))

				pixels[i] = uint8(color.X() * 255)
				pixels[i+1] = uint8(color.Y() * 255)
				pixels[i+2] = uint8(color.Z() * 255)
				i += 3
			}
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), 0, gl.RGB8,
			int32(size), int32(size), 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	return texture
}

// CubemapTexture returns the environment cubemap for reflection sampling.
func (s *Skybox) CubemapTexture() uint32 {
	return s.cubemap
}

// Update is a no-op; the skybox has no simulation state.
func (s *Skybox) Update(dt float32) {}

// Draw renders the skybox. It is drawn at depth 1.0 with a
// translation-stripped view matrix so it stays centered on the camera.
func (s *Skybox) Draw(view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	gl.DepthFunc(gl.LEQUAL)

	s.shader.Use()
	s.shader.SetMat4("view", view.Mat3().Mat4())
	s.shader.SetMat4("projection", projection)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	s.shader.SetInt("skybox", 0)

	s.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	s.vao.Unbind()

	gl.DepthFunc(gl.LESS)
}

// Delete releases the GPU resources held by the skybox.
func (s *Skybox) Delete() {
	gl.DeleteTextures(1, &s.cubemap)
	s.vbo.Delete()
	s.vao.Delete()
	s.shader.Delete()
}
