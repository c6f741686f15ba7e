package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents a linked OpenGL shader program.
type Shader struct {
	ID uint32
}

// NewShader compiles and links a program from vertex and fragment sources.
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return &Shader{ID: program}, nil
}

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}

// Use activates the shader program.
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program.
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

func (s *Shader) uniformLocation(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetInt sets an integer uniform.
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.uniformLocation(name), value)
}

// SetFloat sets a float uniform.
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.uniformLocation(name), value)
}

// SetVec2 sets a vec2 uniform.
func (s *Shader) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2fv(s.uniformLocation(name), 1, &value[0])
}

// SetVec3 sets a vec3 uniform.
func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.uniformLocation(name), 1, &value[0])
}

// SetMat4 sets a mat4 uniform.
func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniformLocation(name), 1, false, &value[0])
}
