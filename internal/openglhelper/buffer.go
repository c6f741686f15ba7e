package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage represents buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

const (
	// StaticDraw indicates buffer contents are specified once and drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw indicates buffer contents change frequently and are drawn many times
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw indicates buffer contents are specified once and drawn a few times
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// BufferObject represents an OpenGL buffer object (VBO, EBO, ...).
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size  int    // Size of the buffer in bytes
	Usage uint32
}

// NewVBO creates a vertex buffer object from float32 data.
func NewVBO(data []float32, usage BufferUsage) *BufferObject {
	return newBufferObject(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

// NewEBO creates an element buffer object from uint32 indices.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	return newBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), usage)
}

func newBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// Bind binds the buffer object to its target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// UpdateFloats re-uploads float32 data into the buffer. The data must fit
// within the buffer's allocated size.
func (bo *BufferObject) UpdateFloats(data []float32) {
	bo.Bind()
	gl.BufferSubData(bo.Type, 0, len(data)*4, gl.Ptr(data))
}

// Delete releases the buffer object.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// VertexArrayObject represents an OpenGL vertex array object storing
// vertex attribute configuration.
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a new vertex array object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	return &VertexArrayObject{ID: vaoID}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// SetVertexAttribPointer configures and enables a vertex attribute.
// stride and offset are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
	gl.EnableVertexAttribArray(index)
}

// Delete releases the vertex array object.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}
