package gfx

import (
	"github.com/kjkrol/tricolor/pkg/shader"
)

// Device is the rendering API surface the triangle renderer uses. Buffers
// are always float32 array buffers with static usage.
type Device interface {
	shader.Context

	Dialect() shader.Dialect
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear()

	CreateBuffer() uint32
	BufferData(buffer uint32, data []float32)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer binds buffer to loc, size floats per vertex, and
	// enables the slot.
	VertexAttribPointer(loc shader.Location, buffer uint32, size int)

	UseProgram(program shader.ProgramID)
	Uniform4f(loc shader.Location, r, g, b, a float32)
	DrawTriangles(first, count int)
}

// NewDevice wraps the context handed out by a platform window. A value that
// already is a Device is returned as is.
func NewDevice(glContext any) (Device, error) {
	switch c := glContext.(type) {
	case nil:
		return nil, ErrContextUnavailable
	case Device:
		return c, nil
	}
	return newPlatformDevice(glContext)
}
