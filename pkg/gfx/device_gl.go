//go:build !js

package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/tricolor/pkg/shader"
)

// contextOwner is satisfied by *glfw.Window.
type contextOwner interface {
	MakeContextCurrent()
}

type glDevice struct {
	vao uint32
}

func newPlatformDevice(glContext any) (Device, error) {
	owner, ok := glContext.(contextOwner)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported context %T", ErrContextUnavailable, glContext)
	}
	owner.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: gl.Init: %v", ErrContextUnavailable, err)
	}
	d := &glDevice{}
	// the core profile refuses attribute pointers without a bound VAO
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.Disable(gl.DEPTH_TEST)
	return d, nil
}

func (d *glDevice) Dialect() shader.Dialect { return shader.GLSL330 }

func (d *glDevice) CreateShader(stage shader.Stage) shader.ShaderID {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == shader.StageFragment {
		kind = gl.FRAGMENT_SHADER
	}
	return shader.ShaderID(gl.CreateShader(kind))
}

func (d *glDevice) ShaderSource(s shader.ShaderID, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (d *glDevice) CompileShader(s shader.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (d *glDevice) CompileStatus(s shader.ShaderID) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *glDevice) ShaderInfoLog(s shader.ShaderID) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return log
}

func (d *glDevice) DeleteShader(s shader.ShaderID) {
	gl.DeleteShader(uint32(s))
}

func (d *glDevice) CreateProgram() shader.ProgramID {
	return shader.ProgramID(gl.CreateProgram())
}

func (d *glDevice) AttachShader(p shader.ProgramID, s shader.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *glDevice) LinkProgram(p shader.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (d *glDevice) LinkStatus(p shader.ProgramID) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *glDevice) ProgramInfoLog(p shader.ProgramID) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return log
}

func (d *glDevice) DeleteProgram(p shader.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (d *glDevice) AttribLocation(p shader.ProgramID, name string) shader.Location {
	return shader.Location(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *glDevice) UniformLocation(p shader.ProgramID, name string) shader.Location {
	return shader.Location(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *glDevice) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *glDevice) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *glDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *glDevice) CreateBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *glDevice) BufferData(buffer uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *glDevice) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *glDevice) VertexAttribPointer(loc shader.Location, buffer uint32, size int) {
	if loc < 0 {
		return
	}
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointer(uint32(loc), int32(size), gl.FLOAT, false, int32(size*4), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *glDevice) UseProgram(p shader.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (d *glDevice) Uniform4f(loc shader.Location, r, g, b, a float32) {
	gl.Uniform4f(int32(loc), r, g, b, a)
}

func (d *glDevice) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}
