//go:build js && wasm

package gfx

import (
	"fmt"
	"syscall/js"

	"github.com/kjkrol/tricolor/pkg/shader"
)

type glConsts struct {
	arrayBuffer    int
	staticDraw     int
	floatType      int
	triangles      int
	colorBufferBit int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
}

// webglDevice keeps JS objects in tables so the shader package sees plain
// integer handles.
type webglDevice struct {
	gl     js.Value
	consts glConsts

	nextID   uint32
	shaders  map[shader.ShaderID]js.Value
	programs map[shader.ProgramID]js.Value
	buffers  map[uint32]js.Value
	uniforms map[shader.ProgramID][]js.Value
	current  shader.ProgramID
}

func newPlatformDevice(glContext any) (Device, error) {
	gl, ok := glContext.(js.Value)
	if !ok || gl.IsUndefined() || gl.IsNull() {
		return nil, fmt.Errorf("%w: webgl context is required", ErrContextUnavailable)
	}
	d := &webglDevice{
		gl:       gl,
		shaders:  make(map[shader.ShaderID]js.Value),
		programs: make(map[shader.ProgramID]js.Value),
		buffers:  make(map[uint32]js.Value),
		uniforms: make(map[shader.ProgramID][]js.Value),
	}
	d.initConsts()
	return d, nil
}

func (d *webglDevice) initConsts() {
	d.consts = glConsts{
		arrayBuffer:    d.gl.Get("ARRAY_BUFFER").Int(),
		staticDraw:     d.gl.Get("STATIC_DRAW").Int(),
		floatType:      d.gl.Get("FLOAT").Int(),
		triangles:      d.gl.Get("TRIANGLES").Int(),
		colorBufferBit: d.gl.Get("COLOR_BUFFER_BIT").Int(),
		compileStatus:  d.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:     d.gl.Get("LINK_STATUS").Int(),
		vertexShader:   d.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader: d.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (d *webglDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *webglDevice) Dialect() shader.Dialect { return shader.GLSLES100 }

func (d *webglDevice) CreateShader(stage shader.Stage) shader.ShaderID {
	kind := d.consts.vertexShader
	if stage == shader.StageFragment {
		kind = d.consts.fragmentShader
	}
	obj := d.gl.Call("createShader", kind)
	if obj.IsNull() {
		return 0
	}
	id := shader.ShaderID(d.id())
	d.shaders[id] = obj
	return id
}

func (d *webglDevice) ShaderSource(s shader.ShaderID, source string) {
	d.gl.Call("shaderSource", d.shaders[s], source)
}

func (d *webglDevice) CompileShader(s shader.ShaderID) {
	d.gl.Call("compileShader", d.shaders[s])
}

func (d *webglDevice) CompileStatus(s shader.ShaderID) bool {
	return d.gl.Call("getShaderParameter", d.shaders[s], d.consts.compileStatus).Truthy()
}

func (d *webglDevice) ShaderInfoLog(s shader.ShaderID) string {
	log := d.gl.Call("getShaderInfoLog", d.shaders[s])
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (d *webglDevice) DeleteShader(s shader.ShaderID) {
	obj, ok := d.shaders[s]
	if !ok {
		return
	}
	d.gl.Call("deleteShader", obj)
	delete(d.shaders, s)
}

func (d *webglDevice) CreateProgram() shader.ProgramID {
	obj := d.gl.Call("createProgram")
	if obj.IsNull() {
		return 0
	}
	id := shader.ProgramID(d.id())
	d.programs[id] = obj
	return id
}

func (d *webglDevice) AttachShader(p shader.ProgramID, s shader.ShaderID) {
	d.gl.Call("attachShader", d.programs[p], d.shaders[s])
}

func (d *webglDevice) LinkProgram(p shader.ProgramID) {
	d.gl.Call("linkProgram", d.programs[p])
}

func (d *webglDevice) LinkStatus(p shader.ProgramID) bool {
	return d.gl.Call("getProgramParameter", d.programs[p], d.consts.linkStatus).Truthy()
}

func (d *webglDevice) ProgramInfoLog(p shader.ProgramID) string {
	log := d.gl.Call("getProgramInfoLog", d.programs[p])
	if log.IsNull() {
		return ""
	}
	return log.String()
}

func (d *webglDevice) DeleteProgram(p shader.ProgramID) {
	obj, ok := d.programs[p]
	if !ok {
		return
	}
	d.gl.Call("deleteProgram", obj)
	delete(d.programs, p)
	delete(d.uniforms, p)
}

func (d *webglDevice) AttribLocation(p shader.ProgramID, name string) shader.Location {
	return shader.Location(d.gl.Call("getAttribLocation", d.programs[p], name).Int())
}

// UniformLocation returns an index into the program's uniform table since
// WebGL hands out opaque location objects.
func (d *webglDevice) UniformLocation(p shader.ProgramID, name string) shader.Location {
	loc := d.gl.Call("getUniformLocation", d.programs[p], name)
	if loc.IsNull() {
		return -1
	}
	d.uniforms[p] = append(d.uniforms[p], loc)
	return shader.Location(len(d.uniforms[p]) - 1)
}

func (d *webglDevice) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

func (d *webglDevice) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

func (d *webglDevice) Clear() {
	d.gl.Call("clear", d.consts.colorBufferBit)
}

func (d *webglDevice) CreateBuffer() uint32 {
	id := d.id()
	d.buffers[id] = d.gl.Call("createBuffer")
	return id
}

func (d *webglDevice) BufferData(buffer uint32, data []float32) {
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, d.buffers[buffer])
	d.gl.Call("bufferData", d.consts.arrayBuffer, float32Array(data), d.consts.staticDraw)
}

func (d *webglDevice) DeleteBuffer(buffer uint32) {
	obj, ok := d.buffers[buffer]
	if !ok {
		return
	}
	d.gl.Call("deleteBuffer", obj)
	delete(d.buffers, buffer)
}

func (d *webglDevice) VertexAttribPointer(loc shader.Location, buffer uint32, size int) {
	if loc < 0 {
		return
	}
	d.gl.Call("bindBuffer", d.consts.arrayBuffer, d.buffers[buffer])
	d.gl.Call("vertexAttribPointer", int(loc), size, d.consts.floatType, false, 0, 0)
	d.gl.Call("enableVertexAttribArray", int(loc))
}

func (d *webglDevice) UseProgram(p shader.ProgramID) {
	d.gl.Call("useProgram", d.programs[p])
	d.current = p
}

func (d *webglDevice) Uniform4f(loc shader.Location, r, g, b, a float32) {
	table := d.uniforms[d.current]
	if loc < 0 || int(loc) >= len(table) {
		return
	}
	d.gl.Call("uniform4f", table[loc], r, g, b, a)
}

func (d *webglDevice) DrawTriangles(first, count int) {
	d.gl.Call("drawArrays", d.consts.triangles, first, count)
}
