package shader

// ShaderID is a shader object handle owned by a Context. Zero is never valid.
type ShaderID uint32

// ProgramID is a program object handle owned by a Context. Zero is never valid.
type ProgramID uint32

// Location of an attribute or uniform inside a linked program.
// Negative values mean the name is not active in the program.
type Location int32

// Context is the part of a rendering API needed to compile and link shaders.
// Implementations wrap desktop OpenGL, WebGL or a software device.
type Context interface {
	CreateShader(stage Stage) ShaderID
	ShaderSource(shader ShaderID, source string)
	CompileShader(shader ShaderID)
	CompileStatus(shader ShaderID) bool
	ShaderInfoLog(shader ShaderID) string
	DeleteShader(shader ShaderID)

	CreateProgram() ProgramID
	AttachShader(program ProgramID, shader ShaderID)
	LinkProgram(program ProgramID)
	LinkStatus(program ProgramID) bool
	ProgramInfoLog(program ProgramID) string
	DeleteProgram(program ProgramID)

	AttribLocation(program ProgramID, name string) Location
	UniformLocation(program ProgramID, name string) Location
}
