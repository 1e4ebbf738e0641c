package shader

import (
	"fmt"

	"github.com/kjkrol/tricolor/internal/logging"
)

// CompileStage creates a shader object for stage, uploads source and
// compiles it. A failed compile deletes the object and returns *CompileError.
func CompileStage(ctx Context, stage Stage, source string) (ShaderID, error) {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("%s: %w", stage, ErrCreateShader)
	}
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if !ctx.CompileStatus(shader) {
		log := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	logging.Logger().Debug("shader compiled", "stage", stage, "id", shader)
	return shader, nil
}

// Link attaches vertex and fragment to a new program and links it.
// On success the program owns both shaders. On failure the program object is
// deleted and the shaders remain the caller's responsibility.
func Link(ctx Context, vertex, fragment ShaderID) (*Program, error) {
	program := ctx.CreateProgram()
	if program == 0 {
		return nil, ErrCreateProgram
	}
	ctx.AttachShader(program, vertex)
	ctx.AttachShader(program, fragment)
	ctx.LinkProgram(program)

	if !ctx.LinkStatus(program) {
		log := ctx.ProgramInfoLog(program)
		ctx.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}
	logging.Logger().Debug("program linked", "id", program)
	return newProgram(ctx, program, vertex, fragment), nil
}

// Build compiles src.Vertex, then src.Fragment, then links them. The first
// failure is returned unchanged and any shader already compiled is deleted.
func Build(ctx Context, src Source) (*Program, error) {
	vertex, err := CompileStage(ctx, StageVertex, src.Vertex)
	if err != nil {
		return nil, err
	}
	fragment, err := CompileStage(ctx, StageFragment, src.Fragment)
	if err != nil {
		ctx.DeleteShader(vertex)
		return nil, err
	}
	program, err := Link(ctx, vertex, fragment)
	if err != nil {
		ctx.DeleteShader(vertex)
		ctx.DeleteShader(fragment)
		return nil, err
	}
	return program, nil
}
