package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext records calls and fails on demand.
type fakeContext struct {
	nextID int

	failCreateShader  bool
	failCreateProgram bool
	failCompile       map[Stage]bool
	failLink          bool

	stages   map[ShaderID]Stage
	sources  map[ShaderID]string
	deleted  []ShaderID
	attached map[ProgramID][]ShaderID
	linked   []ProgramID
	dropped  []ProgramID
	lookups  int
	calls    []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		failCompile: make(map[Stage]bool),
		stages:      make(map[ShaderID]Stage),
		sources:     make(map[ShaderID]string),
		attached:    make(map[ProgramID][]ShaderID),
	}
}

func (f *fakeContext) CreateShader(stage Stage) ShaderID {
	f.calls = append(f.calls, "createShader:"+stage.String())
	if f.failCreateShader {
		return 0
	}
	f.nextID++
	id := ShaderID(f.nextID)
	f.stages[id] = stage
	return id
}

func (f *fakeContext) ShaderSource(s ShaderID, source string) { f.sources[s] = source }
func (f *fakeContext) CompileShader(s ShaderID)               { f.calls = append(f.calls, "compile") }
func (f *fakeContext) CompileStatus(s ShaderID) bool          { return !f.failCompile[f.stages[s]] }
func (f *fakeContext) ShaderInfoLog(s ShaderID) string        { return "0:1: syntax error\x00" }
func (f *fakeContext) DeleteShader(s ShaderID)                { f.deleted = append(f.deleted, s) }

func (f *fakeContext) CreateProgram() ProgramID {
	f.calls = append(f.calls, "createProgram")
	if f.failCreateProgram {
		return 0
	}
	f.nextID++
	return ProgramID(f.nextID)
}

func (f *fakeContext) AttachShader(p ProgramID, s ShaderID) {
	f.attached[p] = append(f.attached[p], s)
}

func (f *fakeContext) LinkProgram(p ProgramID) {
	f.calls = append(f.calls, "link")
	f.linked = append(f.linked, p)
}

func (f *fakeContext) LinkStatus(p ProgramID) bool      { return !f.failLink }
func (f *fakeContext) ProgramInfoLog(p ProgramID) string { return "varying mismatch" }
func (f *fakeContext) DeleteProgram(p ProgramID)         { f.dropped = append(f.dropped, p) }

func (f *fakeContext) AttribLocation(p ProgramID, name string) Location {
	f.lookups++
	if name == PositionAttrib {
		return 0
	}
	return -1
}

func (f *fakeContext) UniformLocation(p ProgramID, name string) Location {
	f.lookups++
	if name == ColorUniform {
		return 3
	}
	return -1
}

func TestCompileStage_Success(t *testing.T) {
	ctx := newFakeContext()

	id, err := CompileStage(ctx, StageVertex, "void main() {}")

	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, "void main() {}", ctx.sources[id])
	assert.Empty(t, ctx.deleted)
}

func TestCompileStage_FailureReleasesShader(t *testing.T) {
	ctx := newFakeContext()
	ctx.failCompile[StageFragment] = true

	id, err := CompileStage(ctx, StageFragment, "broken")

	assert.Zero(t, id)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, StageFragment, compileErr.Stage)
	assert.Contains(t, compileErr.Log, "syntax error")
	assert.Equal(t, []ShaderID{1}, ctx.deleted)
	assert.Equal(t, "compile fragment shader: 0:1: syntax error", err.Error())
}

func TestCompileStage_NoShaderObject(t *testing.T) {
	ctx := newFakeContext()
	ctx.failCreateShader = true

	_, err := CompileStage(ctx, StageVertex, "void main() {}")

	assert.ErrorIs(t, err, ErrCreateShader)
	assert.NotContains(t, ctx.calls, "compile")
}

func TestLink_Success(t *testing.T) {
	ctx := newFakeContext()

	program, err := Link(ctx, 7, 8)

	require.NoError(t, err)
	assert.Equal(t, []ShaderID{7, 8}, ctx.attached[program.ID()])
	assert.Empty(t, ctx.dropped)
}

func TestLink_FailureDeletesProgram(t *testing.T) {
	ctx := newFakeContext()
	ctx.failLink = true

	program, err := Link(ctx, 7, 8)

	assert.Nil(t, program)
	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "varying mismatch", linkErr.Log)
	assert.Len(t, ctx.dropped, 1)
	assert.Empty(t, ctx.deleted)
}

func TestLink_NoProgramObject(t *testing.T) {
	ctx := newFakeContext()
	ctx.failCreateProgram = true

	_, err := Link(ctx, 7, 8)

	assert.ErrorIs(t, err, ErrCreateProgram)
}

func TestBuild_VertexFailureNeverLinks(t *testing.T) {
	ctx := newFakeContext()
	ctx.failCompile[StageVertex] = true

	program, err := Build(ctx, FillSource(GLSL330))

	assert.Nil(t, program)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, StageVertex, compileErr.Stage)
	assert.Equal(t, []string{"createShader:vertex", "compile"}, ctx.calls)
	assert.Empty(t, ctx.linked)
}

func TestBuild_FragmentFailureReleasesVertex(t *testing.T) {
	ctx := newFakeContext()
	ctx.failCompile[StageFragment] = true

	_, err := Build(ctx, FillSource(GLSL330))

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, StageFragment, compileErr.Stage)
	assert.ElementsMatch(t, []ShaderID{1, 2}, ctx.deleted)
	assert.NotContains(t, ctx.calls, "createProgram")
}

func TestBuild_LinkFailureReleasesEverything(t *testing.T) {
	ctx := newFakeContext()
	ctx.failLink = true

	_, err := Build(ctx, FillSource(GLSL330))

	var linkErr *LinkError
	assert.True(t, errors.As(err, &linkErr))
	assert.ElementsMatch(t, []ShaderID{1, 2}, ctx.deleted)
	assert.Len(t, ctx.dropped, 1)
}

func TestBuild_Success(t *testing.T) {
	ctx := newFakeContext()

	program, err := Build(ctx, FillSource(GLSLES100))
	require.NoError(t, err)

	pos, ok := program.Attrib(PositionAttrib)
	assert.True(t, ok)
	assert.Equal(t, Location(0), pos)
	color, ok := program.Uniform(ColorUniform)
	assert.True(t, ok)
	assert.Equal(t, Location(3), color)

	_, ok = program.Uniform("uMissing")
	assert.False(t, ok)
}

func TestProgram_LookupsAreCached(t *testing.T) {
	ctx := newFakeContext()
	program, err := Build(ctx, FillSource(GLSL330))
	require.NoError(t, err)

	program.Attrib(PositionAttrib)
	program.Attrib(PositionAttrib)
	program.Uniform(ColorUniform)
	program.Uniform(ColorUniform)

	assert.Equal(t, 2, ctx.lookups)
}

func TestProgram_DeleteReleasesShaders(t *testing.T) {
	ctx := newFakeContext()
	program, err := Build(ctx, FillSource(GLSL330))
	require.NoError(t, err)
	id := program.ID()

	program.Delete()
	program.Delete()

	assert.Equal(t, []ProgramID{id}, ctx.dropped)
	assert.ElementsMatch(t, []ShaderID{1, 2}, ctx.deleted)
	_, ok := program.Attrib(PositionAttrib)
	assert.False(t, ok)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
}
