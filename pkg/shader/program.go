package shader

// Program is a linked program together with the two shaders it owns.
type Program struct {
	ctx      Context
	id       ProgramID
	vertex   ShaderID
	fragment ShaderID

	attribs  map[string]Location
	uniforms map[string]Location
}

func newProgram(ctx Context, id ProgramID, vertex, fragment ShaderID) *Program {
	return &Program{
		ctx:      ctx,
		id:       id,
		vertex:   vertex,
		fragment: fragment,
		attribs:  make(map[string]Location),
		uniforms: make(map[string]Location),
	}
}

func (p *Program) ID() ProgramID {
	if p == nil {
		return 0
	}
	return p.id
}

// Attrib resolves an attribute location by name. ok is false when the
// attribute is not active in the program.
func (p *Program) Attrib(name string) (Location, bool) {
	if p == nil || p.id == 0 {
		return -1, false
	}
	loc, ok := p.attribs[name]
	if !ok {
		loc = p.ctx.AttribLocation(p.id, name)
		p.attribs[name] = loc
	}
	return loc, loc >= 0
}

// Uniform resolves a uniform location by name.
func (p *Program) Uniform(name string) (Location, bool) {
	if p == nil || p.id == 0 {
		return -1, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		loc = p.ctx.UniformLocation(p.id, name)
		p.uniforms[name] = loc
	}
	return loc, loc >= 0
}

// Delete releases the program and its shaders. Safe to call twice.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.ctx.DeleteProgram(p.id)
	p.ctx.DeleteShader(p.vertex)
	p.ctx.DeleteShader(p.fragment)
	p.id, p.vertex, p.fragment = 0, 0, 0
	p.attribs = nil
	p.uniforms = nil
}
