package softgl

import (
	"fmt"
	"strings"

	"github.com/kjkrol/tricolor/pkg/shader"
)

func (d *Device) CreateShader(stage shader.Stage) shader.ShaderID {
	if stage != shader.StageVertex && stage != shader.StageFragment {
		return 0
	}
	id := shader.ShaderID(d.id())
	d.shaders[id] = &shaderObject{stage: stage}
	return id
}

func (d *Device) ShaderSource(id shader.ShaderID, source string) {
	if s := d.shaders[id]; s != nil {
		s.source = source
	}
}

func (d *Device) CompileShader(id shader.ShaderID) {
	s := d.shaders[id]
	if s == nil {
		return
	}
	s.result, s.log = compileSource(d.dialect, s.stage, s.source)
}

func (d *Device) CompileStatus(id shader.ShaderID) bool {
	s := d.shaders[id]
	return s != nil && s.result != nil
}

func (d *Device) ShaderInfoLog(id shader.ShaderID) string {
	if s := d.shaders[id]; s != nil {
		return s.log
	}
	return ""
}

func (d *Device) DeleteShader(id shader.ShaderID) {
	s := d.shaders[id]
	if s == nil {
		return
	}
	s.deleted = true
	if s.attached == 0 {
		delete(d.shaders, id)
	}
}

func (d *Device) CreateProgram() shader.ProgramID {
	id := shader.ProgramID(d.id())
	d.programs[id] = &programObject{colorUniform: -1}
	return id
}

func (d *Device) AttachShader(program shader.ProgramID, id shader.ShaderID) {
	p, s := d.programs[program], d.shaders[id]
	if p == nil || s == nil {
		return
	}
	for _, existing := range p.shaders {
		if existing == id {
			return
		}
	}
	p.shaders = append(p.shaders, id)
	s.attached++
}

func (d *Device) LinkProgram(program shader.ProgramID) {
	p := d.programs[program]
	if p == nil {
		return
	}
	p.linked = false
	p.attribs = make(map[string]shader.Location)
	p.uniforms = make(map[string]shader.Location)
	p.values = make(map[shader.Location][4]float32)
	p.colorUniform = -1

	var vertex, fragment *compiled
	var log logWriter
	for _, id := range p.shaders {
		s := d.shaders[id]
		switch {
		case s == nil:
			log.errorf(0, "attached shader %d no longer exists", id)
		case s.result == nil:
			log.errorf(0, "%s shader is not compiled", s.stage)
		case s.stage == shader.StageVertex && vertex != nil,
			s.stage == shader.StageFragment && fragment != nil:
			log.errorf(0, "more than one %s shader attached", s.stage)
		case s.stage == shader.StageVertex:
			vertex = s.result
		default:
			fragment = s.result
		}
	}
	if log.Len() > 0 {
		p.log = log.String()
		return
	}
	if vertex == nil || fragment == nil {
		p.log = "ERROR: program needs one vertex and one fragment shader\n"
		return
	}
	if vertex.version != fragment.version {
		p.log = fmt.Sprintf("ERROR: version mismatch: vertex %s, fragment %s\n", vertex.version, fragment.version)
		return
	}

	produced := make(map[string]string, len(vertex.outputs))
	for _, out := range vertex.outputs {
		produced[out.name] = out.typ
	}
	for _, in := range fragment.inputs {
		typ, ok := produced[in.name]
		if !ok {
			log.errorf(0, "fragment input '%s' is not written by the vertex stage", in.name)
		} else if typ != in.typ {
			log.errorf(0, "type mismatch for '%s': %s vs %s", in.name, typ, in.typ)
		}
	}

	uniformTypes := make(map[string]string)
	next := shader.Location(0)
	for _, stage := range []*compiled{vertex, fragment} {
		for _, u := range stage.uniforms {
			if typ, seen := uniformTypes[u.name]; seen {
				if typ != u.typ {
					log.errorf(0, "uniform '%s' declared as %s and %s", u.name, typ, u.typ)
				}
				continue
			}
			uniformTypes[u.name] = u.typ
			p.uniforms[u.name] = next
			next++
		}
	}
	if log.Len() > 0 {
		p.log = log.String()
		return
	}

	for i, in := range vertex.inputs {
		p.attribs[in.name] = shader.Location(i)
	}
	for _, u := range fragment.uniforms {
		if u.typ == "vec4" {
			p.colorUniform = p.uniforms[u.name]
			break
		}
	}
	p.log = ""
	p.linked = true
}

func (d *Device) LinkStatus(program shader.ProgramID) bool {
	p := d.programs[program]
	return p != nil && p.linked
}

func (d *Device) ProgramInfoLog(program shader.ProgramID) string {
	if p := d.programs[program]; p != nil {
		return p.log
	}
	return ""
}

func (d *Device) DeleteProgram(program shader.ProgramID) {
	p := d.programs[program]
	if p == nil {
		return
	}
	for _, id := range p.shaders {
		s := d.shaders[id]
		if s == nil {
			continue
		}
		s.attached--
		if s.deleted && s.attached == 0 {
			delete(d.shaders, id)
		}
	}
	delete(d.programs, program)
	if d.current == program {
		d.current = 0
	}
}

func (d *Device) AttribLocation(program shader.ProgramID, name string) shader.Location {
	p := d.programs[program]
	if p == nil || !p.linked || strings.HasPrefix(name, "gl_") {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(program shader.ProgramID, name string) shader.Location {
	p := d.programs[program]
	if p == nil || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Shaders reports how many shader objects are still alive.
func (d *Device) Shaders() int { return len(d.shaders) }

// Programs reports how many program objects are still alive.
func (d *Device) Programs() int { return len(d.programs) }
