package gfx

import (
	"fmt"

	"github.com/kjkrol/tricolor/internal/logging"
	"github.com/kjkrol/tricolor/pkg/shader"
)

type Renderer interface {
	SetColor(c Color)
	Draw()
	Close()
}

type RendererFactory func(dev Device) (Renderer, error)

// NewRendererFactory builds a TriangleRenderer per device.
func NewRendererFactory(conf RendererConfig) RendererFactory {
	return func(dev Device) (Renderer, error) {
		return NewRenderer(dev, conf)
	}
}

// TriangleRenderer draws one triangle in a single color, plus the toolbar
// swatches when configured.
type TriangleRenderer struct {
	dev     Device
	program *shader.Program

	position shader.Location
	color    shader.Location

	triangleVbo uint32
	toolbarVbo  uint32
	vertexCount int
	toolbar     *Toolbar

	current Color
}

// NewRenderer builds the fill program, uploads the geometry and binds the
// position attribute. The device must stay current for the renderer's life.
func NewRenderer(dev Device, conf RendererConfig) (*TriangleRenderer, error) {
	if dev == nil {
		return nil, ErrContextUnavailable
	}
	src := shader.FillSource(dev.Dialect())
	if conf.Source != nil {
		src = *conf.Source
	}
	program, err := shader.Build(dev, src)
	if err != nil {
		return nil, fmt.Errorf("initialize the shader program: %w", err)
	}

	position, ok := program.Attrib(shader.PositionAttrib)
	if !ok {
		program.Delete()
		return nil, fmt.Errorf("attribute %s: %w", shader.PositionAttrib, ErrMissingInput)
	}
	color, ok := program.Uniform(shader.ColorUniform)
	if !ok {
		program.Delete()
		return nil, fmt.Errorf("uniform %s: %w", shader.ColorUniform, ErrMissingInput)
	}

	if conf.Geometry == (Geometry{}) {
		conf.Geometry = Triangle
	}
	r := &TriangleRenderer{
		dev:         dev,
		program:     program,
		position:    position,
		color:       color,
		vertexCount: conf.Geometry.VertexCount(),
		toolbar:     conf.Toolbar,
		current:     InitialColor,
	}

	r.triangleVbo = dev.CreateBuffer()
	dev.BufferData(r.triangleVbo, conf.Geometry.Floats())
	if verts := conf.Toolbar.Vertices(); len(verts) > 0 {
		r.toolbarVbo = dev.CreateBuffer()
		dev.BufferData(r.toolbarVbo, verts)
	}
	dev.VertexAttribPointer(position, r.triangleVbo, floatsPerVertex)
	dev.UseProgram(program.ID())

	if conf.Width > 0 && conf.Height > 0 {
		dev.Viewport(0, 0, conf.Width, conf.Height)
	}
	cc := conf.ClearColor
	dev.ClearColor(cc[0], cc[1], cc[2], cc[3])
	r.SetColor(r.current)

	logging.Logger().Info("renderer ready", "dialect", dev.Dialect(), "program", program.ID())
	return r, nil
}

// SetColor pushes c to the color uniform.
func (r *TriangleRenderer) SetColor(c Color) {
	r.current = c
	r.dev.Uniform4f(r.color, c[0], c[1], c[2], c[3])
}

// Draw clears the frame and draws the scene. It only reads state, so repeated
// calls produce the same frame.
func (r *TriangleRenderer) Draw() {
	r.dev.Clear()
	if r.toolbarVbo != 0 {
		r.dev.VertexAttribPointer(r.position, r.toolbarVbo, floatsPerVertex)
		for i, b := range r.toolbar.Buttons() {
			s := b.Swatch()
			r.dev.Uniform4f(r.color, s[0], s[1], s[2], s[3])
			r.dev.DrawTriangles(i*6, 6)
		}
		r.dev.VertexAttribPointer(r.position, r.triangleVbo, floatsPerVertex)
		r.dev.Uniform4f(r.color, r.current[0], r.current[1], r.current[2], r.current[3])
	}
	r.dev.DrawTriangles(0, r.vertexCount)
}

func (r *TriangleRenderer) Close() {
	if r.program == nil {
		return
	}
	r.dev.DeleteBuffer(r.triangleVbo)
	if r.toolbarVbo != 0 {
		r.dev.DeleteBuffer(r.toolbarVbo)
	}
	r.program.Delete()
	r.program = nil
}
