// Package softgl is a headless rendering device. It accepts pass-through
// shader programs (one position attribute, color taken from the first vec4
// uniform of the fragment stage), checks their structure the way a driver
// would report it, and rasterizes triangles into an image.RGBA.
package softgl

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/kjkrol/tricolor/pkg/shader"
	"golang.org/x/image/vector"
)

type shaderObject struct {
	stage   shader.Stage
	source  string
	result  *compiled
	log     string
	deleted bool
	// attached counts programs still referencing the object; deletion is
	// deferred until it drops to zero.
	attached int
}

type programObject struct {
	shaders  []shader.ShaderID
	linked   bool
	log      string
	attribs  map[string]shader.Location
	uniforms map[string]shader.Location
	// colorUniform is the uniform the fragment stage writes out.
	colorUniform shader.Location
	values       map[shader.Location][4]float32
}

type attribBinding struct {
	buffer uint32
	size   int
}

// Device implements the rendering calls of gfx.Device in software.
type Device struct {
	dialect shader.Dialect
	img     *image.RGBA
	view    image.Rectangle
	clear   color.NRGBA

	nextID   uint32
	shaders  map[shader.ShaderID]*shaderObject
	programs map[shader.ProgramID]*programObject
	buffers  map[uint32][]float32
	bindings map[shader.Location]attribBinding
	current  shader.ProgramID

	draws int
}

// NewDevice returns a device drawing into a width x height image.
func NewDevice(width, height int, dialect shader.Dialect) *Device {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Device{
		dialect:  dialect,
		img:      img,
		view:     img.Bounds(),
		clear:    color.NRGBA{A: 0},
		shaders:  make(map[shader.ShaderID]*shaderObject),
		programs: make(map[shader.ProgramID]*programObject),
		buffers:  make(map[uint32][]float32),
		bindings: make(map[shader.Location]attribBinding),
	}
}

func (d *Device) Dialect() shader.Dialect { return d.dialect }

// Image is the framebuffer. It is owned by the device.
func (d *Device) Image() *image.RGBA { return d.img }

// Triangles counts the triangles rasterized so far.
func (d *Device) Triangles() int { return d.draws }

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) Viewport(x, y, width, height int) {
	// GL viewports are bottom-left based.
	b := d.img.Bounds()
	d.view = image.Rect(x, b.Dy()-y-height, x+width, b.Dy()-y).Intersect(b)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.clear = toNRGBA([4]float32{r, g, b, a})
}

func (d *Device) Clear() {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(d.clear), image.Point{}, draw.Src)
}

func (d *Device) CreateBuffer() uint32 {
	id := d.id()
	d.buffers[id] = nil
	return id
}

func (d *Device) BufferData(buffer uint32, data []float32) {
	if _, ok := d.buffers[buffer]; !ok {
		return
	}
	d.buffers[buffer] = append([]float32(nil), data...)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	delete(d.buffers, buffer)
	for loc, b := range d.bindings {
		if b.buffer == buffer {
			delete(d.bindings, loc)
		}
	}
}

func (d *Device) VertexAttribPointer(loc shader.Location, buffer uint32, size int) {
	if loc < 0 || size < 2 || size > 4 {
		return
	}
	d.bindings[loc] = attribBinding{buffer: buffer, size: size}
}

func (d *Device) UseProgram(program shader.ProgramID) {
	p := d.programs[program]
	if p == nil || !p.linked {
		d.current = 0
		return
	}
	d.current = program
}

func (d *Device) Uniform4f(loc shader.Location, r, g, b, a float32) {
	p := d.programs[d.current]
	if p == nil || loc < 0 {
		return
	}
	p.values[loc] = [4]float32{r, g, b, a}
}

// DrawTriangles fills count/3 triangles starting at vertex first, reading
// positions from the buffer bound to the program's first attribute. All
// triangles of one call share a single coverage mask, so edges inside a
// mesh are not blended twice.
func (d *Device) DrawTriangles(first, count int) {
	p := d.programs[d.current]
	if p == nil || first < 0 || count < 3 {
		return
	}
	binding, ok := d.bindings[0]
	if !ok {
		return
	}
	data := d.buffers[binding.buffer]
	fill := image.NewUniform(toNRGBA(p.values[p.colorUniform]))

	w, h := d.view.Dx(), d.view.Dy()
	if w == 0 || h == 0 {
		return
	}
	vertex := func(i int) (float32, float32, bool) {
		off := i * binding.size
		if off+1 >= len(data) {
			return 0, 0, false
		}
		x := (data[off] + 1) / 2 * float32(w)
		y := (1 - data[off+1]) / 2 * float32(h)
		return x, y, true
	}

	r := vector.NewRasterizer(w, h)
	triangles := 0
	for tri := first; tri+3 <= first+count; tri += 3 {
		x0, y0, ok0 := vertex(tri)
		x1, y1, ok1 := vertex(tri + 1)
		x2, y2, ok2 := vertex(tri + 2)
		if !ok0 || !ok1 || !ok2 {
			break
		}
		r.MoveTo(x0, y0)
		r.LineTo(x1, y1)
		r.LineTo(x2, y2)
		r.ClosePath()
		triangles++
	}
	if triangles == 0 {
		return
	}
	r.Draw(d.img, d.view, fill, image.Point{})
	d.draws += triangles
}

func toNRGBA(c [4]float32) color.NRGBA {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
