package gfx

const floatsPerVertex = 2

// Geometry is a single triangle in normalized device coordinates,
// x0, y0, x1, y1, x2, y2.
type Geometry [6]float32

// Triangle is the shape the program draws.
var Triangle = Geometry{
	0.0, 0.5,
	-0.5, -0.5,
	0.5, -0.5,
}

// VertexCount is always three.
func (g Geometry) VertexCount() int {
	return len(g) / floatsPerVertex
}

// Floats returns a fresh copy of the coordinates for upload.
func (g Geometry) Floats() []float32 {
	out := make([]float32, len(g))
	copy(out, g[:])
	return out
}
