package gfx

import "image/color"

// Color is a normalized r, g, b, a vector.
type Color [4]float32

var (
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Black = Color{0, 0, 0, 1}
)

// NewColor clamps each component into [0,1].
func NewColor(r, g, b, a float32) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: unit16(c[0]),
		G: unit16(c[1]),
		B: unit16(c[2]),
		A: unit16(c[3]),
	}.RGBA()
}

func clamp01(v float32) float32 {
	switch {
	case v != v, v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func unit16(v float32) uint16 {
	return uint16(clamp01(v)*65535 + 0.5)
}
