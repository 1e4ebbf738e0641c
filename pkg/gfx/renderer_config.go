package gfx

import "github.com/kjkrol/tricolor/pkg/shader"

// RendererConfig describes what the triangle renderer draws.
// Source, when set, replaces the fill program of the device's dialect and
// must expose aVertexPosition and uColor.
type RendererConfig struct {
	Source     *shader.Source
	Width      int
	Height     int
	ClearColor Color
	Geometry   Geometry
	Toolbar    *Toolbar
}

// DefaultRendererConfig draws Triangle on black.
func DefaultRendererConfig(width, height int) RendererConfig {
	return RendererConfig{
		Width:      width,
		Height:     height,
		ClearColor: Black,
		Geometry:   Triangle,
	}
}
