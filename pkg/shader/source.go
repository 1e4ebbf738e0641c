package shader

import "fmt"

// Source is the vertex/fragment text pair a program is built from.
type Source struct {
	Vertex   string
	Fragment string
}

// Dialect names the shading language version a context accepts.
type Dialect int

const (
	// GLSL330 is the desktop OpenGL 3.3 core profile.
	GLSL330 Dialect = iota
	// GLSLES100 is WebGL 1.
	GLSLES100
)

func (d Dialect) String() string {
	switch d {
	case GLSL330:
		return "glsl330"
	case GLSLES100:
		return "glsles100"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Names of the inputs every fill program exposes.
const (
	PositionAttrib = "aVertexPosition"
	ColorUniform   = "uColor"
)

const fillVertex330 = `#version 330 core
in vec2 aVertexPosition;
void main() {
    gl_Position = vec4(aVertexPosition, 0.0, 1.0);
}
`

const fillFragment330 = `#version 330 core
uniform vec4 uColor;
out vec4 fragColor;
void main() {
    fragColor = uColor;
}
`

const fillVertex100 = `
attribute vec4 aVertexPosition;
void main() {
    gl_Position = aVertexPosition;
}
`

const fillFragment100 = `
precision mediump float;
uniform vec4 uColor;
void main() {
    gl_FragColor = uColor;
}
`

// FillSource returns the solid-color program for d: positions from
// aVertexPosition, color from uColor.
func FillSource(d Dialect) Source {
	if d == GLSLES100 {
		return Source{Vertex: fillVertex100, Fragment: fillFragment100}
	}
	return Source{Vertex: fillVertex330, Fragment: fillFragment330}
}
