package gfx

import (
	"github.com/kjkrol/gokg/pkg/geom"
)

// Button is a clickable swatch in window pixel coordinates.
type Button struct {
	Trigger Trigger
	Rect    geom.AABB[uint32]
}

// Toolbar lays out one swatch per trigger along the bottom edge of the window.
type Toolbar struct {
	width   int
	height  int
	buttons []Button
}

var resetSwatch = Color{0.5, 0.5, 0.5, 1}

func NewToolbar(width, height int) *Toolbar {
	tb := &Toolbar{width: width, height: height}
	if width <= 0 || height <= 0 {
		return tb
	}
	n := len(Triggers)
	size := height / 10
	if size < 16 {
		size = 16
	}
	gap := size / 2
	if fit := (width - (n+1)*gap) / n; size > fit {
		size = fit
	}
	if size <= 0 {
		return tb
	}
	total := n*size + (n-1)*gap
	x := (width - total) / 2
	y := height - gap - size
	if y < 0 {
		y = 0
	}
	for _, t := range Triggers {
		origin := geom.NewVec(uint32(x), uint32(y))
		tb.buttons = append(tb.buttons, Button{
			Trigger: t,
			Rect:    geom.NewAABBAt(origin, uint32(size), uint32(size)),
		})
		x += size + gap
	}
	return tb
}

func (tb *Toolbar) Buttons() []Button {
	if tb == nil {
		return nil
	}
	return tb.buttons
}

// HitTest returns the trigger whose swatch contains the pixel x, y.
func (tb *Toolbar) HitTest(x, y int) (Trigger, bool) {
	if tb == nil || x < 0 || y < 0 {
		return 0, false
	}
	px, py := uint32(x), uint32(y)
	for _, b := range tb.buttons {
		if px >= b.Rect.TopLeft.X && px < b.Rect.BottomRight.X &&
			py >= b.Rect.TopLeft.Y && py < b.Rect.BottomRight.Y {
			return b.Trigger, true
		}
	}
	return 0, false
}

// Swatch is the color a button is painted with. Reset is drawn grey so it
// stays distinguishable from red.
func (b Button) Swatch() Color {
	if b.Trigger == TriggerReset {
		return resetSwatch
	}
	c, _ := b.Trigger.Color()
	return c
}

// Vertices returns two NDC triangles per button.
func (tb *Toolbar) Vertices() []float32 {
	if tb == nil || tb.width <= 0 || tb.height <= 0 {
		return nil
	}
	out := make([]float32, 0, len(tb.buttons)*6*floatsPerVertex)
	for _, b := range tb.buttons {
		x0, y0 := tb.toNDC(b.Rect.TopLeft.X, b.Rect.TopLeft.Y)
		x1, y1 := tb.toNDC(b.Rect.BottomRight.X, b.Rect.BottomRight.Y)
		out = append(out,
			x0, y0, x1, y0, x1, y1,
			x0, y0, x1, y1, x0, y1,
		)
	}
	return out
}

func (tb *Toolbar) toNDC(x, y uint32) (float32, float32) {
	return float32(x)/float32(tb.width)*2 - 1, 1 - float32(y)/float32(tb.height)*2
}
