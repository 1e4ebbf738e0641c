package gfx

import "github.com/kjkrol/tricolor/internal/logging"

// Surface is where the controller pushes colors and requests frames.
// Window implements it.
type Surface interface {
	SetColor(c Color)
	Redraw()
}

// Controller owns the current fill color. It is not safe for concurrent use;
// all calls come from the event loop.
type Controller struct {
	color   Color
	surface Surface
}

func NewController(surface Surface) *Controller {
	return &Controller{color: InitialColor, surface: surface}
}

func (c *Controller) Color() Color {
	return c.color
}

// Start pushes the initial color and draws the first frame.
func (c *Controller) Start() {
	c.surface.SetColor(c.color)
	c.surface.Redraw()
}

// Dispatch replaces the color with the one bound to t and redraws.
// Unknown triggers leave the state untouched.
func (c *Controller) Dispatch(t Trigger) error {
	next, ok := t.Color()
	if !ok {
		return ErrUnknownTrigger
	}
	c.color = next
	c.surface.SetColor(next)
	c.surface.Redraw()
	logging.Logger().Debug("trigger dispatched", "trigger", t, "color", next)
	return nil
}
