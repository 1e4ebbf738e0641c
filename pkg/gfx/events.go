package gfx

import (
	"github.com/kjkrol/tricolor/internal/platform"
)

type Event interface{}

type Expose struct{}
type KeyPress struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}

// TriggerPress is a click on a page control, ID is the element id.
type TriggerPress struct {
	ID string
}
type CreateNotify struct{}
type DestroyNotify struct{}
type UnexpectedEvent struct{}

const leftButton = 1

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.TriggerPress:
		return TriggerPress{ID: e.ID}
	case platform.Expose:
		return Expose{}
	case platform.CreateNotify:
		return CreateNotify{}
	case platform.DestroyNotify:
		return DestroyNotify{}
	default:
		return UnexpectedEvent{}
	}
}
