package platform

import (
	"image"
	"time"

	"github.com/kjkrol/tricolor/pkg/shader"
	"github.com/kjkrol/tricolor/pkg/softgl"
)

// HeadlessWindow is an offscreen surface backed by a software device.
// Events are injected with Push.
type HeadlessWindow struct {
	dev    *softgl.Device
	width  int
	height int
	events chan Event
	alerts []string
	frames int
	shown  bool
	closed bool
}

func NewHeadlessWindowWrapper(conf WindowConfig) *HeadlessWindow {
	return &HeadlessWindow{
		dev:    softgl.NewDevice(conf.Width, conf.Height, shader.GLSL330),
		width:  conf.Width,
		height: conf.Height,
		events: make(chan Event, 64),
	}
}

// Push queues e for NextEventTimeout. It reports false when the queue is full.
func (w *HeadlessWindow) Push(e Event) bool {
	select {
	case w.events <- e:
		return true
	default:
		return false
	}
}

func (w *HeadlessWindow) Show() {
	if w.shown {
		return
	}
	w.shown = true
	w.Push(CreateNotify{})
}

func (w *HeadlessWindow) Close() {
	w.closed = true
}

func (w *HeadlessWindow) NextEventTimeout(timeoutMs int) Event {
	if timeoutMs <= 0 {
		select {
		case e := <-w.events:
			return e
		default:
			return TimeoutEvent{}
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case e := <-w.events:
		return e
	case <-timer.C:
		return TimeoutEvent{}
	}
}

func (w *HeadlessWindow) GLContext() any {
	if w.closed {
		return nil
	}
	return w.dev
}

func (w *HeadlessWindow) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *HeadlessWindow) BeginFrame() {}

func (w *HeadlessWindow) EndFrame() {
	w.frames++
}

func (w *HeadlessWindow) Alert(msg string) {
	w.alerts = append(w.alerts, msg)
}

// Frames counts completed frames.
func (w *HeadlessWindow) Frames() int { return w.frames }

func (w *HeadlessWindow) Alerts() []string { return w.alerts }

// Image is the framebuffer of the last frame.
func (w *HeadlessWindow) Image() *image.RGBA { return w.dev.Image() }
