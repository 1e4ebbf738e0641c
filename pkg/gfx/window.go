package gfx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/kjkrol/tricolor/internal/platform"
	"github.com/kjkrol/tricolor/pkg/shader"
)

type WindowConfig struct {
	PositionX  int
	PositionY  int
	Width      int
	Height     int
	Title      string
	ClearColor Color
	// Toolbar draws clickable color swatches along the bottom edge.
	Toolbar bool
	// Headless renders offscreen through the software device.
	Headless bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{PositionX: w.PositionX, PositionY: w.PositionY, Width: w.Width, Height: w.Height, Title: w.Title}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	device             Device
	renderer           Renderer
	controller         *Controller
	toolbar            *Toolbar
	ctx                context.Context
	cancel             context.CancelFunc
}

const maxEventWait = 50 * time.Millisecond

// NewWindow opens the display surface, acquires its rendering context and
// builds the renderer. Failures are shown to the user with Alert before
// they are returned.
func NewWindow(conf WindowConfig) (*Window, error) {
	var wrapper platform.PlatformWindowWrapper
	if conf.Headless {
		wrapper = platform.NewHeadlessWindowWrapper(conf.convert())
	} else {
		var err error
		wrapper, err = platform.NewPlatformWindowWrapper(conf.convert())
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrContextUnavailable, err)
			platform.Alert(AlertMessage(err))
			return nil, err
		}
	}
	w, err := newWindow(wrapper, conf, nil)
	if err != nil {
		wrapper.Alert(AlertMessage(err))
		wrapper.Close()
		return nil, err
	}
	return w, nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, conf WindowConfig, factory RendererFactory) (*Window, error) {
	dev, err := NewDevice(wrapper.GLContext())
	if err != nil {
		return nil, err
	}
	w := &Window{
		platformWinWrapper: wrapper,
		device:             dev,
	}
	if conf.Toolbar {
		w.toolbar = NewToolbar(conf.Width, conf.Height)
	}
	if factory == nil {
		fbWidth, fbHeight := wrapper.FramebufferSize()
		rc := DefaultRendererConfig(fbWidth, fbHeight)
		rc.Toolbar = w.toolbar
		if cc := conf.ClearColor; cc != (Color{}) {
			rc.ClearColor = NewColor(cc[0], cc[1], cc[2], cc[3])
		}
		factory = NewRendererFactory(rc)
	}
	w.renderer, err = factory(dev)
	if err != nil {
		return nil, err
	}
	w.controller = NewController(w)
	w.ctx, w.cancel = context.WithCancel(context.Background())
	Logger().Info("window ready", "title", conf.Title, "width", conf.Width, "height", conf.Height, "headless", conf.Headless)
	return w, nil
}

// AlertMessage phrases an initialization error for the user.
func AlertMessage(err error) string {
	var compileErr *shader.CompileError
	var linkErr *shader.LinkError
	switch {
	case errors.Is(err, ErrContextUnavailable):
		return "Unable to initialize the rendering context. Your system may not support it.\n" + err.Error()
	case errors.As(err, &compileErr):
		return "An error occurred compiling the shaders: " + compileErr.Log
	case errors.As(err, &linkErr):
		return "Unable to initialize the shader program: " + linkErr.Log
	default:
		return "Unable to initialize the shader program: " + err.Error()
	}
}

// Alert shows msg to the user without a window.
func Alert(msg string) {
	platform.Alert(msg)
}

func (w *Window) Controller() *Controller {
	return w.controller
}

// Show maps the window and draws the first frame with the initial color.
func (w *Window) Show() {
	w.platformWinWrapper.Show()
	w.controller.Start()
}

// Dispatch applies a trigger as if its control had been clicked.
func (w *Window) Dispatch(t Trigger) error {
	return w.controller.Dispatch(t)
}

func (w *Window) SetColor(c Color) {
	if w.renderer != nil {
		w.renderer.SetColor(c)
	}
}

// Redraw renders one frame synchronously.
func (w *Window) Redraw() {
	if w.renderer == nil {
		return
	}
	w.platformWinWrapper.BeginFrame()
	w.renderer.Draw()
	w.platformWinWrapper.EndFrame()
}

// Snapshot returns the framebuffer of a headless window.
func (w *Window) Snapshot() (*image.RGBA, bool) {
	hw, ok := w.platformWinWrapper.(*platform.HeadlessWindow)
	if !ok {
		return nil, false
	}
	return hw.Image(), true
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

// ListenEvents runs the event loop until Stop, a window close request or
// Escape. handleEvent, if set, sees every event after the window has
// handled it.
func (w *Window) ListenEvents(handleEvent func(event Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		if w.ctx.Err() != nil {
			return
		}
		w.handleEvent(event)
		if handleEvent != nil {
			handleEvent(event)
		}
	}
	timeoutMs := int(maxEventWait / time.Millisecond)

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
			strategy.Consume(poll, handle, timeoutMs)
		}
	}
}

func (w *Window) handleEvent(event Event) {
	switch e := event.(type) {
	case Expose, CreateNotify:
		w.Redraw()
	case DestroyNotify:
		w.Stop()
	case KeyPress:
		if e.Label == "Escape" {
			w.Stop()
			return
		}
		w.dispatchLabel(e.Label)
	case ButtonPress:
		if e.Button != leftButton {
			return
		}
		if t, ok := w.toolbar.HitTest(e.X, e.Y); ok {
			w.dispatch(t)
		}
	case TriggerPress:
		w.dispatchLabel(e.ID)
	}
}

func (w *Window) dispatchLabel(label string) {
	t, err := ParseTrigger(label)
	if err != nil {
		Logger().Debug("input ignored", "label", label)
		return
	}
	w.dispatch(t)
}

func (w *Window) dispatch(t Trigger) {
	if err := w.controller.Dispatch(t); err != nil {
		Logger().Warn("dispatch failed", "trigger", t, "error", err)
	}
}
