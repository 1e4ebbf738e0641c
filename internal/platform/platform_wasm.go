//go:build js && wasm

package platform

import (
	"syscall/js"
	"time"
)

const canvasID = "glCanvas"

// TriggerIDs are the page buttons forwarded as TriggerPress events.
var TriggerIDs = []string{"color1", "color2", "color3", "resetColor"}

var triggerCaptions = map[string]string{
	"color1":     "Red",
	"color2":     "Green",
	"color3":     "Blue",
	"resetColor": "Reset",
}

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

type wasmWindowWrapper struct {
	canvas    js.Value
	ctx       js.Value
	events    chan Event
	closed    bool
	listeners []listener
}

// NewPlatformWindowWrapper reuses the page's #glCanvas and trigger buttons,
// creating whichever is missing.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	doc := js.Global().Get("document")
	if conf.Title != "" {
		doc.Set("title", conf.Title)
	}

	canvas := doc.Call("getElementById", canvasID)
	if canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("id", canvasID)
		doc.Get("body").Call("appendChild", canvas)
	}
	canvas.Set("width", conf.Width)
	canvas.Set("height", conf.Height)
	canvas.Call("setAttribute", "tabindex", "0")

	w := &wasmWindowWrapper{
		canvas: canvas,
		ctx:    canvas.Call("getContext", "webgl"),
		events: make(chan Event, 64),
	}

	addEventListener := func(target js.Value, event string, f func(js.Value)) {
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			f(args[0])
			return nil
		})
		target.Call("addEventListener", event, fn)
		w.listeners = append(w.listeners, listener{target: target, typ: event, fn: fn})
	}
	emit := w.emit

	for _, id := range TriggerIDs {
		button := doc.Call("getElementById", id)
		if button.IsNull() {
			button = doc.Call("createElement", "button")
			button.Set("id", id)
			button.Set("textContent", triggerCaptions[id])
			doc.Get("body").Call("appendChild", button)
		}
		id := id
		addEventListener(button, "click", func(js.Value) {
			emit(TriggerPress{ID: id})
		})
	}
	addEventListener(doc, "keydown", func(e js.Value) {
		emit(KeyPress{Label: e.Get("key").String()})
	})
	addEventListener(canvas, "mousedown", func(e js.Value) {
		rect := canvas.Call("getBoundingClientRect")
		x := e.Get("clientX").Float() - rect.Get("left").Float()
		y := e.Get("clientY").Float() - rect.Get("top").Float()
		emit(ButtonPress{Button: uint32(e.Get("button").Int() + 1), X: int(x + 0.5), Y: int(y + 0.5)})
	})

	return w, nil
}

func (w *wasmWindowWrapper) Show() {
	w.canvas.Call("focus")
	w.emit(CreateNotify{})
}

func (w *wasmWindowWrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for _, l := range w.listeners {
		l.target.Call("removeEventListener", l.typ, l.fn)
		l.fn.Release()
	}
	w.listeners = nil
	w.emit(DestroyNotify{})
}

func (w *wasmWindowWrapper) emit(e Event) {
	select {
	case w.events <- e:
	default:
		// drop if the loop is not keeping up
	}
}

func (w *wasmWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	select {
	case e := <-w.events:
		return e
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return TimeoutEvent{}
	}
}

func (w *wasmWindowWrapper) GLContext() any {
	if w.ctx.IsNull() || w.ctx.IsUndefined() {
		return nil
	}
	return w.ctx
}

func (w *wasmWindowWrapper) FramebufferSize() (int, int) {
	return w.canvas.Get("width").Int(), w.canvas.Get("height").Int()
}

// The browser presents the drawing buffer after each task.
func (w *wasmWindowWrapper) BeginFrame() {}
func (w *wasmWindowWrapper) EndFrame()   {}

func (w *wasmWindowWrapper) Alert(msg string) {
	Alert(msg)
}

func Alert(msg string) {
	js.Global().Call("alert", msg)
}
