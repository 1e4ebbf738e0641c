//go:build !js

package platform

import (
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindowWrapper struct {
	win    *glfw.Window
	events []Event
	closed bool
}

// NewPlatformWindowWrapper opens a hidden window with an OpenGL 3.3 core
// context. The calling goroutine must be locked to the main OS thread.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		win.SetPos(conf.PositionX, conf.PositionY)
	}

	w := &glfwWindowWrapper{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		w.events = append(w.events, KeyPress{Code: uint64(key), Label: keyLabel(key, scancode)})
	})
	win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		x, y := win.GetCursorPos()
		// GLFW counts buttons from 0, the rest of the code from 1 (left)
		w.events = append(w.events, ButtonPress{Button: uint32(button) + 1, X: int(x), Y: int(y)})
	})
	win.SetRefreshCallback(func(*glfw.Window) {
		w.events = append(w.events, Expose{})
	})
	win.SetCloseCallback(func(*glfw.Window) {
		w.events = append(w.events, DestroyNotify{})
	})
	win.MakeContextCurrent()
	return w, nil
}

func keyLabel(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyEscape:
		return "Escape"
	case glfw.KeyEnter:
		return "Enter"
	}
	return glfw.GetKeyName(key, scancode)
}

func (w *glfwWindowWrapper) Show() {
	w.win.Show()
	w.events = append(w.events, CreateNotify{})
}

func (w *glfwWindowWrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Destroy()
	glfw.Terminate()
}

func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if len(w.events) == 0 && !w.closed {
		if timeoutMs > 0 {
			glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
		} else {
			glfw.PollEvents()
		}
	}
	if len(w.events) == 0 {
		return TimeoutEvent{}
	}
	e := w.events[0]
	w.events = w.events[1:]
	return e
}

func (w *glfwWindowWrapper) GLContext() any {
	if w.closed {
		return nil
	}
	return w.win
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindowWrapper) BeginFrame() {
	w.win.MakeContextCurrent()
}

func (w *glfwWindowWrapper) EndFrame() {
	w.win.SwapBuffers()
}

func (w *glfwWindowWrapper) Alert(msg string) {
	Alert(msg)
}

// Alert writes to stderr; GLFW has no message box.
func Alert(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
