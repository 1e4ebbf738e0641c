package platform

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

// PlatformWindowWrapper is a display surface together with the rendering
// context bound to it. All methods must be called from the thread that
// created the wrapper.
type PlatformWindowWrapper interface {
	Show()
	Close()
	NextEventTimeout(timeoutMs int) Event
	// GLContext returns the native context handle, or nil when the surface
	// could not provide one.
	GLContext() any
	FramebufferSize() (int, int)
	BeginFrame()
	EndFrame()
	// Alert shows a blocking, user-visible message.
	Alert(msg string)
}
