package gfx

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/tricolor/internal/platform"
	"github.com/kjkrol/tricolor/pkg/shader"
)

func newHeadlessWindow(t *testing.T, toolbar bool) (*Window, *platform.HeadlessWindow) {
	t.Helper()
	conf := WindowConfig{Width: 200, Height: 100, Title: "test", Toolbar: toolbar}
	wrapper := platform.NewHeadlessWindowWrapper(conf.convert())
	w, err := newWindow(wrapper, conf, nil)
	require.NoError(t, err)
	t.Cleanup(w.Close)
	return w, wrapper
}

func TestWindow_ShowDrawsInitialColor(t *testing.T) {
	w, wrapper := newHeadlessWindow(t, false)

	w.Show()

	img, ok := w.Snapshot()
	require.True(t, ok)
	assert.Equal(t, rgbaRed, img.RGBAAt(100, 60))
	assert.Equal(t, 1, wrapper.Frames())
}

func TestWindow_DispatchRedraws(t *testing.T) {
	w, wrapper := newHeadlessWindow(t, false)
	w.Show()

	require.NoError(t, w.Dispatch(TriggerBlue))

	img, _ := w.Snapshot()
	assert.Equal(t, rgbaBlue, img.RGBAAt(100, 60))
	assert.Equal(t, Blue, w.Controller().Color())
	assert.Equal(t, 2, wrapper.Frames())
}

func TestWindow_RedrawIsIdempotent(t *testing.T) {
	w, _ := newHeadlessWindow(t, true)
	w.Show()
	require.NoError(t, w.Dispatch(TriggerGreen))
	img, _ := w.Snapshot()
	first := bytes.Clone(img.Pix)

	w.Redraw()
	w.Redraw()

	assert.Equal(t, first, img.Pix)
}

func TestWindow_ListenEvents(t *testing.T) {
	w, wrapper := newHeadlessWindow(t, true)
	w.Show()
	for _, e := range []platform.Event{
		platform.KeyPress{Label: "2"},
		platform.ButtonPress{Button: 1, X: 112, Y: 84},
		platform.ButtonPress{Button: 3, X: 64, Y: 84},
		platform.KeyPress{Label: "x"},
		platform.TriggerPress{ID: "resetColor"},
		platform.TriggerPress{ID: "color2"},
		platform.Expose{},
		platform.KeyPress{Label: "Escape"},
		platform.KeyPress{Label: "3"},
	} {
		require.True(t, wrapper.Push(e))
	}
	var colors []Color
	var handled int

	w.ListenEvents(func(e Event) {
		handled++
		switch e.(type) {
		case KeyPress, ButtonPress, TriggerPress:
			colors = append(colors, w.Controller().Color())
		}
	}, DrainMax(4))

	assert.Equal(t, 9, handled, "create notify plus everything up to Escape")
	assert.Equal(t, []Color{Green, Blue, Blue, Blue, Red, Green, Green}, colors)
	img, _ := w.Snapshot()
	assert.Equal(t, rgbaGreen, img.RGBAAt(100, 60))
}

func TestWindow_DestroyNotifyStops(t *testing.T) {
	w, wrapper := newHeadlessWindow(t, false)
	require.True(t, wrapper.Push(platform.DestroyNotify{}))

	w.ListenEvents(nil, nil)

	assert.Equal(t, InitialColor, w.Controller().Color())
}

func TestWindow_ClickOutsideToolbar(t *testing.T) {
	w, wrapper := newHeadlessWindow(t, false)
	require.True(t, wrapper.Push(platform.ButtonPress{Button: 1, X: 64, Y: 84}))
	require.True(t, wrapper.Push(platform.DestroyNotify{}))

	w.ListenEvents(nil, DrainAll())

	assert.Equal(t, Red, w.Controller().Color())
}

func TestWindow_UnmappedInputLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	w, wrapper := newHeadlessWindow(t, false)
	require.True(t, wrapper.Push(platform.KeyPress{Label: "x"}))
	require.True(t, wrapper.Push(platform.DestroyNotify{}))

	w.ListenEvents(nil, DrainAll())

	assert.Contains(t, buf.String(), `level=DEBUG msg="input ignored" label=x`)
	assert.NotContains(t, buf.String(), "level=WARN")
}

func TestNewWindow_Headless(t *testing.T) {
	w, err := NewWindow(WindowConfig{Width: 40, Height: 40, Headless: true, ClearColor: Blue})
	require.NoError(t, err)
	defer w.Close()

	w.Show()

	img, ok := w.Snapshot()
	require.True(t, ok)
	assert.Equal(t, rgbaBlue, img.RGBAAt(1, 1))
	assert.Equal(t, rgbaRed, img.RGBAAt(20, 24))
}

func TestNewWindow_ClampsClearColor(t *testing.T) {
	conf := WindowConfig{Width: 40, Height: 40, ClearColor: Color{2, -1, 0, 1}}
	wrapper := platform.NewHeadlessWindowWrapper(conf.convert())
	w, err := newWindow(wrapper, conf, nil)
	require.NoError(t, err)
	defer w.Close()

	w.Redraw()

	img, _ := w.Snapshot()
	assert.Equal(t, rgbaRed, img.RGBAAt(1, 1))
}

func TestNewWindow_NoContext(t *testing.T) {
	conf := WindowConfig{Width: 8, Height: 8}
	wrapper := platform.NewHeadlessWindowWrapper(conf.convert())
	wrapper.Close()

	_, err := newWindow(wrapper, conf, nil)

	assert.ErrorIs(t, err, ErrContextUnavailable)
}

func TestNewWindow_FactoryError(t *testing.T) {
	conf := WindowConfig{Width: 8, Height: 8}
	wrapper := platform.NewHeadlessWindowWrapper(conf.convert())
	boom := errors.New("boom")

	_, err := newWindow(wrapper, conf, func(Device) (Renderer, error) { return nil, boom })

	assert.ErrorIs(t, err, boom)
}

func TestAlertMessage(t *testing.T) {
	assert.Contains(t, AlertMessage(fmt.Errorf("%w: no display", ErrContextUnavailable)), "Unable to initialize the rendering context")

	compileErr := fmt.Errorf("init: %w", &shader.CompileError{Stage: shader.StageFragment, Log: "ERROR: 0:1: bad"})
	assert.Equal(t, "An error occurred compiling the shaders: ERROR: 0:1: bad", AlertMessage(compileErr))

	linkErr := &shader.LinkError{Log: "version mismatch"}
	assert.Equal(t, "Unable to initialize the shader program: version mismatch", AlertMessage(linkErr))
}
