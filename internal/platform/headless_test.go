package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessWindow_Events(t *testing.T) {
	w := NewHeadlessWindowWrapper(WindowConfig{Width: 32, Height: 16})

	w.Show()
	w.Show()
	assert.True(t, w.Push(KeyPress{Label: "1"}))

	assert.Equal(t, CreateNotify{}, w.NextEventTimeout(10))
	assert.Equal(t, KeyPress{Label: "1"}, w.NextEventTimeout(0))
	assert.Equal(t, TimeoutEvent{}, w.NextEventTimeout(0))
}

func TestHeadlessWindow_TimeoutWaits(t *testing.T) {
	w := NewHeadlessWindowWrapper(WindowConfig{Width: 4, Height: 4})

	start := time.Now()
	e := w.NextEventTimeout(20)

	assert.Equal(t, TimeoutEvent{}, e)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestHeadlessWindow_ContextAndFrames(t *testing.T) {
	w := NewHeadlessWindowWrapper(WindowConfig{Width: 32, Height: 16})

	assert.NotNil(t, w.GLContext())
	width, height := w.FramebufferSize()
	assert.Equal(t, 32, width)
	assert.Equal(t, 16, height)
	assert.Equal(t, 32, w.Image().Bounds().Dx())

	w.BeginFrame()
	w.EndFrame()
	assert.Equal(t, 1, w.Frames())

	w.Alert("boom")
	assert.Equal(t, []string{"boom"}, w.Alerts())

	w.Close()
	assert.Nil(t, w.GLContext())
}

func TestHeadlessWindow_PushFull(t *testing.T) {
	w := NewHeadlessWindowWrapper(WindowConfig{Width: 1, Height: 1})
	for i := 0; i < cap(w.events); i++ {
		assert.True(t, w.Push(Expose{}))
	}
	assert.False(t, w.Push(Expose{}))
}
