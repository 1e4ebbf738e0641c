package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbar_Layout(t *testing.T) {
	tb := NewToolbar(200, 100)
	buttons := tb.Buttons()
	require.Len(t, buttons, len(Triggers))

	xs := []uint32{56, 80, 104, 128}
	for i, b := range buttons {
		assert.Equal(t, Triggers[i], b.Trigger)
		assert.Equal(t, xs[i], b.Rect.TopLeft.X)
		assert.Equal(t, uint32(76), b.Rect.TopLeft.Y)
		assert.Equal(t, xs[i]+16, b.Rect.BottomRight.X)
		assert.Equal(t, uint32(92), b.Rect.BottomRight.Y)
	}
}

func TestToolbar_HitTest(t *testing.T) {
	tb := NewToolbar(200, 100)

	cases := []struct {
		x, y int
		want Trigger
	}{
		{56, 76, TriggerRed},
		{71, 91, TriggerRed},
		{84, 80, TriggerGreen},
		{110, 85, TriggerBlue},
		{140, 90, TriggerReset},
	}
	for _, tc := range cases {
		got, ok := tb.HitTest(tc.x, tc.y)
		require.True(t, ok, "%d,%d", tc.x, tc.y)
		assert.Equal(t, tc.want, got)
	}

	for _, miss := range [][2]int{{72, 80}, {60, 92}, {10, 10}, {-1, 80}} {
		_, ok := tb.HitTest(miss[0], miss[1])
		assert.False(t, ok, "%v", miss)
	}

	var none *Toolbar
	_, ok := none.HitTest(60, 80)
	assert.False(t, ok)
	assert.Nil(t, none.Vertices())
}

func TestToolbar_Vertices(t *testing.T) {
	tb := NewToolbar(200, 100)
	verts := tb.Vertices()
	require.Len(t, verts, len(Triggers)*6*floatsPerVertex)

	// first corner of the red swatch: pixel 56,76
	assert.InDelta(t, -0.44, verts[0], 1e-6)
	assert.InDelta(t, -0.52, verts[1], 1e-6)
}

func TestButton_Swatch(t *testing.T) {
	assert.Equal(t, Blue, Button{Trigger: TriggerBlue}.Swatch())
	assert.NotEqual(t, Red, Button{Trigger: TriggerReset}.Swatch())
}

func TestToolbar_Degenerate(t *testing.T) {
	assert.Empty(t, NewToolbar(0, 100).Buttons())
	assert.Empty(t, NewToolbar(20, 100).Buttons())
}
