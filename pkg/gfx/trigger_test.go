package gfx

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigger_Colors(t *testing.T) {
	cases := map[Trigger]Color{
		TriggerRed:   {1, 0, 0, 1},
		TriggerGreen: {0, 1, 0, 1},
		TriggerBlue:  {0, 0, 1, 1},
		TriggerReset: {1, 0, 0, 1},
	}
	for trig, want := range cases {
		got, ok := trig.Color()
		require.True(t, ok, trig.String())
		assert.Equal(t, want, got, trig.String())
	}

	_, ok := Trigger(42).Color()
	assert.False(t, ok)
}

func TestTrigger_ResetMatchesInitial(t *testing.T) {
	reset, _ := TriggerReset.Color()
	assert.Equal(t, InitialColor, reset)
}

func TestParseTrigger(t *testing.T) {
	cases := []struct {
		label string
		want  Trigger
	}{
		{"red", TriggerRed},
		{"GREEN", TriggerGreen},
		{" blue ", TriggerBlue},
		{"reset", TriggerReset},
		{"color1", TriggerRed},
		{"color2", TriggerGreen},
		{"color3", TriggerBlue},
		{"resetColor", TriggerReset},
		{"1", TriggerRed},
		{"2", TriggerGreen},
		{"3", TriggerBlue},
		{"r", TriggerReset},
	}
	for _, tc := range cases {
		got, err := ParseTrigger(tc.label)
		require.NoError(t, err, tc.label)
		assert.Equal(t, tc.want, got, tc.label)
	}

	_, err := ParseTrigger("purple")
	assert.ErrorIs(t, err, ErrUnknownTrigger)
}

func TestTrigger_String(t *testing.T) {
	assert.Equal(t, "green", TriggerGreen.String())
	assert.Equal(t, "Trigger(9)", Trigger(9).String())
}

func TestColor_Conversions(t *testing.T) {
	assert.Equal(t, Color{0, 1, 0.25, 1}, NewColor(-1, 2, 0.25, float32(math.Inf(1))))
	assert.Equal(t, Color{0, 0, 0, 0}, NewColor(float32(math.NaN()), 0, 0, 0))

	nrgba := color.NRGBAModel.Convert(Blue).(color.NRGBA)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, nrgba)
}

func TestGeometry_Triangle(t *testing.T) {
	assert.Equal(t, 3, Triangle.VertexCount())

	floats := Triangle.Floats()
	assert.Len(t, floats, 6)
	floats[0] = 9
	assert.Equal(t, float32(0), Triangle[0])
}
