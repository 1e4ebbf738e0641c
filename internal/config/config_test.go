package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), conf)

	conf, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 320
  title: demo
  toolbar: false
clear_color: [0.2, 0.2, 0.2, 1]
log_level: debug
`)

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 320, conf.Window.Width)
	assert.Equal(t, 480, conf.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "demo", conf.Window.Title)
	assert.False(t, conf.Window.Toolbar)
	assert.Equal(t, [4]float32{0.2, 0.2, 0.2, 1}, conf.ClearColor)
	assert.Equal(t, slog.LevelDebug, conf.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":      "window: [",
		"size":        "window:\n  width: 0\n",
		"clear color": "clear_color: [2, 0, 0, 1]\n",
		"log level":   "log_level: loud\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "Warn"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "nope"}.SlogLevel())
}
