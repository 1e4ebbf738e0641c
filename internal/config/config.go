// Package config loads the optional YAML settings file of the tricolor
// binaries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFilename = "tricolor.yml"

const maxConfigSize = 64 * 1024

type Window struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Toolbar bool   `yaml:"toolbar"`
}

type Config struct {
	Window Window `yaml:"window"`
	// ClearColor is r, g, b, a in [0,1].
	ClearColor [4]float32 `yaml:"clear_color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:   640,
			Height:  480,
			Title:   "tricolor",
			Toolbar: true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		LogLevel:   "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return conf, fmt.Errorf("config %s: %d bytes exceeds %d", path, info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config %s: %w", path, err)
	}
	slog.Info("loaded config", "path", path, "size", info.Size())
	return conf, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear_color[%d] = %v outside [0,1]", i, v)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, info when unset.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}
