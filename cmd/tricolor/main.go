package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"runtime"

	"github.com/kjkrol/tricolor/internal/config"
	"github.com/kjkrol/tricolor/pkg/gfx"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", config.DefaultFilename, "YAML settings file")
	snapshot := flag.String("snapshot", "", "render offscreen into this PNG file and exit")
	trigger := flag.String("trigger", "", "trigger to apply before the snapshot: red, green, blue or reset")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		gfx.Alert(err.Error())
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.SlogLevel()}))
	slog.SetDefault(logger)
	gfx.SetLogger(logger)

	cc := conf.ClearColor
	wc := gfx.WindowConfig{
		PositionX:  conf.Window.X,
		PositionY:  conf.Window.Y,
		Width:      conf.Window.Width,
		Height:     conf.Window.Height,
		Title:      conf.Window.Title,
		ClearColor: gfx.NewColor(cc[0], cc[1], cc[2], cc[3]),
		Toolbar:    conf.Window.Toolbar,
		Headless:   *snapshot != "",
	}

	if *snapshot != "" {
		if err := writeSnapshot(wc, *snapshot, *trigger); err != nil {
			slog.Error("snapshot failed", "error", err)
			return 1
		}
		return 0
	}

	window, err := gfx.NewWindow(wc)
	if err != nil {
		slog.Error("startup failed", "error", err)
		return 1
	}
	defer window.Close()

	window.Show()
	window.ListenEvents(nil, gfx.DrainAll())
	return 0
}

func writeSnapshot(wc gfx.WindowConfig, path, label string) error {
	window, err := gfx.NewWindow(wc)
	if err != nil {
		return err
	}
	defer window.Close()

	window.Show()
	if label != "" {
		t, err := gfx.ParseTrigger(label)
		if err != nil {
			return err
		}
		if err := window.Dispatch(t); err != nil {
			return err
		}
	}

	img, ok := window.Snapshot()
	if !ok {
		return fmt.Errorf("window has no offscreen framebuffer")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	slog.Info("snapshot written", "path", path, "color", window.Controller().Color())
	return nil
}
