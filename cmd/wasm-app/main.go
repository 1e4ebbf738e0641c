//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/kjkrol/tricolor/pkg/gfx"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	gfx.SetLogger(logger)

	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:      640,
		Height:     480,
		Title:      "tricolor",
		ClearColor: gfx.Black,
	})
	if err != nil {
		// NewWindow already alerted the user
		logger.Error("startup failed", "error", err)
		return
	}
	defer window.Close()

	window.Show()
	window.ListenEvents(nil, gfx.DrainMax(16))
}
