package gfx

import (
	"log/slog"

	"github.com/kjkrol/tricolor/internal/logging"
)

// SetLogger configures logging for gfx, shader and the platform layer.
// By default nothing is logged. Pass nil to go silent again.
//
// Levels used:
//   - [slog.LevelDebug]: shader compile/link steps, dispatched triggers,
//     input that maps to no trigger
//   - [slog.LevelInfo]: renderer and window lifecycle
//   - [slog.LevelWarn]: triggers the controller rejected
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

func Logger() *slog.Logger {
	return logging.Logger()
}
