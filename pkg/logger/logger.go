package logger

import (
	"log/slog"
	"os"
)

// Log defaults to slog's standard logger until Init swaps in the JSON
// handler, so packages may log before main finishes wiring.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
