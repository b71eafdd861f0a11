package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Handlers hold a reference to it;
// there is no package-level singleton.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo

	if env == "dev" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(NewTraceHandler(handler))
}
