package logger

import (
	"log/slog"
	"os"
)

var Log = newLogger()

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}

func Init() {
	Log = newLogger()
}
