package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger on stdout as the process default.
// Called before the database is reachable; WithSink later adds persistence.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// WithSink replaces the default logger with one that writes to stdout and
// also forwards records to sink.
func WithSink(sink slog.Handler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(), sink)))
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
}
