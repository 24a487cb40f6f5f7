package arrayvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arrayvec-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogCapacityExceeded logs a rejected insertion attempt.
func (l *Logger) LogCapacityExceeded(op string, length, capacity int) {
	l.Debug("capacity exceeded",
		"op", op,
		"len", length,
		"capacity", capacity,
	)
}

// LogDrain logs the lifecycle of a drain.
func (l *Logger) LogDrain(event string, start, end, yielded int) {
	l.Debug("drain "+event,
		"start", start,
		"end", end,
		"yielded", yielded,
	)
}
