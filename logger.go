package quantgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quantgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithQuantile adds a quantile field to the logger.
func (l *Logger) WithQuantile(q float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("quantile", q),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs a single-value insert.
func (l *Logger) LogInsert(count int) {
	l.Debug("insert completed",
		"count", count,
	)
}

// LogBatchInsert logs a batch insert.
func (l *Logger) LogBatchInsert(batch, count int) {
	l.Debug("batch insert completed",
		"batch", batch,
		"count", count,
	)
}

// LogFlush logs a flush operation.
func (l *Logger) LogFlush(merged, samples int) {
	l.Debug("flush completed",
		"merged", merged,
		"samples", samples,
	)
}

// LogQuery logs a quantile query.
func (l *Logger) LogQuery(quantile float64, samples int, err error) {
	if err != nil {
		l.Error("query failed",
			"quantile", quantile,
			"error", err,
		)
	} else {
		l.Debug("query completed",
			"quantile", quantile,
			"samples", samples,
		)
	}
}
