package logging

import "log/slog"

// Info logs an info message when a logger is configured. The roster cache and
// server warm-up call it with a logger that may be nil.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured, e.g. an unknown provider
// name or a listener that failed to shut down.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error under FieldError when a logger is configured, e.g.
// a failed roster load or warm-up.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	logger.Error(msg, args...)
}
