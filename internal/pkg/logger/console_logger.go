package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that writes text records to a terminal stream.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
// Records go to stderr so command output on stdout stays machine readable.
func NewConsoleLogger(level string) Logger {
	return NewConsoleLoggerWithWriter(level, os.Stderr)
}

// NewConsoleLoggerWithWriter creates a console logger writing to w.
func NewConsoleLoggerWithWriter(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
