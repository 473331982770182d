// Package logging builds the process logger: slog text records written to a
// size-rotated file.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Path of the log file. Empty discards all records.
	Path  string
	Level slog.Level
	// MaxSizeMB rotates the file once it grows past this size.
	MaxSizeMB  int
	MaxBackups int
}

// New returns a logger and a closer for its file. The handler is wrapped in a
// ContextHandler so attributes stored with WithAttrs reach every record.
func New(opts Options) (*slog.Logger, io.Closer) {
	if opts.Path == "" {
		return slog.New(NewContextHandler(slog.NewTextHandler(io.Discard, nil))), nopCloser{}
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 5
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
		LocalTime:  false,
		Compress:   true,
	}
	return NewWriterLogger(w, opts.Level), w
}

// NewWriterLogger logs to w at level.
func NewWriterLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewContextHandler(h))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
