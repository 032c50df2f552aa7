// Package logging builds the slog loggers used across strands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Options struct {
	Level slog.Level
	// File, when set, receives the log; it is opened for append.
	File string
	// Writer is used when File is empty. nil discards.
	Writer io.Writer
}

// ParseLevel accepts debug, info, warn and error in any case, with optional
// offsets such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// New returns a text logger and a closer for any file it opened.
func New(opt Options) (*slog.Logger, io.Closer, error) {
	w := opt.Writer
	var closer io.Closer = nopCloser{}
	if opt.File != "" {
		f, err := os.OpenFile(opt.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		return Discard(), closer, nil
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: opt.Level})
	return slog.New(h), closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
