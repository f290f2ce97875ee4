// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger is the process-wide leveled logger. It wraps logrus so call
// sites use printf-style helpers and a single level set at startup.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var std = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Level is a logging severity.
type Level = logrus.Level

// ParseLevel converts a level name (trace, debug, info, warn, error, fatal,
// panic) to a Level. Matching is case-insensitive.
func ParseLevel(name string) (Level, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: use trace, debug, info, warn, error, fatal or panic", name)
	}
	return lvl, nil
}

// SetLevel sets the minimum level that is written.
func SetLevel(level Level) { std.SetLevel(level) }

// GetLevel returns the current minimum level.
func GetLevel() Level { return std.GetLevel() }

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Entry is a logger carrying fields.
type Entry struct {
	e *logrus.Entry
}

// WithSession returns a logger that tags every line with a session id.
func WithSession(id string) Entry {
	return Entry{e: std.WithField("session", id)}
}

// Trace logs at trace level with the entry's fields.
func (l Entry) Trace(format string, args ...any) { l.e.Tracef(format, args...) }

// Debug logs at debug level with the entry's fields.
func (l Entry) Debug(format string, args ...any) { l.e.Debugf(format, args...) }

// Info logs at info level with the entry's fields.
func (l Entry) Info(format string, args ...any) { l.e.Infof(format, args...) }

// Warn logs at warn level with the entry's fields.
func (l Entry) Warn(format string, args ...any) { l.e.Warnf(format, args...) }

// Error logs at error level with the entry's fields.
func (l Entry) Error(format string, args ...any) { l.e.Errorf(format, args...) }

// Trace logs at trace level.
func Trace(format string, args ...any) { std.Tracef(format, args...) }

// Debug logs at debug level.
func Debug(format string, args ...any) { std.Debugf(format, args...) }

// Info logs at info level.
func Info(format string, args ...any) { std.Infof(format, args...) }

// Warn logs at warn level.
func Warn(format string, args ...any) { std.Warnf(format, args...) }

// Error logs at error level.
func Error(format string, args ...any) { std.Errorf(format, args...) }
