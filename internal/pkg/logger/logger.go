package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
	// Printf lets the logger act as a GORM logger writer.
	Printf(format string, args ...interface{})
}

// Config controls the level and formatting of the logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New creates a logrus-backed Logger.
func New(cfg Config) Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	return &logrusLogger{entry: logrus.NewEntry(l)}
}

// Discard returns a Logger that drops everything. Used by tests.
func Discard() Logger {
	return New(Config{Level: "panic", Output: io.Discard})
}

// Error logs an error message with the 🔴 emoji.
func (l *logrusLogger) Error(msg string, err error) {
	if err != nil {
		l.entry.WithError(err).Error(fmt.Sprintf("🔴 %s", msg))
		return
	}
	l.entry.Error(fmt.Sprintf("🔴 %s", msg))
}

// Warn logs a warning message with the ⚠️ emoji.
func (l *logrusLogger) Warn(msg string) {
	l.entry.Warn(fmt.Sprintf("⚠️ %s", msg))
}

// Info logs an informational message.
func (l *logrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

// Debug logs a debug message.
func (l *logrusLogger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *logrusLogger) Printf(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}
