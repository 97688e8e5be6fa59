// Package logger expose un Logger minimal (printf) adossé à logrus.
// Les logs vont sur stderr ; stdout reste réservé au rapport.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger : journalisation à niveaux, messages au format printf.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// WithField retourne un Logger qui ajoute key=value à chaque entrée.
	WithField(key string, value interface{}) Logger
}

type implLogger struct {
	entry *logrus.Entry
}

// New crée un Logger sur stderr au niveau donné (info si inconnu).
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter crée un Logger écrivant dans w.
func NewWithWriter(w io.Writer, level string) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05",
		DisableSorting:   false,
		QuoteEmptyFields: true,
	})
	l.SetLevel(ParseLevel(level))
	return &implLogger{entry: logrus.NewEntry(l)}
}

// Nop retourne un Logger qui n'écrit rien (tests).
func Nop() Logger {
	return NewWithWriter(io.Discard, "error")
}

// ParseLevel convertit "debug", "info", "warn", "error" ; info par défaut.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Errorf(msg, args...)
}

func (l *implLogger) WithField(key string, value interface{}) Logger {
	return &implLogger{entry: l.entry.WithField(key, value)}
}
