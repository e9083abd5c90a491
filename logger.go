package gmaps

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger receives structured diagnostics from the client. keysAndValues
// alternate between string keys and arbitrary values.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{l: l.With().Str("component", "gmaps").Logger()}
}

// NewConsoleLogger writes human readable lines to stderr at level and above.
func NewConsoleLogger(level zerolog.Level) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level zerolog.Level) Logger {
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
	return NewZerologLogger(l)
}

func (z zerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (z zerologLogger) Info(msg string, keysAndValues ...interface{}) {
	z.l.Info().Fields(keysAndValues).Msg(msg)
}

func (z zerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.l.Warn().Fields(keysAndValues).Msg(msg)
}

func (z zerologLogger) Error(msg string, keysAndValues ...interface{}) {
	z.l.Error().Fields(keysAndValues).Msg(msg)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
