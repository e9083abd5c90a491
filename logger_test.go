package gmaps

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Info("request sent", "api", "geocoding", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"message":"request sent"`, `"api":"geocoding"`, `"attempt":2`, `"component":"gmaps"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log line to contain %s, got %s", want, out)
		}
	}
}

func TestZerologLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("Expected nothing below warn, got %s", buf.String())
	}

	logger.Warn("warn message")
	logger.Error("error message")
	if !strings.Contains(buf.String(), "warn message") || !strings.Contains(buf.String(), "error message") {
		t.Errorf("Expected warn and error lines, got %s", buf.String())
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newConsoleLogger(&buf, zerolog.DebugLevel)

	logger.Debug("retrying", "delay", "1s")

	if !strings.Contains(buf.String(), "retrying") {
		t.Errorf("Expected console output to contain message, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	var logger Logger = nopLogger{}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")
}
