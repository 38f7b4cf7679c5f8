package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultWriter(t *testing.T) {
	logger := New(Config{Level: slog.LevelInfo, Format: "json"})
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{"production uses json", "production", true},
		{"development uses pretty", "development", false},
		{"staging uses pretty", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Environment: tt.environment, Writer: &buf})
			logger.Info("catalog loaded")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"catalog loaded"`)
			} else {
				assert.Contains(t, buf.String(), "catalog loaded")
				assert.Contains(t, buf.String(), ansiReset)
			}
		})
	}
}

func TestNew_ExplicitFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Environment: "development", Writer: &buf})
	logger.Info("test")

	assert.Contains(t, buf.String(), `"msg":"test"`)
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, formatJSON, resolveFormat("", "production"))
	assert.Equal(t, formatPretty, resolveFormat("", "development"))
	assert.Equal(t, formatPretty, resolveFormat("pretty", "production"))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		checkLevel   slog.Level
		wantEnabled  bool
	}{
		{"debug handler allows debug", slog.LevelDebug, slog.LevelDebug, true},
		{"info handler blocks debug", slog.LevelInfo, slog.LevelDebug, false},
		{"info handler allows error", slog.LevelInfo, slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.wantEnabled, handler.Enabled(context.Background(), tt.checkLevel))
		})
	}
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("record added", "genre", "Sci-Fi", "records", 3, "title", "The Martian")

	output := buf.String()
	assert.Contains(t, output, "record added")
	assert.Contains(t, output, "genre=Sci-Fi")
	assert.Contains(t, output, "records=3")
	assert.Contains(t, output, `title="The Martian"`)
	assert.Contains(t, output, "INF")
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	assert.Equal(t, handler, handler.WithGroup(""))

	grouped := handler.WithAttrs([]slog.Attr{slog.String("catalog", "cat-1")}).WithGroup("record")
	slog.New(grouped).Info("record removed", "title", "Dune")

	output := buf.String()
	assert.Contains(t, output, "catalog=cat-1")
	assert.Contains(t, output, "record.title=Dune")
}

func TestPrettyHandler_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, nil))
	logger.Debug("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WRN")
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo, AddSource: true}))
	logger.Info("test message")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level     slog.Level
		wantStr   string
		wantColor string
	}{
		{slog.LevelDebug, "DBG", ansiMagenta},
		{slog.LevelInfo, "INF", ansiGreen},
		{slog.LevelWarn, "WRN", ansiYellow},
		{slog.LevelError, "ERR", ansiRed},
	}

	for _, tt := range tests {
		t.Run(tt.wantStr, func(t *testing.T) {
			str, color := levelLabel(tt.level)
			assert.Equal(t, tt.wantStr, str)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}

func TestRenderValue(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"string", slog.StringValue("Dystopian"), "Dystopian"},
		{"string with spaces", slog.StringValue("Brave New World"), `"Brave New World"`},
		{"time", slog.TimeValue(now), now.Format(time.RFC3339)},
		{"duration", slog.DurationValue(5 * time.Second), "5s"},
		{"int", slog.IntValue(1949), "1949"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderValue(tt.value))
		})
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithError(errors.New("record with title \"Dune\" not found")).Info("remove failed")

	assert.Contains(t, buf.String(), `"error":`)
	assert.Contains(t, buf.String(), "not found")
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Writer: &buf})

	logger.WithField("catalog_id", "cat-12345").Info("catalog created")

	assert.Contains(t, buf.String(), `"catalog_id":"cat-12345"`)
	assert.Contains(t, buf.String(), "catalog created")
}
