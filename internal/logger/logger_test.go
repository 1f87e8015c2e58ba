package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	}

	logger := New(cfg)
	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "\"level\":\"INFO\"")
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantFormat  string
	}{
		{
			name:        "production uses json",
			environment: "production",
			wantFormat:  "json",
		},
		{
			name:        "development uses pretty",
			environment: "development",
			wantFormat:  "pretty",
		},
		{
			name:        "staging uses pretty",
			environment: "staging",
			wantFormat:  "pretty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := Config{
				Level:       slog.LevelInfo,
				Environment: tt.environment,
				Writer:      &buf,
			}

			logger := New(cfg)
			logger.Info("test")

			output := buf.String()
			if tt.wantFormat == "json" {
				assert.Contains(t, output, `"msg":"test"`)
			} else {
				// Pretty format carries ANSI codes around the message.
				assert.Contains(t, output, "test")
				assert.True(t, len(output) > len("test\n"))
			}
		})
	}
}

func TestNew_ExplicitFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       slog.LevelInfo,
		Format:      "json",
		Environment: "development", // Would normally use pretty
		Writer:      &buf,
	}

	logger := New(cfg)
	logger.Info("test")

	// Should use JSON despite development environment
	assert.Contains(t, buf.String(), `"msg":"test"`)
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
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},        // defaults to info
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
		{"info handler allows info", slog.LevelInfo, slog.LevelInfo, true},
		{"info handler allows error", slog.LevelInfo, slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
				Level: tt.handlerLevel,
			})

			enabled := handler.Enabled(context.Background(), tt.checkLevel)
			assert.Equal(t, tt.wantEnabled, enabled)
		})
	}
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(handler)
	logger.Info("test message", "key1", "value1", "key2", 42)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=42")
	assert.Contains(t, output, "INF")
}

func TestPrettyHandler_LevelFormatting(t *testing.T) {
	tests := []struct {
		level      slog.Level
		wantString string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})

			logger := slog.New(handler)
			logger.Log(context.Background(), tt.level, "test")

			assert.Contains(t, buf.String(), tt.wantString)
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	handlerWithAttrs := handler.WithAttrs([]slog.Attr{
		slog.String("service", "test-service"),
		slog.Int("version", 1),
	})

	logger := slog.New(handlerWithAttrs)
	logger.Info("test message")

	output := buf.String()
	assert.Contains(t, output, "service=test-service")
	assert.Contains(t, output, "version=1")
	assert.Contains(t, output, "test message")
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	// Empty group returns the same handler.
	assert.Equal(t, handler, handler.WithGroup(""))

	handlerWithGroup := handler.WithGroup("request")
	assert.NotEqual(t, handler, handlerWithGroup)

	logger := slog.New(handlerWithGroup)
	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})

	logger := slog.New(handler)
	logger.Info("test message")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestFormatValue(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"string", slog.StringValue("test"), "test"},
		{"time", slog.TimeValue(now), now.Format(time.RFC3339)},
		{"duration", slog.DurationValue(5 * time.Second), "5s"},
		{"int", slog.IntValue(42), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	}

	logger := New(cfg)
	logger.WithError(errors.New("test error")).Info("something happened")

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, "error")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  slog.LevelWarn, // Only warn and error
		Format: "json",
		Writer: &buf,
	}

	logger := New(cfg)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewPrettyHandler_NilOptions(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, nil)

	require.NotNil(t, handler)
	require.NotNil(t, handler.opts)

	logger := slog.New(handler)
	logger.Info("test")

	assert.Contains(t, buf.String(), "test")
}
