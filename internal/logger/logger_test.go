package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gitopsdemo/internal/logger"
)

// TestInit verifies that the logger initializes correctly with various log levels.
func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logLevel string // level to log at
		wantLog  bool   // whether we expect the message to appear
	}{
		{"debug level logs debug", "debug", "debug", true},
		{"debug level logs info", "debug", "info", true},
		{"info level logs info", "info", "info", true},
		{"info level skips debug", "info", "debug", false},
		{"warn level logs warn", "warn", "warn", true},
		{"warn level skips info", "warn", "info", false},
		{"error level logs error", "error", "error", true},
		{"error level skips warn", "error", "warn", false},
		{"invalid level defaults to info", "invalid", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.Init(tt.level, "json", "stdout", "")
			logger.SetOutput(&buf)

			switch tt.logLevel {
			case "debug":
				logger.Get().Debug().Msg("test message")
			case "info":
				logger.Get().Info().Msg("test message")
			case "warn":
				logger.Get().Warn().Msg("test message")
			case "error":
				logger.Get().Error().Msg("test message")
			}

			hasMessage := strings.Contains(buf.String(), "test message")
			if tt.wantLog && !hasMessage {
				t.Errorf("Expected log output to contain 'test message', got: %s", buf.String())
			}
			if !tt.wantLog && hasMessage {
				t.Errorf("Expected log output NOT to contain 'test message', got: %s", buf.String())
			}
		})
	}
}

// TestLoggerGet verifies that Get returns a non-nil logger.
func TestLoggerGet(t *testing.T) {
	logger.Init("info", "console", "stdout", "")
	if logger.Get() == nil {
		t.Error("Expected Get() to return a non-nil logger")
	}
}

// TestJSONFormat verifies that JSON format produces valid JSON output.
func TestJSONFormat(t *testing.T) {
	logger.Init("info", "json", "stdout", "")

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.Get().Info().Str("key", "value").Msg("json test")

	output := strings.TrimSpace(buf.String())
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("Expected valid JSON output, got error: %v, output: %s", err, output)
	}

	if result["message"] != "json test" {
		t.Errorf("Expected message 'json test', got: %v", result["message"])
	}
	if result["key"] != "value" {
		t.Errorf("Expected key 'value', got: %v", result["key"])
	}
}

// TestHTTPEvent verifies the standardized request log fields, including the
// three-decimal seconds duration.
func TestHTTPEvent(t *testing.T) {
	logger.Init("debug", "json", "stdout", "")

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.HTTPEvent("GET", "/api/items", 200, 150*time.Millisecond).Msg("HTTP request")

	output := buf.String()
	for _, want := range []string{
		`"method":"GET"`,
		`"path":"/api/items"`,
		`"status":200`,
		`"duration":"0.150s"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected log output to contain %s, got: %s", want, output)
		}
	}
}

// TestHTTPEvent_ZeroDuration verifies the lower bound renders as 0.000s.
func TestHTTPEvent_ZeroDuration(t *testing.T) {
	logger.Init("info", "json", "stdout", "")

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.HTTPEvent("GET", "/health", 200, 0).Msg("HTTP request")

	if !strings.Contains(buf.String(), `"duration":"0.000s"`) {
		t.Errorf("Expected duration 0.000s, got: %s", buf.String())
	}
}

// TestHTTPError verifies that error events carry the failing error.
func TestHTTPError(t *testing.T) {
	logger.Init("info", "json", "stdout", "")

	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.HTTPError("GET", "/", 500, errors.New("boom")).Msg("request failed")

	output := buf.String()
	if !strings.Contains(output, `"error":"boom"`) {
		t.Errorf("Expected log output to contain the error, got: %s", output)
	}
	if !strings.Contains(output, `"status":500`) {
		t.Errorf("Expected log output to contain status 500, got: %s", output)
	}
}
