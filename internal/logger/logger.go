package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application-wide logger type, aliased to zerolog.Logger.
// This allows other packages to depend only on gitopsdemo/internal/logger instead of importing zerolog directly.
type Logger = zerolog.Logger

// Event is an alias for zerolog.Event to allow building log entries without importing zerolog.
type Event = zerolog.Event

// Init initializes the global logger from the given logging configuration.
// Output is one of "stdout", "file" or "both"; format is "console" or "json".
func Init(level, format, output, filePath string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "console"
	}
	output = strings.ToLower(strings.TrimSpace(output))
	if output == "" {
		output = "stdout"
	}
	filePath = strings.TrimSpace(filePath)

	stdoutEnabled := output == "stdout" || output == "both"
	fileEnabled := output == "file" || output == "both"

	writers := make([]io.Writer, 0, 2)
	deferredWarnings := make([]string, 0, 2)

	if stdoutEnabled {
		writers = append(writers, newWriter(os.Stdout, format))
	}

	if fileEnabled {
		if filePath == "" {
			deferredWarnings = append(deferredWarnings, "File output requested but no log file path is set; disabling file logging")
		} else {
			file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				deferredWarnings = append(deferredWarnings, fmt.Sprintf("Failed to open log file '%s', disabling file logging: %v", filePath, err))
			} else {
				writers = append(writers, newWriter(file, format))
			}
		}
	}

	// Fallback: if no writers configured, use stdout console
	if len(writers) == 0 {
		writers = append(writers, newWriter(os.Stdout, "console"))
		deferredWarnings = append(deferredWarnings, "No valid log output configured, falling back to stdout console")
	}

	var out io.Writer
	if len(writers) == 1 {
		out = writers[0]
	} else {
		out = zerolog.MultiLevelWriter(writers...)
	}

	// Set log level, defaulting to InfoLevel if parsing fails.
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
		log.Warn().Str("log_level_in", level).Msg("Invalid log level, defaulting to 'info'")
	}
	zerolog.SetGlobalLevel(lvl)

	for _, msg := range deferredWarnings {
		log.Warn().Msg(msg)
	}

	log.Logger = log.Output(out).Level(lvl)
}

func newWriter(out io.Writer, format string) io.Writer {
	if format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Get returns a pointer to the configured logger instance
func Get() *zerolog.Logger {
	return &log.Logger
}

// SetOutput changes the destination for log output.
// This is useful for redirecting logs to a file or a buffer during testing.
func SetOutput(w io.Writer) {
	log.Logger = log.Output(w)
}

// HTTPEvent logs HTTP request events with standardized fields. The duration
// field is rendered in seconds with three decimal places.
func HTTPEvent(method, path string, status int, duration time.Duration) *zerolog.Event {
	return log.Info().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Str("duration", fmt.Sprintf("%.3fs", duration.Seconds()))
}

// HTTPError logs HTTP error events.
func HTTPError(method, path string, status int, err error) *zerolog.Event {
	return log.Error().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Err(err)
}

// PanicEvent logs panic recovery events.
func PanicEvent(err interface{}, stack string) *zerolog.Event {
	return log.Error().
		Str("event_category", "panic").
		Interface("error", err).
		Str("stack", stack)
}
