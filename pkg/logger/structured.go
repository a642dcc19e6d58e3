package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName).Logger()

const serviceName = "tourism-backend"

// InitStructured initializes the structured zerolog logger.
// level accepts zerolog level names ("debug", "info", "warn", ...); an empty
// or unknown value falls back to info. console selects human-readable output.
func InitStructured(env, level string, console bool) {
	var w io.Writer

	if console {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zlog = zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", serviceName).
		Str("env", env).
		Logger()
}

// SetOutput replaces the global logger with one writing JSON to w (tests).
func SetOutput(w io.Writer) {
	zlog = zerolog.New(w).With().Timestamp().Str("service", serviceName).Logger()
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	zlog.Info().Msgf(format, args...)
}

// Warn logs a formatted message at warn level
func Warn(format string, args ...interface{}) {
	zlog.Warn().Msgf(format, args...)
}
