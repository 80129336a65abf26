// Package obslog provides structured logging for gs1decode
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog with gs1decode-specific functionality
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // pretty-print for development
	Output     io.Writer
	WithCaller bool
}

// NewLogger creates a new structured logger
func NewLogger(cfg Config) *Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		With().
		Timestamp().
		Str("service", "gs1decode").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// GetZerolog returns the underlying zerolog logger
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}

// Info logs an info message
func (l *Logger) Info(msg string) *zerolog.Event {
	return l.zlog.Info().Str("msg", msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) *zerolog.Event {
	return l.zlog.Debug().Str("msg", msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) *zerolog.Event {
	return l.zlog.Warn().Str("msg", msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) *zerolog.Event {
	return l.zlog.Error().Str("msg", msg)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string) *zerolog.Event {
	return l.zlog.Fatal().Str("msg", msg)
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.zlog.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zlog: ctx.Logger()}
}

// DecodeLogger returns a logger scoped to one decode call, tagged with
// its correlation id so every line from the same barcode scan groups
// together in log search.
func (l *Logger) DecodeLogger(correlationID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", "decode").
			Str("correlation_id", correlationID).
			Logger(),
	}
}

// ReconstructorLogger returns a logger for beam-search reconstructor
// invocations.
func (l *Logger) ReconstructorLogger(correlationID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", "reconstructor").
			Str("correlation_id", correlationID).
			Logger(),
	}
}

// LogDecodeStart logs the beginning of a decode call.
func (l *Logger) LogDecodeStart(correlationID string, inputLength int, gsSeen bool) {
	l.zlog.Debug().
		Str("event", "decode_start").
		Str("correlation_id", correlationID).
		Int("input_length", inputLength).
		Bool("gs_seen", gsSeen).
		Msg("decode starting")
}

// LogDecodeComplete logs the outcome of a decode call with structured
// fields: element counts, confidence, and whether the reconstructor
// had to be invoked.
func (l *Logger) LogDecodeComplete(correlationID string, duration time.Duration, validCount, invalidCount, errCount int, confidence float64, usedReconstructor bool) {
	event := l.zlog.Info()
	if errCount > 0 {
		event = l.zlog.Warn()
	}
	event.
		Str("event", "decode_complete").
		Str("correlation_id", correlationID).
		Dur("duration_ms", duration).
		Int("elements_valid", validCount).
		Int("elements_invalid", invalidCount).
		Int("errors", errCount).
		Float64("confidence", confidence).
		Bool("used_reconstructor", usedReconstructor).
		Msg("decode completed")
}

// LogReconstructorRun logs one beam-search reconstructor invocation.
func (l *Logger) LogReconstructorRun(correlationID string, duration time.Duration, candidateCount int, ambiguous bool) {
	l.zlog.Debug().
		Str("event", "reconstructor_run").
		Str("correlation_id", correlationID).
		Dur("duration_ms", duration).
		Int("candidates", candidateCount).
		Bool("ambiguous", ambiguous).
		Msg("beam search completed")
}

// LogServerStart logs HTTP metrics-server startup.
func (l *Logger) LogServerStart(addr string) {
	l.zlog.Info().
		Str("event", "server_start").
		Str("addr", addr).
		Msg("gs1decode metrics server starting")
}

// LogServerShutdown logs server shutdown.
func (l *Logger) LogServerShutdown() {
	l.zlog.Info().
		Str("event", "server_shutdown").
		Msg("gs1decode metrics server shutting down")
}

// Global logger instance
var globalLogger *Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(cfg Config) {
	globalLogger = NewLogger(cfg)
	log.Logger = *globalLogger.GetZerolog()
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		InitGlobalLogger(Config{
			Level:  "info",
			Pretty: true,
		})
	}
	return globalLogger
}
