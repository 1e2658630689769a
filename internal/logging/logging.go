// Package logging provides structured logging using zerolog.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Level re-exports zerolog levels for callers that configure logging.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Pretty enables human-readable console output instead of JSON.
	Pretty bool
}

// DefaultConfig returns the default configuration: info level, pretty
// output when stderr is a terminal, JSON otherwise. SIDEKICK_LOG_LEVEL
// overrides the level.
func DefaultConfig() Config {
	return Config{
		Level:  ParseLevel(os.Getenv("SIDEKICK_LOG_LEVEL")),
		Output: os.Stderr,
		Pretty: isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Init replaces the global logger.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	output := cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.Kitchen,
		}
	}

	Logger = zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a level name, case-insensitively. Unknown or empty
// names fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Debug starts a debug level log message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info level log message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn level log message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error level log message.
func Error() *zerolog.Event {
	return Logger.Error()
}

func init() {
	Init(DefaultConfig())
}
