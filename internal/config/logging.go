package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// serviceName tags every log line so eventbook output stays separable
// when several services share a sink.
const serviceName = "eventbook"

// NewLogger builds the process root logger. LOG_LEVEL and LOG_FORMAT
// drive it; when no format is set, development runs get the console
// writer and everything else emits JSON.
func NewLogger(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, sink io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	output := sink
	if useConsole(cfg) {
		output = zerolog.ConsoleWriter{
			Out:        sink,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(output).Level(level).With().
		Timestamp().
		Str("service", serviceName).
		Str("env", cfg.Environment).
		Logger()
	log.Logger = logger
	return logger
}

func useConsole(cfg Config) bool {
	if cfg.Logging.Format != "" {
		return strings.EqualFold(cfg.Logging.Format, "console")
	}
	return cfg.Environment == "development"
}
