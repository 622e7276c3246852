package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. Every line carries the service name so
// catalog logs stay attributable when aggregated with other services.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out zerolog.Logger
	if cfg.Format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	} else {
		out = zerolog.New(os.Stdout)
	}

	return out.With().
		Timestamp().
		Str("service", "shop-catalog").
		Logger()
}
