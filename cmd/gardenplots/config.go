package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// ErrLogFormat is returned for a log format other than auto, text or json.
var ErrLogFormat = errors.New("gardenplots: unknown log format")

// Config holds the command configuration.
type Config struct {
	Part      int // 0 = both prices
	Regions   bool
	LogLevel  string
	LogFormat string
}

type envConfig struct {
	LogLevel  string `env:"GARDENPLOTS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GARDENPLOTS_LOG_FORMAT" envDefault:"auto"`
}

// LoadConfig reads the environment into a Config. Flags registered by the
// root command use these values as their defaults.
func LoadConfig() (Config, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return Config{LogLevel: e.LogLevel, LogFormat: e.LogFormat}, nil
}

// newLogger builds a slog logger writing to w. The auto format picks text
// when w is a terminal and JSON otherwise.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrLogFormat, format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
