package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fileauth/config"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger writing to stdout.
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, params.Config.Env.Log)
}

// NewWithWriter builds a logger for the given output. Pretty selects the text
// handler, otherwise records are JSON.
func NewWithWriter(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var logger *slog.Logger
	if cfg.Pretty {
		logger = slog.New(slog.NewTextHandler(w, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, opts))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
