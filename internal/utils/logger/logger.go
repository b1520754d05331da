package logger

import (
	"os"
	"strings"

	"fleetgateway/internal/config"

	"golang.org/x/exp/slog"
)

// New returns the logger for env: a colored human-readable handler for local
// runs, JSON everywhere else. Prod logs from info up, the rest from debug.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel is New with an explicit level ("debug", "info", "warn",
// "error") overriding the environment default. An unknown level is ignored.
func NewWithLevel(env, level string) *slog.Logger {
	lvl := slog.LevelDebug
	if env == config.EnvProd {
		lvl = slog.LevelInfo
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(strings.ToUpper(level))); err == nil {
			lvl = parsed
		}
	}

	switch env {
	case config.EnvLocal, "":
		return slog.New(newPrettyHandler(os.Stdout, lvl))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}
}

// Err wraps an error as a log attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
