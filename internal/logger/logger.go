package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/storefront/internal/config"
)

// New creates a JSON slog.Logger tagged with the running service.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler).With(slog.String("service", cfg.Service.Name()))
}
