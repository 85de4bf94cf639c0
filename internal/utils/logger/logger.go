package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client/config"
)

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter - то же, что New, но пишет в w
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlogWriter(w)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	return setupPrettySlogWriter(os.Stdout)
}

func setupPrettySlogWriter(w io.Writer) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewPrettyHandler(w))
}
