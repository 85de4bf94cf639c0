package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	startedAt  time.Time
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
		startedAt:  time.Now(),
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
			Uptime: time.Since(h.startedAt).Truncate(time.Second).String(),
		},
	}, nil
}
