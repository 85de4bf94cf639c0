package session

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/app/server/api/http/apierr"
)

type Servicer interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Snapshot() client.View
}

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.stateOp(), h.state)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) state(_ context.Context, _ *stateInput) (*stateOutput, error) {
	return &stateOutput{Body: stateFromView(h.service.Snapshot())}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*stateOutput, error) {
	if err := h.service.Login(ctx, input.Body.Username, input.Body.Password); err != nil {
		h.log.Debug("login failed", "error", err)
		return nil, apierr.From(err)
	}

	return &stateOutput{Body: stateFromView(h.service.Snapshot())}, nil
}

func (h *Handler) logout(ctx context.Context, _ *logoutInput) (*stateOutput, error) {
	if err := h.service.Logout(ctx); err != nil {
		h.log.Error("logout failed", "error", err)
		return nil, apierr.From(err)
	}

	return &stateOutput{Body: stateFromView(h.service.Snapshot())}, nil
}
