package auth

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Authenticator сообщает, открыта ли сессия
type Authenticator interface {
	IsAuthenticated() bool
}

type Auth struct {
	session Authenticator
	log     *slog.Logger
}

func New(session Authenticator, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

// Middleware пропускает запрос только при открытой сессии
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.session.IsAuthenticated() {
			a.log.Debug("request without session", "path", ctx.URL().Path)
			ctx.SetHeader("Content-Type", "application/json")
			ctx.SetStatus(http.StatusUnauthorized)

			err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			if err != nil {
				a.log.Error("json encode", "error", err)
			}
			return
		}

		next(ctx)
	}
}
