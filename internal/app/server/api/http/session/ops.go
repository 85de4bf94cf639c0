package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) stateOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Состояние сессии",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/login",
		Summary:     "Вход",
		Description: "Открывает сессию, если имя пользователя и пароль не пустые",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/logout",
		Summary:     "Выход",
		Description: "Закрывает сессию и удаляет все сохраненные данные",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}
