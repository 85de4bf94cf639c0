package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
	"markskeeper/internal/domain/validation"
)

// From переводит доменную ошибку в ответ huma
func From(err error) error {
	if err == nil {
		return nil
	}

	if ve, ok := validation.As(err); ok {
		return huma.Error422UnprocessableEntity(ve.Message)
	}

	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, marks.ErrUnknownSubject):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
