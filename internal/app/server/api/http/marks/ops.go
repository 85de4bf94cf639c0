package marks

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) ledgerOp() huma.Operation {
	return huma.Operation{
		OperationID: "marks-ledger",
		Method:      http.MethodGet,
		Path:        "/api/v1/marks",
		Summary:     "Черновик и история оценок",
		Tags:        []string{"marks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) draftFieldOp() huma.Operation {
	return huma.Operation{
		OperationID: "marks-draft-field",
		Method:      http.MethodPut,
		Path:        "/api/v1/marks/draft/{subject}",
		Summary:     "Обновить поле черновика",
		Tags:        []string{"marks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) studentOp() huma.Operation {
	return huma.Operation{
		OperationID: "marks-student",
		Method:      http.MethodPut,
		Path:        "/api/v1/marks/student",
		Summary:     "Обновить имя студента",
		Tags:        []string{"marks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID:   "marks-submit",
		Method:        http.MethodPost,
		Path:          "/api/v1/marks",
		Summary:       "Добавить оценки",
		Description:   "Добавляет запись в конец журнала, пустые оценки записываются как 0",
		Tags:          []string{"marks"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
