package marks

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/app/server/api/http/apierr"
	"markskeeper/internal/domain/marks"
)

type Servicer interface {
	UpdateDraftField(subject, value string) error
	SetStudentName(name string) error
	SubmitMarks(ctx context.Context, studentName string, draft marks.Draft) (marks.Entry, error)
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
	huma.Register(api, h.ledgerOp(), h.ledger)
	huma.Register(api, h.draftFieldOp(), h.updateDraftField)
	huma.Register(api, h.studentOp(), h.setStudent)
	huma.Register(api, h.submitOp(), h.submit)
}

func (h *Handler) ledger(_ context.Context, _ *ledgerInput) (*ledgerOutput, error) {
	return &ledgerOutput{Body: ledgerFromView(h.service.Snapshot())}, nil
}

func (h *Handler) updateDraftField(_ context.Context, input *draftFieldInput) (*ledgerOutput, error) {
	if err := h.service.UpdateDraftField(input.Subject, input.Body.Value); err != nil {
		return nil, apierr.From(err)
	}
	return &ledgerOutput{Body: ledgerFromView(h.service.Snapshot())}, nil
}

func (h *Handler) setStudent(_ context.Context, input *studentInput) (*ledgerOutput, error) {
	if err := h.service.SetStudentName(input.Body.StudentName); err != nil {
		return nil, apierr.From(err)
	}
	return &ledgerOutput{Body: ledgerFromView(h.service.Snapshot())}, nil
}

func (h *Handler) submit(ctx context.Context, input *submitInput) (*entryOutput, error) {
	draft := marks.NewDraft()
	for key, value := range input.Body.Marks {
		s, err := marks.ParseSubject(key)
		if err != nil {
			return nil, apierr.From(err)
		}
		draft[s] = value
	}

	entry, err := h.service.SubmitMarks(ctx, input.Body.StudentName, draft)
	if err != nil {
		h.log.Debug("submit rejected", "error", err)
		return nil, apierr.From(err)
	}

	return &entryOutput{Body: entry}, nil
}
