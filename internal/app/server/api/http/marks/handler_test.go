package marks

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
	"markskeeper/internal/domain/validation"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateDraftField(subject, value string) error {
	args := m.Called(subject, value)
	return args.Error(0)
}

func (m *MockService) SetStudentName(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockService) SubmitMarks(ctx context.Context, studentName string, draft marks.Draft) (marks.Entry, error) {
	args := m.Called(ctx, studentName, draft)
	return args.Get(0).(marks.Entry), args.Error(1)
}

func (m *MockService) Snapshot() client.View {
	args := m.Called()
	return args.Get(0).(client.View)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma.StatusError, got %v", err)
	return se.GetStatus()
}

func TestHandler_submit(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	draft := marks.NewDraft()
	draft[marks.SubjectChemistry] = "90"
	entry := marks.NewEntry("Bob", draft)

	service.On("SubmitMarks", mock.Anything, "Bob", draft).Return(entry, nil)

	out, err := handler.submit(context.Background(), &submitInput{Body: SubmitRequest{
		StudentName: "Bob",
		Marks:       map[string]string{"Chemistry": "90"},
	}})

	require.NoError(t, err)
	assert.Equal(t, entry, out.Body)
	service.AssertExpectations(t)
}

func TestHandler_submit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		request    SubmitRequest
		serviceErr error
		wantStatus int
	}{
		{
			name:       "blank student name",
			request:    SubmitRequest{StudentName: " "},
			serviceErr: validation.New("studentName", marks.MsgStudentNameRequired),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "logged out",
			request:    SubmitRequest{StudentName: "Bob"},
			serviceErr: session.ErrNotLoggedIn,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown subject",
			request:    SubmitRequest{StudentName: "Bob", Marks: map[string]string{"history": "1"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			handler := NewHandler(service, slog.Default(), huma.Middlewares{})

			if tt.serviceErr != nil {
				service.On("SubmitMarks", mock.Anything, tt.request.StudentName, mock.AnythingOfType("marks.Draft")).
					Return(marks.Entry{}, tt.serviceErr)
			}

			out, err := handler.submit(context.Background(), &submitInput{Body: tt.request})

			assert.Nil(t, out)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			service.AssertExpectations(t)
		})
	}
}

func TestHandler_updateDraftField(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	draft := marks.NewDraft()
	draft[marks.SubjectMaths] = "77"

	service.On("UpdateDraftField", "maths", "77").Return(nil)
	service.On("Snapshot").Return(client.View{Draft: draft, StudentName: "Bob"})

	input := &draftFieldInput{Subject: "maths"}
	input.Body.Value = "77"
	out, err := handler.updateDraftField(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "77", out.Body.Draft["maths"])
	assert.Len(t, out.Body.Draft, len(marks.Subjects))
	assert.Equal(t, "Bob", out.Body.StudentName)
}

func TestHandler_setStudent_LoggedOut(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("SetStudentName", "Bob").Return(session.ErrNotLoggedIn)

	_, err := handler.setStudent(context.Background(), &studentInput{Body: StudentRequest{StudentName: "Bob"}})

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_ledger(t *testing.T) {
	service := new(MockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	entries := []marks.Entry{marks.NewEntry("Bob", marks.NewDraft())}
	service.On("Snapshot").Return(client.View{
		Draft:   marks.NewDraft(),
		Entries: entries,
		Groups:  marks.GroupByStudent(entries),
	})

	out, err := handler.ledger(context.Background(), &ledgerInput{})

	require.NoError(t, err)
	assert.Equal(t, entries, out.Body.Entries)
	require.Len(t, out.Body.Groups, 1)
	assert.Equal(t, "Bob", out.Body.Groups[0].StudentName)
}
