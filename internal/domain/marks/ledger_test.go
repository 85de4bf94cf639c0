package marks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"markskeeper/internal/domain/validation"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(Snapshot)
}

func (m *MockRepository) Save(ctx context.Context, snapshot Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestLedger_Submit(t *testing.T) {
	mockRepo := new(MockRepository)
	ledger := NewLedger(mockRepo, slog.Default())
	ctx := context.Background()

	want := Entry{
		StudentName: "Bob",
		Marks:       []string{"Chemistry: 90", "Maths: 0", "Physics: 0", "Computing: 0", "Electronics: 0"},
	}
	mockRepo.On("Save", mock.Anything, Snapshot{StudentName: "Bob", Entries: []Entry{want}}).Return(nil)

	require.NoError(t, ledger.UpdateDraftField(SubjectChemistry, "90"))
	entry, err := ledger.Submit(ctx, "Bob", ledger.Draft())

	assert.NoError(t, err)
	assert.Equal(t, want, entry)
	assert.Equal(t, []Entry{want}, ledger.Entries())
	assert.Equal(t, NewDraft(), ledger.Draft())
	assert.Equal(t, "Bob", ledger.StudentName())
	assert.Empty(t, ledger.Err())

	mockRepo.AssertExpectations(t)
}

func TestLedger_Submit_StudentNameRequired(t *testing.T) {
	tests := []struct {
		name        string
		studentName string
	}{
		{name: "Empty name", studentName: ""},
		{name: "Spaces", studentName: "   "},
		{name: "Tabs and newlines", studentName: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			ledger := NewLedger(mockRepo, slog.Default())

			require.NoError(t, ledger.UpdateDraftField(SubjectMaths, "70"))
			_, err := ledger.Submit(context.Background(), tt.studentName, ledger.Draft())

			ve, ok := validation.As(err)
			require.True(t, ok)
			assert.Equal(t, MsgStudentNameRequired, ve.Message)
			assert.Equal(t, MsgStudentNameRequired, ledger.Err())
			assert.Empty(t, ledger.Entries())
			assert.Equal(t, "70", ledger.Draft()[SubjectMaths])

			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestLedger_Submit_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	ledger := NewLedger(mockRepo, slog.Default())

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("marks.Snapshot")).Return(errors.New("disk full"))

	require.NoError(t, ledger.UpdateDraftField(SubjectPhysics, "55"))
	_, err := ledger.Submit(context.Background(), "Bob", ledger.Draft())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, ledger.Entries())
	assert.Equal(t, "55", ledger.Draft()[SubjectPhysics])

	mockRepo.AssertExpectations(t)
}

func TestLedger_Submit_AppendsInOrder(t *testing.T) {
	mockRepo := new(MockRepository)
	ledger := NewLedger(mockRepo, slog.Default())
	ctx := context.Background()

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("marks.Snapshot")).Return(nil)

	names := []string{"Bob", "Alice", "Bob"}
	for i, name := range names {
		_, err := ledger.Submit(ctx, name, NewDraft())
		require.NoError(t, err)
		assert.Len(t, ledger.Entries(), i+1)
	}

	entries := ledger.Entries()
	for i, name := range names {
		assert.Equal(t, name, entries[i].StudentName)
	}
}

func TestLedger_UpdateDraftField(t *testing.T) {
	ledger := NewLedger(new(MockRepository), slog.Default())

	require.NoError(t, ledger.UpdateDraftField(SubjectComputing, "88"))
	require.NoError(t, ledger.UpdateDraftField(SubjectComputing, "89"))

	draft := ledger.Draft()
	assert.Len(t, draft, len(Subjects))
	assert.Equal(t, "89", draft[SubjectComputing])
	assert.Equal(t, "", draft[SubjectChemistry])

	err := ledger.UpdateDraftField(Subject("biology"), "1")
	assert.ErrorIs(t, err, ErrUnknownSubject)
	assert.Len(t, ledger.Draft(), len(Subjects))
}

func TestLedger_LoadAndReset(t *testing.T) {
	mockRepo := new(MockRepository)
	ledger := NewLedger(mockRepo, slog.Default())
	ctx := context.Background()

	stored := Snapshot{
		StudentName: "Bob",
		Entries:     []Entry{NewEntry("Bob", NewDraft())},
	}
	mockRepo.On("Load", mock.Anything).Return(stored)
	mockRepo.On("Clear", mock.Anything).Return(nil)

	require.NoError(t, ledger.UpdateDraftField(SubjectMaths, "1"))
	ledger.Load(ctx)

	assert.Equal(t, stored.Entries, ledger.Entries())
	assert.Equal(t, "Bob", ledger.StudentName())
	assert.Equal(t, NewDraft(), ledger.Draft())

	require.NoError(t, ledger.Reset(ctx))
	assert.Empty(t, ledger.Entries())
	assert.Empty(t, ledger.StudentName())

	mockRepo.AssertExpectations(t)
}
