package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
	"markskeeper/internal/infrastructure/storage/memory"
)

func newTestModel(t *testing.T) (*Model, *client.App) {
	t.Helper()

	app := client.NewWithStore(memory.New(), session.NewBcryptHasher(bcrypt.MinCost), slog.Default())
	app.Load(context.Background())
	return New(context.Background(), app, slog.Default()), app
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func login(t *testing.T, m *Model) {
	t.Helper()

	typeText(m, "alice")
	press(m, tea.KeyTab)
	typeText(m, "pw")
	press(m, tea.KeyEnter)
}

func TestModel_LoginValidation(t *testing.T) {
	m, app := newTestModel(t)

	typeText(m, "alice")
	press(m, tea.KeyEnter)

	assert.False(t, app.IsAuthenticated())
	assert.Contains(t, m.View(), "Both username and password are required.")
	assert.Equal(t, "alice", m.loginInputs[0].Value())
}

func TestModel_PasswordMasked(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyTab)
	typeText(m, "secret")

	assert.Equal(t, "secret", m.loginInputs[1].Value())
	assert.NotContains(t, m.View(), "secret")
}

func TestModel_AddMarks(t *testing.T) {
	m, app := newTestModel(t)
	login(t, m)
	require.True(t, app.IsAuthenticated())
	assert.Contains(t, m.View(), "Student Marks")
	assert.Equal(t, studentField, m.focus)

	// поле chemistry без имени студента
	press(m, tea.KeyTab)
	typeText(m, "90")
	assert.Equal(t, "90", app.Snapshot().Draft[marks.SubjectChemistry])

	press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "Student name is required.")
	assert.Empty(t, app.Snapshot().Entries)

	press(m, tea.KeyShiftTab)
	typeText(m, "Bob")
	press(m, tea.KeyEnter)

	view := app.Snapshot()
	require.Len(t, view.Entries, 1)
	assert.Equal(t, []string{"Chemistry: 90", "Maths: 0", "Physics: 0", "Computing: 0", "Electronics: 0"}, view.Entries[0].Marks)
	assert.Empty(t, m.marksInputs[1].Value())
	assert.Equal(t, "Bob", m.marksInputs[studentField].Value())

	out := m.View()
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Chemistry: 90")
	assert.NotContains(t, out, "Student name is required.")
}

func TestModel_FocusWraps(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	assert.Equal(t, 0, m.focus)

	press(m, tea.KeyShiftTab)
	assert.Equal(t, 1, m.focus)
}

func TestModel_Logout(t *testing.T) {
	m, app := newTestModel(t)
	login(t, m)
	typeText(m, "Bob")
	press(m, tea.KeyEnter)
	require.Len(t, app.Snapshot().Entries, 1)

	press(m, tea.KeyCtrlL)

	assert.False(t, app.IsAuthenticated())
	assert.Empty(t, app.Snapshot().Entries)
	assert.Empty(t, m.loginInputs[0].Value())
	assert.Empty(t, m.marksInputs[studentField].Value())
	assert.Contains(t, m.View(), "Login")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

type brokenService struct {
	*client.App
}

func (brokenService) SubmitDraft(context.Context) (marks.Entry, error) {
	return marks.Entry{}, errors.New("disk full")
}

func TestModel_StorageFailureShown(t *testing.T) {
	_, app := newTestModel(t)
	m := New(context.Background(), brokenService{app}, slog.Default())
	login(t, m)

	typeText(m, "Bob")
	press(m, tea.KeyEnter)

	assert.Contains(t, m.View(), "disk full")
}
