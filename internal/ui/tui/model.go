// Package tui - интерактивный терминальный интерфейс: экран входа и журнал оценок.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/validation"
)

// Servicer - операции приложения, которые использует интерфейс
type Servicer interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	UpdateDraftField(subject, value string) error
	SetStudentName(name string) error
	SubmitDraft(ctx context.Context) (marks.Entry, error)
	Snapshot() client.View
}

// Индексы полей экрана журнала: имя студента, затем предметы по порядку
const studentField = 0

type Model struct {
	ctx     context.Context
	service Servicer
	log     *slog.Logger

	loginInputs []textinput.Model
	marksInputs []textinput.Model
	focus       int

	// ошибка, не являющаяся ошибкой ввода (например, сбой хранилища)
	failure string
}

func New(ctx context.Context, service Servicer, log *slog.Logger) *Model {
	m := &Model{
		ctx:     ctx,
		service: service,
		log:     log.With(slog.String("component", "tui")),
	}

	username := textinput.New()
	username.Placeholder = "username"
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.loginInputs = []textinput.Model{username, password}

	student := textinput.New()
	student.Placeholder = "Student name"
	m.marksInputs = []textinput.Model{student}
	for range marks.Subjects {
		in := textinput.New()
		in.Placeholder = "0"
		in.CharLimit = 8
		m.marksInputs = append(m.marksInputs, in)
	}

	m.syncFromView()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) inputs() []textinput.Model {
	if m.service.Snapshot().Screen == client.ScreenMarks {
		return m.marksInputs
	}
	return m.loginInputs
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	case tea.KeyEnter:
		m.submit()
		return m, nil
	case tea.KeyCtrlL:
		m.logout()
		return m, nil
	}

	cmd := m.updateFocused(msg)
	m.pushDraft()
	return m, cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	inputs := m.inputs()
	if m.focus >= len(inputs) {
		return nil
	}

	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) setFocus(i int) {
	inputs := m.inputs()
	n := len(inputs)
	m.focus = ((i % n) + n) % n

	for j := range inputs {
		if j == m.focus {
			inputs[j].Focus()
		} else {
			inputs[j].Blur()
		}
	}
}

// pushDraft переносит значение поля журнала в черновик приложения
func (m *Model) pushDraft() {
	if m.service.Snapshot().Screen != client.ScreenMarks {
		return
	}

	value := m.marksInputs[m.focus].Value()
	var err error
	if m.focus == studentField {
		err = m.service.SetStudentName(value)
	} else {
		err = m.service.UpdateDraftField(string(marks.Subjects[m.focus-1]), value)
	}
	if err != nil {
		m.log.Warn("draft update rejected", "error", err)
	}
}

func (m *Model) submit() {
	m.failure = ""

	if m.service.Snapshot().Screen == client.ScreenLogin {
		err := m.service.Login(m.ctx, m.loginInputs[0].Value(), m.loginInputs[1].Value())
		m.handle(err)
		if err == nil {
			m.syncFromView()
		}
		return
	}

	_, err := m.service.SubmitDraft(m.ctx)
	m.handle(err)
	if err == nil {
		m.syncFromView()
	}
}

func (m *Model) logout() {
	if m.service.Snapshot().Screen != client.ScreenMarks {
		return
	}

	m.failure = ""
	m.handle(m.service.Logout(m.ctx))
	for i := range m.loginInputs {
		m.loginInputs[i].Reset()
	}
	m.syncFromView()
}

func (m *Model) handle(err error) {
	if err == nil {
		return
	}
	if _, ok := validation.As(err); ok {
		return
	}

	m.log.Error("operation failed", "error", err)
	m.failure = err.Error()
}

// syncFromView заполняет поля журнала из состояния приложения
func (m *Model) syncFromView() {
	v := m.service.Snapshot()

	m.marksInputs[studentField].SetValue(v.StudentName)
	for i, s := range marks.Subjects {
		m.marksInputs[i+1].SetValue(v.Draft[s])
	}

	m.setFocus(0)
}

func (m *Model) View() string {
	v := m.service.Snapshot()

	var b strings.Builder
	if v.Screen == client.ScreenLogin {
		b.WriteString(titleStyle.Render("Login") + "\n\n")
		b.WriteString(labelStyle.Render("Username") + m.loginInputs[0].View() + "\n")
		b.WriteString(labelStyle.Render("Password") + m.loginInputs[1].View() + "\n")
		m.writeErrors(&b, v.Error)
		b.WriteString(helpStyle.Render("tab: next field • enter: login • ctrl+c: quit"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Student Marks") + "  " + v.Username + "\n\n")
	b.WriteString(labelStyle.Render("Student name") + m.marksInputs[studentField].View() + "\n")
	for i, s := range marks.Subjects {
		b.WriteString(labelStyle.Render(s.Title()) + m.marksInputs[i+1].View() + "\n")
	}
	m.writeErrors(&b, v.Error)

	for _, g := range v.Groups {
		b.WriteString(studentStyle.Render(g.StudentName) + "\n")
		for _, e := range g.Entries {
			b.WriteString("  " + strings.Join(e.Marks, ", ") + "\n")
		}
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: add marks • ctrl+l: logout • ctrl+c: quit"))
	return b.String()
}

func (m *Model) writeErrors(b *strings.Builder, msg string) {
	if msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	if m.failure != "" {
		b.WriteString("\n" + errorStyle.Render(m.failure) + "\n")
	}
	b.WriteString("\n")
}

// Run запускает интерфейс и блокируется до выхода
func Run(ctx context.Context, service Servicer, log *slog.Logger) error {
	_, err := tea.NewProgram(New(ctx, service, log), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
