package marks

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"markskeeper/internal/domain/validation"
)

// Ledger хранит черновик, имя студента и историю отправленных записей.
// Не потокобезопасен, синхронизацию обеспечивает владелец.
type Ledger struct {
	repo Repository
	log  *slog.Logger

	draft       Draft
	studentName string
	entries     []Entry
	err         string
}

func NewLedger(repo Repository, log *slog.Logger) *Ledger {
	return &Ledger{
		repo:  repo,
		log:   log.With(slog.String("component", "marks_ledger")),
		draft: NewDraft(),
	}
}

type submitRequest struct {
	StudentName string `json:"studentName" validate:"notblank"`
}

// Load восстанавливает журнал из хранилища, черновик всегда начинается пустым
func (l *Ledger) Load(ctx context.Context) {
	snap := l.repo.Load(ctx)

	l.draft = NewDraft()
	l.studentName = snap.StudentName
	l.entries = snap.Entries
	l.err = ""

	l.log.Debug("ledger loaded", "entries", len(l.entries))
}

// UpdateDraftField перезаписывает одно поле черновика
func (l *Ledger) UpdateDraftField(subject Subject, value string) error {
	if !subject.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
	}
	l.draft[subject] = value
	return nil
}

// SetStudentName обновляет имя студента в форме ввода
func (l *Ledger) SetStudentName(name string) {
	l.studentName = name
}

// Submit добавляет запись в конец журнала и сбрасывает черновик.
// Состояние в памяти меняется только после успешного сохранения.
func (l *Ledger) Submit(ctx context.Context, studentName string, draft Draft) (Entry, error) {
	if err := validation.Struct(submitRequest{StudentName: studentName}, MsgStudentNameRequired); err != nil {
		if ve, ok := validation.As(err); ok {
			l.err = ve.Message
		}
		return Entry{}, err
	}

	entry := NewEntry(studentName, draft)

	next := make([]Entry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	next = append(next, entry)

	if err := l.repo.Save(ctx, Snapshot{StudentName: studentName, Entries: next}); err != nil {
		return Entry{}, fmt.Errorf("save ledger: %w", err)
	}

	l.entries = next
	l.studentName = studentName
	l.draft = NewDraft()
	l.err = ""

	l.log.Debug("marks submitted", "student", studentName, "entries", len(l.entries))

	return entry, nil
}

// SubmitDraft отправляет текущий черновик под текущим именем студента
func (l *Ledger) SubmitDraft(ctx context.Context) (Entry, error) {
	return l.Submit(ctx, l.studentName, l.draft)
}

// Reset удаляет сохраненный журнал и возвращает состояние к начальному
func (l *Ledger) Reset(ctx context.Context) error {
	err := l.repo.Clear(ctx)

	l.draft = NewDraft()
	l.studentName = ""
	l.entries = nil
	l.err = ""

	if err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	return nil
}

func (l *Ledger) Draft() Draft {
	return l.draft.Clone()
}

func (l *Ledger) StudentName() string {
	return l.studentName
}

// Entries возвращает копию истории записей
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Err - последнее сообщение об ошибке ввода
func (l *Ledger) Err() string {
	return l.err
}
