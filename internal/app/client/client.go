package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client/config"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
	"markskeeper/internal/infrastructure/storage"
	"markskeeper/internal/infrastructure/storage/kv"
	"markskeeper/internal/infrastructure/storage/memory"
	"markskeeper/internal/infrastructure/storage/sqlite"
)

// Screen - экран, который должен показать интерфейс
type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenMarks Screen = "marks"
)

// App - явный объект сессии: контроллер входа, журнал оценок и хранилище.
// Все операции сериализуются мьютексом.
type App struct {
	log     *slog.Logger
	store   storage.Store
	session *session.Controller
	ledger  *marks.Ledger
	mu      sync.Mutex
}

// View - снимок состояния для отрисовки любым интерфейсом
type View struct {
	Screen      Screen        `json:"screen"`
	LoggedIn    bool          `json:"loggedIn"`
	Username    string        `json:"username"`
	Error       string        `json:"error,omitempty"`
	StudentName string        `json:"studentName"`
	Draft       marks.Draft   `json:"draft"`
	Entries     []marks.Entry `json:"entries"`
	Groups      []marks.Group `json:"groups"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}

	app := NewWithStore(store, session.NewBcryptHasher(bcrypt.DefaultCost), log)
	app.Load(context.Background())

	return app, nil
}

func openStore(cfg *config.Config, log *slog.Logger) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Debug("используется хранилище в памяти")
		return memory.New(), nil
	case config.StorageSQLite:
		store, err := sqlite.New(cfg.DataPath, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("неизвестный storage_driver: %q", cfg.StorageDriver)
	}
}

// NewWithStore собирает приложение поверх готового хранилища. Load не вызывается.
func NewWithStore(store storage.Store, hasher session.Hasher, log *slog.Logger) *App {
	return &App{
		log:     log.With(slog.String("component", "app")),
		store:   store,
		session: session.NewController(kv.NewSessionRepository(store, log), hasher, log),
		ledger:  marks.NewLedger(kv.NewMarksRepository(store, log), log),
	}
}

// Load восстанавливает сессию и журнал из хранилища
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.Load(ctx)
	a.ledger.Load(ctx)

	a.log.Debug("state restored",
		"logged_in", a.session.IsLoggedIn(),
		"entries", len(a.ledger.Entries()),
	)
}

func (a *App) Login(ctx context.Context, username, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.session.AttemptLogin(ctx, username, password)
}

// Logout очищает все ключи хранилища и возвращает состояние к начальному
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return errors.Join(
		a.session.Logout(ctx),
		a.ledger.Reset(ctx),
	)
}

func (a *App) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.session.IsLoggedIn()
}

func (a *App) UpdateDraftField(subject, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.IsLoggedIn() {
		return session.ErrNotLoggedIn
	}

	s, err := marks.ParseSubject(subject)
	if err != nil {
		return err
	}
	return a.ledger.UpdateDraftField(s, value)
}

func (a *App) SetStudentName(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.IsLoggedIn() {
		return session.ErrNotLoggedIn
	}

	a.ledger.SetStudentName(name)
	return nil
}

// SubmitMarks добавляет запись с явно переданными именем и оценками
func (a *App) SubmitMarks(ctx context.Context, studentName string, draft marks.Draft) (marks.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.IsLoggedIn() {
		return marks.Entry{}, session.ErrNotLoggedIn
	}

	return a.ledger.Submit(ctx, studentName, draft)
}

// SubmitDraft добавляет запись из текущего черновика
func (a *App) SubmitDraft(ctx context.Context) (marks.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.IsLoggedIn() {
		return marks.Entry{}, session.ErrNotLoggedIn
	}

	return a.ledger.SubmitDraft(ctx)
}

func (a *App) Snapshot() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	st := a.session.State()
	entries := a.ledger.Entries()

	v := View{
		Screen:      ScreenLogin,
		LoggedIn:    st.LoggedIn,
		Username:    st.Username,
		Error:       st.Error,
		StudentName: a.ledger.StudentName(),
		Draft:       a.ledger.Draft(),
		Entries:     entries,
		Groups:      marks.GroupByStudent(entries),
	}

	if st.LoggedIn {
		v.Screen = ScreenMarks
		v.Error = a.ledger.Err()
	}

	return v
}

func (a *App) Close() error {
	return a.store.Close()
}
