// GET  /                       # Экран входа или журнала (HTML)
// POST /login                  # Вход из формы
// POST /marks                  # Добавить запись из формы
// POST /logout                 # Выход
//
// GET  /api/v1/health          # Проверка состояния (публичный)
// GET  /api/v1/session         # Состояние сессии (публичный)
// POST /api/v1/session/login   # Вход (публичный)
// POST /api/v1/session/logout  # Выход (публичный)
// GET  /api/v1/marks           # Журнал и черновик (auth)
// PUT  /api/v1/marks/draft/{subject} # Поле черновика (auth)
// PUT  /api/v1/marks/student   # Имя студента (auth)
// POST /api/v1/marks           # Добавить запись (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	healthAPI "markskeeper/internal/app/server/api/http/health"
	marksAPI "markskeeper/internal/app/server/api/http/marks"
	"markskeeper/internal/app/server/api/http/middleware"
	"markskeeper/internal/app/server/api/http/middleware/auth"
	"markskeeper/internal/app/server/api/http/middleware/logger"
	sessionAPI "markskeeper/internal/app/server/api/http/session"
	"markskeeper/internal/app/server/web"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Session *sessionAPI.Handler
	Marks   *marksAPI.Handler
	Web     *web.Handler
}

// New создает *chi.Mux с HTML-экранами и операциями huma
func New(app *client.App, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Markskeeper API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(app, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Marks.SetupRoutes(API)
	h.Web.SetupRoutes(mux)

	return mux
}

func handlers(app *client.App, log *slog.Logger) *Handlers {
	authMW := auth.New(app, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(app, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	marksHandler := marksAPI.NewHandler(app, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Session: sessionHandler,
		Marks:   marksHandler,
		Web:     web.NewHandler(app, log),
	}
}
