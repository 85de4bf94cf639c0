// Package web отдает экраны входа и журнала оценок в виде HTML-форм.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"markskeeper/internal/app/client"
	"markskeeper/internal/domain/marks"
	"markskeeper/internal/domain/session"
	"markskeeper/internal/domain/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Servicer interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	SubmitMarks(ctx context.Context, studentName string, draft marks.Draft) (marks.Entry, error)
	Snapshot() client.View
}

type Handler struct {
	service Servicer
	log     *slog.Logger
}

func NewHandler(service Servicer, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With(slog.String("component", "web")),
	}
}

// SetupRoutes регистрирует страницы на роутере
func (h *Handler) SetupRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Post("/login", h.login)
	r.Post("/marks", h.submit)
	r.Post("/logout", h.logout)
}

type field struct {
	Key   string
	Title string
	Value string
}

type page struct {
	Username    string
	Error       string
	StudentName string
	Fields      []field
	Groups      []marks.Group
}

func fields(draft marks.Draft) []field {
	out := make([]field, 0, len(marks.Subjects))
	for _, s := range marks.Subjects {
		out = append(out, field{Key: string(s), Title: s.Title(), Value: draft[s]})
	}
	return out
}

func pageFromView(v client.View) page {
	return page{
		Username:    v.Username,
		Error:       v.Error,
		StudentName: v.StudentName,
		Fields:      fields(v.Draft),
		Groups:      v.Groups,
	}
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	v := h.service.Snapshot()
	if v.Screen == client.ScreenMarks {
		h.render(w, http.StatusOK, "marks", pageFromView(v))
		return
	}
	h.render(w, http.StatusOK, "login", pageFromView(v))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	err := h.service.Login(r.Context(), username, r.PostForm.Get("password"))
	if err != nil {
		if ve, ok := validation.As(err); ok {
			h.render(w, http.StatusUnprocessableEntity, "login", page{Username: username, Error: ve.Message})
			return
		}
		h.log.Error("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	studentName := r.PostForm.Get("studentName")
	draft := marks.NewDraft()
	for _, s := range marks.Subjects {
		draft[s] = r.PostForm.Get(string(s))
	}

	_, err := h.service.SubmitMarks(r.Context(), studentName, draft)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNotLoggedIn):
	default:
		ve, ok := validation.As(err)
		if !ok {
			h.log.Error("submit failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// введенные значения возвращаются в форму
		p := pageFromView(h.service.Snapshot())
		p.Error = ve.Message
		p.StudentName = studentName
		p.Fields = fields(draft)
		h.render(w, http.StatusUnprocessableEntity, "marks", p)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.log.Error("logout failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render failed", "template", name, "error", err)
	}
}
