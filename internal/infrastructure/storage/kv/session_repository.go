package kv

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"markskeeper/internal/domain/session"
	"markskeeper/internal/infrastructure/storage"
)

type SessionRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewSessionRepository(store storage.Store, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		store: store,
		log:   log.With(slog.String("component", "session_repository")),
	}
}

func (r *SessionRepository) Load(ctx context.Context) (session.Identity, bool) {
	var identity session.Identity

	if !fetch(ctx, r.store, r.log, storage.KeyUsername, &identity.Username) {
		return session.Identity{}, false
	}
	if !fetch(ctx, r.store, r.log, storage.KeyPassword, &identity.PasswordHash) {
		return session.Identity{}, false
	}
	if identity.Username == "" || identity.PasswordHash == "" {
		r.log.Warn("stored identity is incomplete, ignoring")
		return session.Identity{}, false
	}

	return identity, true
}

func (r *SessionRepository) Save(ctx context.Context, identity session.Identity) error {
	username, err := storage.Encode(identity.Username)
	if err != nil {
		return err
	}
	password, err := storage.Encode(identity.PasswordHash)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, map[string]string{
		storage.KeyUsername: username,
		storage.KeyPassword: password,
	}); err != nil {
		return fmt.Errorf("store identity: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, storage.KeyUsername, storage.KeyPassword)
}

// fetch читает значение по ключу. Отсутствие, битые данные и ошибки чтения
// трактуются одинаково: значения нет.
func fetch(ctx context.Context, store storage.Store, log *slog.Logger, key string, v interface{}) bool {
	err := storage.Fetch(ctx, store, key, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, storage.ErrNotFound):
		return false
	default:
		log.Warn("stored value ignored", "key", key, "error", err)
		return false
	}
}
