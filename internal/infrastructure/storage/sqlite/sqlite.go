package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"markskeeper/internal/infrastructure/migration"
	"markskeeper/internal/infrastructure/storage"
)

// Storage - storage.Store поверх таблицы kv в SQLite
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New применяет миграции и открывает базу по пути path
func New(path string, log *slog.Logger) (*Storage, error) {
	return NewWithEngine(path, migration.DefaultEngine, log)
}

func NewWithEngine(path string, engine migration.MigrationEngine, log *slog.Logger) (*Storage, error) {
	if err := migration.NewMigration(migration.SQLiteURL(path), engine).Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	return &Storage{
		db:  db,
		log: log.With(slog.String("component", "sqlite_storage")),
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	for _, k := range keys {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, k, values[k], now)
		if err != nil {
			return fmt.Errorf("ошибка записи ключа %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	s.log.Debug("keys saved", "keys", keys)
	return nil
}

func (s *Storage) Remove(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", k); err != nil {
			return fmt.Errorf("ошибка удаления ключа %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	s.log.Debug("keys removed", "keys", keys)
	return nil
}

// Count - количество сохраненных ключей
func (s *Storage) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка подсчета ключей: %w", err)
	}
	return count, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
