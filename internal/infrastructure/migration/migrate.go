package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Регистрация драйвера SQLite для миграций
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(databaseURL string) (Migrator, error)

type Migration struct {
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(databaseURL string, engine MigrationEngine) *Migration {
	return &Migration{
		databaseURL: databaseURL,
		engine:      engine,
	}
}

// SQLiteURL строит URL базы для драйвера sqlite3
func SQLiteURL(path string) string {
	return "sqlite3://" + path
}

// DefaultEngine — реальная реализация, миграции встроены в бинарник
func DefaultEngine(databaseURL string) (Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations source: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
