package kv

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"markskeeper/internal/domain/marks"
	"markskeeper/internal/infrastructure/storage"
)

type MarksRepository struct {
	store storage.Store
	log   *slog.Logger
}

func NewMarksRepository(store storage.Store, log *slog.Logger) *MarksRepository {
	return &MarksRepository{
		store: store,
		log:   log.With(slog.String("component", "marks_repository")),
	}
}

func (r *MarksRepository) Load(ctx context.Context) marks.Snapshot {
	var snap marks.Snapshot

	fetch(ctx, r.store, r.log, storage.KeyStudentName, &snap.StudentName)

	var entries []marks.Entry
	if fetch(ctx, r.store, r.log, storage.KeySubmittedMarks, &entries) {
		for _, e := range entries {
			if !e.Valid() {
				r.log.Warn("stored ledger has malformed entry, ignoring", "student", e.StudentName)
				return snap
			}
		}
		snap.Entries = entries
	}

	return snap
}

func (r *MarksRepository) Save(ctx context.Context, snap marks.Snapshot) error {
	entries := snap.Entries
	if entries == nil {
		entries = []marks.Entry{}
	}

	ledger, err := storage.Encode(entries)
	if err != nil {
		return err
	}
	name, err := storage.Encode(snap.StudentName)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, map[string]string{
		storage.KeySubmittedMarks: ledger,
		storage.KeyStudentName:    name,
	}); err != nil {
		return fmt.Errorf("store ledger: %w", err)
	}
	return nil
}

func (r *MarksRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, storage.KeyStudentName, storage.KeySubmittedMarks)
}
