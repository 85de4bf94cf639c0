package memory

import (
	"context"
	"sync"

	"markskeeper/internal/infrastructure/storage"
)

// Storage - in-memory реализация storage.Store для тестов и режима без диска
type Storage struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Storage {
	return &Storage{
		values: make(map[string]string),
	}
}

func (s *Storage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s *Storage) Set(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.values[k] = v
	}
	return nil
}

func (s *Storage) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

// Len - количество ключей
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *Storage) Close() error {
	return nil
}
