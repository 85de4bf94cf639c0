package storage

import (
	"context"
	"errors"
)

// Ключи хранилища
const (
	KeyUsername       = "username"
	KeyPassword       = "password"
	KeyStudentName    = "studentName"
	KeySubmittedMarks = "submittedMarks"
)

// Keys - все ключи, которыми владеет приложение
var Keys = []string{
	KeyUsername,
	KeyPassword,
	KeyStudentName,
	KeySubmittedMarks,
}

var ErrNotFound = errors.New("key not found")

// Store - синхронное строковое key/value хранилище
type Store interface {
	// Get возвращает ErrNotFound, если ключа нет
	Get(ctx context.Context, key string) (string, error)
	// Set атомарно записывает все пары
	Set(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}
