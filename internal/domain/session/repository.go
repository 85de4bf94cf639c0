package session

import (
	"context"
)

type Repository interface {
	// Load возвращает false, если данных нет или они повреждены
	Load(ctx context.Context) (Identity, bool)
	Save(ctx context.Context, identity Identity) error
	Clear(ctx context.Context) error
}
