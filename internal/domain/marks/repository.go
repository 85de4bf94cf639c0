package marks

import "context"

type Repository interface {
	// Load никогда не возвращает ошибку: отсутствующие или битые данные дают пустой Snapshot
	Load(ctx context.Context) Snapshot
	Save(ctx context.Context, snapshot Snapshot) error
	Clear(ctx context.Context) error
}
