package types

import (
	"context"
	"fmt"

	"markskeeper/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ контекста, под которым лежит *client.App
const ClientAppKey contextKey = "client_app"

// AppFromContext достает приложение, созданное корневой командой
func AppFromContext(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
