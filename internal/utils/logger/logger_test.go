package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"
	"markskeeper/internal/app/client/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvLocal, &buf)

	logger.With(slog.String("component", "test")).Info("ledger loaded", "entries", 3)

	out := buf.String()
	assert.Contains(t, out, "ledger loaded")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"entries": 3`)
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvProd, &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
