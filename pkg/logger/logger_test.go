package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Run("Should default to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		Init()
		assert.True(t, Log.Enabled(context.Background(), slog.LevelInfo))
		assert.False(t, Log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("Should honor LOG_LEVEL", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		Init()
		assert.True(t, Log.Enabled(context.Background(), slog.LevelWarn))
		assert.False(t, Log.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Should fall back to info on garbage input", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "shouting")
		Init()
		assert.True(t, Log.Enabled(context.Background(), slog.LevelInfo))
	})
}
