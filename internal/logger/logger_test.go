package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/landscapectl/landscapectl/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	log := Initialize(constants.CLI, slog.LevelDebug)

	require.NotNil(t, log)
	assert.Equal(t, log, slog.Default())
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestInitialize_LevelFiltering(t *testing.T) {
	log := Initialize(constants.Production, slog.LevelWarn)

	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestGetDeadlineInfo(t *testing.T) {
	t.Run("no deadline", func(t *testing.T) {
		args := GetDeadlineInfo(context.Background())
		assert.Equal(t, []any{"deadline", "none", "deadline_remaining", "none"}, args)
	})

	t.Run("with deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		args := GetDeadlineInfo(ctx)
		require.Len(t, args, 4)
		assert.Equal(t, "deadline", args[0])
		assert.NotEqual(t, "none", args[1])
	})
}
