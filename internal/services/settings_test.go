package services

import (
	"context"
	"errors"
	"testing"

	"ht5play/internal/models"
	"ht5play/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLimiter struct {
	maxBytes int64
}

func (c *captureLimiter) SetMaxBytes(maxBytes int64) { c.maxBytes = maxBytes }

func TestSettingsService_GetDefaults(t *testing.T) {
	ctx := context.Background()
	service := NewSettingsService(memory.New(), nil, testLogger())

	doc, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HT5Play", doc.SiteName)
	assert.Equal(t, 24, doc.GamesPerPage)
	assert.Equal(t, 10, doc.MaxFileSizeMB)
	assert.Equal(t, 1, doc.Version)
}

func TestSettingsService_Save(t *testing.T) {
	ctx := context.Background()
	service := NewSettingsService(memory.New(), nil, testLogger())

	t.Run("version increments on every save", func(t *testing.T) {
		first, err := service.Save(ctx, &models.Settings{
			SiteName: "HT5Play", GamesPerPage: 24, MaxFileSizeMB: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, first.Version)

		second, err := service.Save(ctx, &models.Settings{
			SiteName: "HT5Play Arcade", GamesPerPage: 12, MaxFileSizeMB: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, second.Version)

		loaded, err := service.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "HT5Play Arcade", loaded.SiteName)
		assert.Equal(t, 12, loaded.GamesPerPage)
	})

	t.Run("rejects empty site name", func(t *testing.T) {
		_, err := service.Save(ctx, &models.Settings{GamesPerPage: 24, MaxFileSizeMB: 10})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects non-positive page size", func(t *testing.T) {
		_, err := service.Save(ctx, &models.Settings{SiteName: "X", GamesPerPage: 0, MaxFileSizeMB: 10})
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestSettingsService_SavePushesUploadLimit(t *testing.T) {
	ctx := context.Background()
	limiter := &captureLimiter{}
	service := NewSettingsService(memory.New(), limiter, testLogger())

	_, err := service.Save(ctx, &models.Settings{
		SiteName: "HT5Play", GamesPerPage: 24, MaxFileSizeMB: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5)<<20, limiter.maxBytes)

	t.Run("rejected save leaves the limit alone", func(t *testing.T) {
		_, err := service.Save(ctx, &models.Settings{GamesPerPage: 24, MaxFileSizeMB: 99})
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, int64(5)<<20, limiter.maxBytes)
	})
}
