package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ht5play/internal/config"
	"ht5play/internal/models"
	"ht5play/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
<item>
<title>Bubble Pop</title>
<description>Match three bubbles before the ceiling drops.</description>
<guid>https://cdn.example/games/bubble-pop</guid>
<enclosure url="https://cdn.example/thumbs/bubble-pop.png"></enclosure>
</item>
<item>
<title>Neon Drift</title>
<description>Drift a neon car through the night.</description>
<guid>https://cdn.example/games/neon-drift</guid>
<enclosure url="https://cdn.example/thumbs/neon-drift.png"></enclosure>
<width>1024</width>
<height>768</height>
</item>
<item>
<title></title>
<description>Broken entry without a title.</description>
<guid>https://cdn.example/games/broken</guid>
</item>
</channel>
</rss>`

func newTestImporter(t *testing.T, store *memory.Storage, feedURL string) *ImportService {
	t.Helper()
	games := NewGameService(store, testLogger())
	return NewImportService(games, config.ImportConfig{
		GameMonetizeFeed:     feedURL,
		GameDistributionFeed: feedURL,
		Timeout:              5 * time.Second,
	}, testLogger())
}

func TestImportService_ImportFromProvider(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	store := memory.New()
	cat, err := store.Categories().Create(ctx, &models.Category{Name: "Arcade", Slug: "arcade"})
	require.NoError(t, err)

	importer := newTestImporter(t, store, server.URL)

	result, err := importer.ImportFromProvider(ctx, "gamemonetize", cat.ID)
	require.NoError(t, err)
	require.Len(t, result.Success, 2)
	assert.Empty(t, result.Errors)

	first := result.Success[0]
	assert.Equal(t, "Bubble Pop", first.Title)
	assert.Equal(t, "bubble-pop", first.Slug)
	assert.Equal(t, "https://cdn.example/games/bubble-pop", first.URL)
	assert.Equal(t, "https://cdn.example/thumbs/bubble-pop.png", first.Thumb)
	assert.Equal(t, "gamemonetize", first.Source)

	// No dimensions in the feed entry, so the defaults apply.
	assert.Equal(t, 800, first.Width)
	assert.Equal(t, 600, first.Height)

	// Feed-declared dimensions win over the defaults.
	second := result.Success[1]
	assert.Equal(t, "Neon Drift", second.Title)
	assert.Equal(t, 1024, second.Width)
	assert.Equal(t, 768, second.Height)

	refreshed, err := store.Categories().GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), refreshed.GameCount)
}

func TestImportService_DuplicatesDoNotAbortBatch(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	store := memory.New()
	importer := newTestImporter(t, store, server.URL)

	_, err := importer.ImportFromURL(ctx, server.URL, "custom", 0)
	require.NoError(t, err)

	// Second run hits the slug uniqueness check on every item.
	result, err := importer.ImportFromURL(ctx, server.URL, "custom", 0)
	require.NoError(t, err)
	assert.Empty(t, result.Success)
	assert.Len(t, result.Errors, 2)
}

func TestImportService_Errors(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	t.Run("unknown provider", func(t *testing.T) {
		importer := newTestImporter(t, store, "http://feed.invalid")
		_, err := importer.ImportFromProvider(ctx, "nosuch", 0)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("empty url", func(t *testing.T) {
		importer := newTestImporter(t, store, "http://feed.invalid")
		_, err := importer.ImportFromURL(ctx, "", "custom", 0)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("non-200 feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		importer := newTestImporter(t, store, server.URL)
		_, err := importer.ImportFromProvider(ctx, "gamedistribution", 0)
		assert.Error(t, err)
	})
}

func TestImportService_Providers(t *testing.T) {
	importer := newTestImporter(t, memory.New(), "http://feed.invalid")
	assert.Equal(t, []string{"gamedistribution", "gamemonetize"}, importer.Providers())
}
