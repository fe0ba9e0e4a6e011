package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ht5play/internal/catalog"
	"ht5play/internal/models"
	"ht5play/internal/storage"
	"ht5play/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedGames(t *testing.T, store *memory.Storage, titles []string, categoryID int64) {
	t.Helper()
	ctx := context.Background()
	for _, title := range titles {
		_, err := store.Games().Create(ctx, &models.Game{
			Title:      title,
			Slug:       Slugify(title),
			URL:        "https://games.example/" + Slugify(title),
			CategoryID: categoryID,
		})
		require.NoError(t, err)
	}
}

func TestGameService_Create(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	cat, err := store.Categories().Create(ctx, &models.Category{Name: "Action", Slug: "action"})
	require.NoError(t, err)

	t.Run("derives slug and recounts category", func(t *testing.T) {
		created, err := service.Create(ctx, &models.Game{
			Title:      "Super Dragon: The Revenge!",
			URL:        "https://games.example/dragon",
			CategoryID: cat.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "super-dragon-the-revenge", created.Slug)

		refreshed, err := store.Categories().GetByID(ctx, cat.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), refreshed.GameCount)
	})

	t.Run("duplicate slug rejected", func(t *testing.T) {
		_, err := service.Create(ctx, &models.Game{
			Title: "Super Dragon: The Revenge",
			URL:   "https://games.example/dragon-2",
		})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("missing title rejected", func(t *testing.T) {
		_, err := service.Create(ctx, &models.Game{URL: "https://games.example/x"})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("missing url rejected", func(t *testing.T) {
		_, err := service.Create(ctx, &models.Game{Title: "No URL"})
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestGameService_Update(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	action, err := store.Categories().Create(ctx, &models.Category{Name: "Action", Slug: "action"})
	require.NoError(t, err)
	puzzle, err := store.Categories().Create(ctx, &models.Category{Name: "Puzzle", Slug: "puzzle"})
	require.NoError(t, err)

	created, err := service.Create(ctx, &models.Game{
		Title: "Shifter", URL: "https://games.example/shifter", CategoryID: action.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.IncrementPlays(ctx, created.ID))

	t.Run("preserves slug and plays, recounts both categories", func(t *testing.T) {
		updated, err := service.Update(ctx, &models.Game{
			ID:         created.ID,
			Title:      "Shifter Deluxe",
			URL:        created.URL,
			CategoryID: puzzle.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, int64(1), updated.Plays)

		oldCat, err := store.Categories().GetByID(ctx, action.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), oldCat.GameCount)

		newCat, err := store.Categories().GetByID(ctx, puzzle.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), newCat.GameCount)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := service.Update(ctx, &models.Game{ID: 999, Title: "Ghost", URL: "u"})
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestGameService_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	cat, err := store.Categories().Create(ctx, &models.Category{Name: "Action", Slug: "action"})
	require.NoError(t, err)

	created, err := service.Create(ctx, &models.Game{
		Title: "Short Lived", URL: "https://games.example/short", CategoryID: cat.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	refreshed, err := store.Categories().GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), refreshed.GameCount)

	err = service.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestGameService_List(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	action, err := store.Categories().Create(ctx, &models.Category{Name: "Action", Slug: "action"})
	require.NoError(t, err)
	puzzle, err := store.Categories().Create(ctx, &models.Category{Name: "Puzzle", Slug: "puzzle"})
	require.NoError(t, err)

	seedGames(t, store, []string{"Dragon Quest", "Castle Siege", "Neon Drift"}, action.ID)
	seedGames(t, store, []string{"Dragon Sudoku", "Block Mind"}, puzzle.ID)

	t.Run("text filter is case-insensitive", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{Text: "DRAGON", Page: 1, PerPage: 24})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("category by slug", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{CategoryParam: "puzzle", Page: 1, PerPage: 24})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("category by name", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{CategoryParam: "Action", Page: 1, PerPage: 24})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("unknown category yields empty page", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{CategoryParam: "arcade", Page: 1, PerPage: 24})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Items)
	})

	t.Run("page past the end clamps to the last", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{Page: 99, PerPage: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Current)
		assert.NotEmpty(t, page.Items)
	})

	t.Run("zero page size falls back to one per page", func(t *testing.T) {
		page, err := service.List(ctx, catalog.Query{Page: 1, PerPage: 0})
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, 5, page.TotalPages)
		assert.Len(t, page.Items, 1)
	})
}

func TestGameService_GetRelated(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	cat, err := store.Categories().Create(ctx, &models.Category{Name: "Action", Slug: "action"})
	require.NoError(t, err)

	seedGames(t, store, []string{"One", "Two", "Three", "Four", "Five", "Six"}, cat.ID)

	first, err := store.Games().GetBySlug(ctx, "one")
	require.NoError(t, err)

	related, err := service.GetRelated(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, related, 4)
	for _, g := range related {
		assert.NotEqual(t, first.ID, g.ID)
		assert.Equal(t, cat.ID, g.CategoryID)
	}
}

func TestGameService_Stats(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	service := NewGameService(store, testLogger())

	_, err := store.Games().Create(ctx, &models.Game{Title: "A", URL: "u", Featured: true, Source: "manual"})
	require.NoError(t, err)
	_, err = store.Games().Create(ctx, &models.Game{Title: "B", URL: "u", Source: "gamemonetize"})
	require.NoError(t, err)
	_, err = store.Games().Create(ctx, &models.Game{Title: "C", URL: "u", Source: "gamemonetize"})
	require.NoError(t, err)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Featured)
	assert.Equal(t, 3, stats.Recent)
	assert.Equal(t, 2, stats.BySource["gamemonetize"])
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "a-b-c", Slugify("a - b - c"))
	assert.Equal(t, "100-free", Slugify("100% Free"))
	assert.Equal(t, "", Slugify("***"))
}
