package memory

import (
	"context"

	"ht5play/internal/models"
)

// Seed loads a small fixture set so a memory-backed instance is usable
// straight away in local runs.
func (s *Storage) Seed(ctx context.Context) error {
	action, err := s.Categories().Create(ctx, &models.Category{
		Name: "Action", Slug: "action", Icon: "Zap", Color: "#ef4444",
	})
	if err != nil {
		return err
	}
	puzzle, err := s.Categories().Create(ctx, &models.Category{
		Name: "Puzzle", Slug: "puzzle", Icon: "Puzzle", Color: "#3b82f6",
	})
	if err != nil {
		return err
	}

	games := []models.Game{
		{
			Title: "Neon Runner", Slug: "neon-runner",
			Description: "Endless runner through a neon city",
			URL:         "https://example.com/games/neon-runner",
			Thumb:       "https://example.com/thumbs/neon-runner.png",
			CategoryID:  action.ID, Featured: true,
			Width: 800, Height: 600, Source: "manual",
		},
		{
			Title: "Block Mind", Slug: "block-mind",
			Description: "Slide blocks until the pattern resolves",
			URL:         "https://example.com/games/block-mind",
			Thumb:       "https://example.com/thumbs/block-mind.png",
			CategoryID:  puzzle.ID,
			Width:       800, Height: 600, Source: "manual",
		},
	}
	for i := range games {
		if _, err := s.Games().Create(ctx, &games[i]); err != nil {
			return err
		}
	}

	// Creating through the store skips the service-layer recount, so
	// refresh game_count before handing the fixtures over.
	for _, cat := range []*models.Category{action, puzzle} {
		count, err := s.Games().CountByCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		cat.GameCount = count
		if _, err := s.Categories().Update(ctx, cat); err != nil {
			return err
		}
	}

	_, err = s.Pages().Create(ctx, &models.Page{
		Title: "About", Slug: "about",
		Content: "<p>HT5Play is a free HTML5 games portal.</p>",
		Status:  models.StatusPublished,
	})
	if err != nil {
		return err
	}

	menus := []models.Menu{
		{Location: models.MenuHeader, Label: "Home", Link: "/", SortOrder: 1},
		{Location: models.MenuHeader, Label: "All Games", Link: "/search", SortOrder: 2},
		{Location: models.MenuFooter, Label: "About", Link: "/page/about", SortOrder: 1},
	}
	for i := range menus {
		if _, err := s.Menus().Create(ctx, &menus[i]); err != nil {
			return err
		}
	}

	return nil
}
