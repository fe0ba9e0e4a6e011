package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ht5play/internal/catalog"
	"ht5play/internal/models"
	"ht5play/internal/storage"
)

const relatedGamesLimit = 4

type GameService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewGameService(s storage.Storage, log *slog.Logger) *GameService {
	return &GameService{
		stores: s,
		log:    log,
	}
}

// List runs the catalog pipeline for the public search and category
// views: fetch everything, filter by text and category, sort, clamp
// the page, slice. The requested page is clamped so a narrowed search
// can never leave the view stranded past the last page.
func (s *GameService) List(ctx context.Context, q catalog.Query) (catalog.Page[models.Game], error) {
	const op = "services.games.List"

	games, err := s.stores.Games().GetAll(ctx)
	if err != nil {
		return catalog.Page[models.Game]{}, fmt.Errorf("%s: %w", op, err)
	}

	categoryID, err := s.resolveCategory(ctx, q.CategoryParam)
	if err != nil {
		return catalog.Page[models.Game]{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := catalog.FilterGames(games, q.Text, categoryID)
	catalog.SortGames(filtered, q.Sort)

	page := catalog.ClampPage(q.Page, catalog.TotalPages(len(filtered), q.PerPage))
	return catalog.Paginate(filtered, page, q.PerPage), nil
}

/// AdminList drives the back-office game table: twenty rows a page,
// free-text search, no category constraint.
func (s *GameService) AdminList(ctx context.Context, text string, sortKey catalog.SortKey, page int) (catalog.Page[models.Game], error) {
	const op = "services.games.AdminList"

	games, err := s.stores.Games().GetAll(ctx)
	if err != nil {
		return catalog.Page[models.Game]{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := catalog.FilterGames(games, text, 0)
	catalog.SortGames(filtered, sortKey)

	size := catalog.AdminRowsPerPage
	page = catalog.ClampPage(page, catalog.TotalPages(len(filtered), size))
	return catalog.Paginate(filtered, page, size), nil
}

// resolveCategory turns the raw category query parameter into an id.
// The engine filters by id only; numeric values are taken as ids,
// anything else is matched against category slugs and then names so
// legacy name-based URLs keep resolving. An unknown category yields no
// matches rather than an error.
func (s *GameService) resolveCategory(ctx context.Context, param string) (int64, error) {
	if param == "" {
		return 0, nil
	}

	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		return id, nil
	}

	if cat, err := s.stores.Categories().GetBySlug(ctx, Slugify(param)); err == nil {
		return cat.ID, nil
	}

	cats, err := s.stores.Categories().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, cat := range cats {
		if strings.EqualFold(cat.Name, param) {
			return cat.ID, nil
		}
	}

	// No such category: filter with an id no record carries.
	return -1, nil
}

func (s *GameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	const op = "services.games.GetByID"

	g, err := s.stores.Games().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (s *GameService) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	const op = "services.games.GetBySlug"

	g, err := s.stores.Games().GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (s *GameService) GetFeatured(ctx context.Context) ([]models.Game, error) {
	const op = "services.games.GetFeatured"

	games, err := s.stores.Games().GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return games, nil
}

// GetRelated returns up to four other games from the same category.
func (s *GameService) GetRelated(ctx context.Context, id int64) ([]models.Game, error) {
	const op = "services.games.GetRelated"

	game, err := s.stores.Games().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sameCategory, err := s.stores.Games().GetByCategory(ctx, game.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	related := make([]models.Game, 0, relatedGamesLimit)
	for _, g := range sameCategory {
		if g.ID == game.ID {
			continue
		}
		related = append(related, g)
		if len(related) == relatedGamesLimit {
			break
		}
	}

	return related, nil
}

func (s *GameService) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	const op = "services.games.Create"

	if err := s.validate(g); err != nil {
		return nil, err
	}

	if g.Slug == "" {
		g.Slug = Slugify(g.Title)
	}

	if _, err := s.stores.Games().GetBySlug(ctx, g.Slug); err == nil {
		return nil, validationError("game with slug %q already exists", g.Slug)
	}

	created, err := s.stores.Games().Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recountCategory(ctx, created.CategoryID)

	return created, nil
}

// Update is a read-merge-write without optimistic locking; two admin
// sessions editing the same game resolve last-write-wins.
func (s *GameService) Update(ctx context.Context, g *models.Game) (*models.Game, error) {
	const op = "services.games.Update"

	if err := s.validate(g); err != nil {
		return nil, err
	}

	existing, err := s.stores.Games().GetByID(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if g.Slug == "" {
		g.Slug = existing.Slug
	}
	if g.Plays == 0 {
		g.Plays = existing.Plays
	}

	updated, err := s.stores.Games().Update(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.recountCategory(ctx, existing.CategoryID)
	if updated.CategoryID != existing.CategoryID {
		s.recountCategory(ctx, updated.CategoryID)
	}

	return updated, nil
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	const op = "services.games.Delete"

	existing, err := s.stores.Games().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.stores.Games().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.recountCategory(ctx, existing.CategoryID)

	return nil
}

// IncrementPlays bumps the play counter. It is an unguarded
// read-modify-write; a lost increment under concurrent plays is
// acceptable for a popularity counter.
func (s *GameService) IncrementPlays(ctx context.Context, id int64) error {
	const op = "services.games.IncrementPlays"

	g, err := s.stores.Games().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	g.Plays++
	if _, err := s.stores.Games().Update(ctx, g); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *GameService) Stats(ctx context.Context) (*models.GameStats, error) {
	const op = "services.games.Stats"

	games, err := s.stores.Games().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &models.GameStats{BySource: make(map[string]int)}
	weekAgo := time.Now().AddDate(0, 0, -7)

	for _, g := range games {
		stats.Total++
		if g.Featured {
			stats.Featured++
		}
		if g.CreatedAt.After(weekAgo) {
			stats.Recent++
		}
		if g.Source != "" {
			stats.BySource[g.Source]++
		}
	}

	return stats, nil
}

func (s *GameService) validate(g *models.Game) error {
	if strings.TrimSpace(g.Title) == "" {
		return validationError("title is required")
	}
	if strings.TrimSpace(g.URL) == "" {
		return validationError("url is required")
	}
	return nil
}

// recountCategory refreshes the denormalized game_count after a game
// mutation. The count is never taken from callers. Failures are logged
// and swallowed: a stale count must not fail the mutation that
// triggered it.
func (s *GameService) recountCategory(ctx context.Context, categoryID int64) {
	const op = "services.games.recountCategory"

	if categoryID == 0 {
		return
	}

	cat, err := s.stores.Categories().GetByID(ctx, categoryID)
	if err != nil {
		return
	}

	count, err := s.stores.Games().CountByCategory(ctx, categoryID)
	if err != nil {
		s.log.Warn("game count refresh failed",
			slog.String("operation", op),
			slog.Int64("category_id", categoryID),
			slog.String("error", err.Error()))
		return
	}

	cat.GameCount = count
	if _, err := s.stores.Categories().Update(ctx, cat); err != nil {
		s.log.Warn("game count refresh failed",
			slog.String("operation", op),
			slog.Int64("category_id", categoryID),
			slog.String("error", err.Error()))
	}
}
