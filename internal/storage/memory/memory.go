// Package memory is the in-process implementation of storage.Storage.
// It backs local development and tests the same way the hosted backend
// does in deployments: same interfaces, same error values. Identifiers
// come from a per-collection monotonic counter owned by the store, so a
// deleted id is never reissued.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type Storage struct {
	mu sync.RWMutex

	nextGameID     int64
	nextCategoryID int64
	nextBlogID     int64
	nextPageID     int64
	nextMenuID     int64
	nextAdID       int64

	games      map[int64]models.Game
	categories map[int64]models.Category
	blogs      map[int64]models.Blog
	pages      map[int64]models.Page
	menus      map[int64]models.Menu
	ads        map[int64]models.Ad
	settings   *models.Settings
}

func New() *Storage {
	return &Storage{
		games:      make(map[int64]models.Game),
		categories: make(map[int64]models.Category),
		blogs:      make(map[int64]models.Blog),
		pages:      make(map[int64]models.Page),
		menus:      make(map[int64]models.Menu),
		ads:        make(map[int64]models.Ad),
	}
}

func (s *Storage) Close() error { return nil }

func (s *Storage) Games() storage.GameStore          { return &gameStore{s} }
func (s *Storage) Categories() storage.CategoryStore { return &categoryStore{s} }
func (s *Storage) Blogs() storage.BlogStore          { return &blogStore{s} }
func (s *Storage) Pages() storage.PageStore          { return &pageStore{s} }
func (s *Storage) Menus() storage.MenuStore          { return &menuStore{s} }
func (s *Storage) Ads() storage.AdStore              { return &adStore{s} }
func (s *Storage) Settings() storage.SettingsStore   { return &settingsStore{s} }

// categoryName resolves the joined name under a held read lock.
func (s *Storage) categoryName(id int64) string {
	if c, ok := s.categories[id]; ok {
		return c.Name
	}
	return ""
}

type gameStore struct {
	s *Storage
}

func (g *gameStore) GetAll(_ context.Context) ([]models.Game, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	out := make([]models.Game, 0, len(g.s.games))
	for _, game := range g.s.games {
		game.CategoryName = g.s.categoryName(game.CategoryID)
		out = append(out, game)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (g *gameStore) GetByID(_ context.Context, id int64) (*models.Game, error) {
	const op = "storage.memory.games.GetByID"

	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	game, ok := g.s.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	game.CategoryName = g.s.categoryName(game.CategoryID)

	return &game, nil
}

func (g *gameStore) GetBySlug(_ context.Context, slug string) (*models.Game, error) {
	const op = "storage.memory.games.GetBySlug"

	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	for _, game := range g.s.games {
		if strings.EqualFold(game.Slug, slug) {
			game.CategoryName = g.s.categoryName(game.CategoryID)
			return &game, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func (g *gameStore) GetByCategory(ctx context.Context, categoryID int64) ([]models.Game, error) {
	all, err := g.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Game, 0)
	for _, game := range all {
		if game.CategoryID == categoryID {
			out = append(out, game)
		}
	}

	return out, nil
}

func (g *gameStore) GetFeatured(ctx context.Context) ([]models.Game, error) {
	all, err := g.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Game, 0)
	for _, game := range all {
		if game.Featured {
			out = append(out, game)
		}
	}

	return out, nil
}

func (g *gameStore) CountByCategory(_ context.Context, categoryID int64) (int64, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	var count int64
	for _, game := range g.s.games {
		if game.CategoryID == categoryID {
			count++
		}
	}

	return count, nil
}

func (g *gameStore) Create(_ context.Context, game *models.Game) (*models.Game, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	g.s.nextGameID++
	now := time.Now()

	stored := *game
	stored.ID = g.s.nextGameID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	g.s.games[stored.ID] = stored

	stored.CategoryName = g.s.categoryName(stored.CategoryID)
	return &stored, nil
}

func (g *gameStore) Update(_ context.Context, game *models.Game) (*models.Game, error) {
	const op = "storage.memory.games.Update"

	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	existing, ok := g.s.games[game.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *game
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	g.s.games[stored.ID] = stored

	stored.CategoryName = g.s.categoryName(stored.CategoryID)
	return &stored, nil
}

func (g *gameStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.games.Delete"

	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	if _, ok := g.s.games[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(g.s.games, id)

	return nil
}

type categoryStore struct {
	s *Storage
}

func (c *categoryStore) GetAll(_ context.Context) ([]models.Category, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	out := make([]models.Category, 0, len(c.s.categories))
	for _, cat := range c.s.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (c *categoryStore) GetByID(_ context.Context, id int64) (*models.Category, error) {
	const op = "storage.memory.categories.GetByID"

	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	cat, ok := c.s.categories[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &cat, nil
}

func (c *categoryStore) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	const op = "storage.memory.categories.GetBySlug"

	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, cat := range c.s.categories {
		if strings.EqualFold(cat.Slug, slug) {
			return &cat, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func (c *categoryStore) Create(_ context.Context, cat *models.Category) (*models.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	c.s.nextCategoryID++
	now := time.Now()

	stored := *cat
	stored.ID = c.s.nextCategoryID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	c.s.categories[stored.ID] = stored

	return &stored, nil
}

func (c *categoryStore) Update(_ context.Context, cat *models.Category) (*models.Category, error) {
	const op = "storage.memory.categories.Update"

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	existing, ok := c.s.categories[cat.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *cat
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	c.s.categories[stored.ID] = stored

	return &stored, nil
}

func (c *categoryStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.categories.Delete"

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if _, ok := c.s.categories[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(c.s.categories, id)

	return nil
}

type blogStore struct {
	s *Storage
}

func (b *blogStore) GetAll(_ context.Context) ([]models.Blog, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	out := make([]models.Blog, 0, len(b.s.blogs))
	for _, blog := range b.s.blogs {
		out = append(out, blog)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (b *blogStore) GetByID(_ context.Context, id int64) (*models.Blog, error) {
	const op = "storage.memory.blogs.GetByID"

	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	blog, ok := b.s.blogs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &blog, nil
}

func (b *blogStore) GetBySlug(_ context.Context, slug string) (*models.Blog, error) {
	const op = "storage.memory.blogs.GetBySlug"

	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	for _, blog := range b.s.blogs {
		if strings.EqualFold(blog.Slug, slug) {
			return &blog, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func (b *blogStore) GetPublished(ctx context.Context) ([]models.Blog, error) {
	all, err := b.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Blog, 0)
	for _, blog := range all {
		if blog.Status == models.StatusPublished {
			out = append(out, blog)
		}
	}

	return out, nil
}

func (b *blogStore) GetFeatured(ctx context.Context) ([]models.Blog, error) {
	published, err := b.GetPublished(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Blog, 0)
	for _, blog := range published {
		if blog.Featured {
			out = append(out, blog)
		}
	}

	return out, nil
}

func (b *blogStore) Create(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	b.s.nextBlogID++
	now := time.Now()

	stored := *blog
	stored.ID = b.s.nextBlogID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	b.s.blogs[stored.ID] = stored

	return &stored, nil
}

func (b *blogStore) Update(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	const op = "storage.memory.blogs.Update"

	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	existing, ok := b.s.blogs[blog.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *blog
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	b.s.blogs[stored.ID] = stored

	return &stored, nil
}

func (b *blogStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.blogs.Delete"

	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	if _, ok := b.s.blogs[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(b.s.blogs, id)

	return nil
}

type pageStore struct {
	s *Storage
}

func (p *pageStore) GetAll(_ context.Context) ([]models.Page, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	out := make([]models.Page, 0, len(p.s.pages))
	for _, page := range p.s.pages {
		out = append(out, page)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })

	return out, nil
}

func (p *pageStore) GetByID(_ context.Context, id int64) (*models.Page, error) {
	const op = "storage.memory.pages.GetByID"

	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	page, ok := p.s.pages[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &page, nil
}

func (p *pageStore) GetBySlug(_ context.Context, slug string) (*models.Page, error) {
	const op = "storage.memory.pages.GetBySlug"

	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	for _, page := range p.s.pages {
		if strings.EqualFold(page.Slug, slug) {
			return &page, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

func (p *pageStore) Create(_ context.Context, page *models.Page) (*models.Page, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	p.s.nextPageID++
	now := time.Now()

	stored := *page
	stored.ID = p.s.nextPageID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	p.s.pages[stored.ID] = stored

	return &stored, nil
}

func (p *pageStore) Update(_ context.Context, page *models.Page) (*models.Page, error) {
	const op = "storage.memory.pages.Update"

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	existing, ok := p.s.pages[page.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *page
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	p.s.pages[stored.ID] = stored

	return &stored, nil
}

func (p *pageStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.pages.Delete"

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.pages[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(p.s.pages, id)

	return nil
}

type menuStore struct {
	s *Storage
}

func (m *menuStore) GetAll(_ context.Context) ([]models.Menu, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]models.Menu, 0, len(m.s.menus))
	for _, menu := range m.s.menus {
		out = append(out, menu)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].SortOrder < out[j].SortOrder
	})

	return out, nil
}

func (m *menuStore) GetByID(_ context.Context, id int64) (*models.Menu, error) {
	const op = "storage.memory.menus.GetByID"

	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	menu, ok := m.s.menus[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &menu, nil
}

func (m *menuStore) GetByLocation(ctx context.Context, location models.MenuLocation) ([]models.Menu, error) {
	all, err := m.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Menu, 0)
	for _, menu := range all {
		if menu.Location == location {
			out = append(out, menu)
		}
	}

	return out, nil
}

func (m *menuStore) Create(_ context.Context, menu *models.Menu) (*models.Menu, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	m.s.nextMenuID++
	now := time.Now()

	stored := *menu
	stored.ID = m.s.nextMenuID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.s.menus[stored.ID] = stored

	return &stored, nil
}

func (m *menuStore) Update(_ context.Context, menu *models.Menu) (*models.Menu, error) {
	const op = "storage.memory.menus.Update"

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	existing, ok := m.s.menus[menu.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *menu
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	m.s.menus[stored.ID] = stored

	return &stored, nil
}

func (m *menuStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.menus.Delete"

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.menus[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(m.s.menus, id)

	return nil
}

type adStore struct {
	s *Storage
}

func (a *adStore) GetAll(_ context.Context) ([]models.Ad, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	out := make([]models.Ad, 0, len(a.s.ads))
	for _, ad := range a.s.ads {
		out = append(out, ad)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (a *adStore) GetByID(_ context.Context, id int64) (*models.Ad, error) {
	const op = "storage.memory.ads.GetByID"

	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	ad, ok := a.s.ads[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &ad, nil
}

func (a *adStore) GetActive(ctx context.Context) ([]models.Ad, error) {
	all, err := a.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Ad, 0)
	for _, ad := range all {
		if ad.Active {
			out = append(out, ad)
		}
	}

	return out, nil
}

func (a *adStore) GetByPosition(ctx context.Context, position string) ([]models.Ad, error) {
	active, err := a.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Ad, 0)
	for _, ad := range active {
		if ad.Position == position {
			out = append(out, ad)
		}
	}

	return out, nil
}

func (a *adStore) Create(_ context.Context, ad *models.Ad) (*models.Ad, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	a.s.nextAdID++
	now := time.Now()

	stored := *ad
	stored.ID = a.s.nextAdID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	a.s.ads[stored.ID] = stored

	return &stored, nil
}

func (a *adStore) Update(_ context.Context, ad *models.Ad) (*models.Ad, error) {
	const op = "storage.memory.ads.Update"

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	existing, ok := a.s.ads[ad.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	stored := *ad
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	a.s.ads[stored.ID] = stored

	return &stored, nil
}

func (a *adStore) Delete(_ context.Context, id int64) error {
	const op = "storage.memory.ads.Delete"

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.ads[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	delete(a.s.ads, id)

	return nil
}

type settingsStore struct {
	s *Storage
}

func (st *settingsStore) Load(_ context.Context) (*models.Settings, error) {
	const op = "storage.memory.settings.Load"

	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	if st.s.settings == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	doc := *st.s.settings
	return &doc, nil
}

func (st *settingsStore) Save(_ context.Context, doc *models.Settings) (*models.Settings, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	stored := *doc
	stored.ID = 1
	stored.UpdatedAt = time.Now()
	st.s.settings = &stored

	saved := stored
	return &saved, nil
}
