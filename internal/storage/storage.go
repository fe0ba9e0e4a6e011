package storage

import (
	"context"
	"errors"

	"ht5play/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrExists       = errors.New("already exists")
	ErrCreateFailed = errors.New("failed to create")
	ErrUpdateFailed = errors.New("failed to update")
	ErrDeleteFailed = errors.New("failed to delete")
)

// Storage bundles the per-entity record stores. Two implementations
// exist: the gorm-backed one in storage/database and the in-memory one
// in storage/memory; both are selected at composition time in main.
type Storage interface {
	Games() GameStore
	Categories() CategoryStore
	Blogs() BlogStore
	Pages() PageStore
	Menus() MenuStore
	Ads() AdStore
	Settings() SettingsStore
	Close() error
}

type GameStore interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	GetBySlug(ctx context.Context, slug string) (*models.Game, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]models.Game, error)
	GetFeatured(ctx context.Context) ([]models.Game, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	Create(ctx context.Context, g *models.Game) (*models.Game, error)
	Update(ctx context.Context, g *models.Game) (*models.Game, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type BlogStore interface {
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	GetPublished(ctx context.Context) ([]models.Blog, error)
	GetFeatured(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
}

type PageStore interface {
	GetAll(ctx context.Context) ([]models.Page, error)
	GetByID(ctx context.Context, id int64) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
	Update(ctx context.Context, p *models.Page) (*models.Page, error)
	Delete(ctx context.Context, id int64) error
}

type MenuStore interface {
	GetAll(ctx context.Context) ([]models.Menu, error)
	GetByID(ctx context.Context, id int64) (*models.Menu, error)
	GetByLocation(ctx context.Context, location models.MenuLocation) ([]models.Menu, error)
	Create(ctx context.Context, m *models.Menu) (*models.Menu, error)
	Update(ctx context.Context, m *models.Menu) (*models.Menu, error)
	Delete(ctx context.Context, id int64) error
}

type AdStore interface {
	GetAll(ctx context.Context) ([]models.Ad, error)
	GetByID(ctx context.Context, id int64) (*models.Ad, error)
	GetActive(ctx context.Context) ([]models.Ad, error)
	GetByPosition(ctx context.Context, position string) ([]models.Ad, error)
	Create(ctx context.Context, a *models.Ad) (*models.Ad, error)
	Update(ctx context.Context, a *models.Ad) (*models.Ad, error)
	Delete(ctx context.Context, id int64) error
}

type SettingsStore interface {
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) (*models.Settings, error)
}
