package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type gameStore struct {
	db *gorm.DB
}

// joined selects games with the owning category name resolved at read
// time; the denormalized column the old schema carried does not exist.
func (s *gameStore) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("games").
		Select("games.*, COALESCE(categories.name, '') AS category_name").
		Joins("LEFT JOIN categories ON categories.id = games.category_id")
}

func (s *gameStore) GetAll(ctx context.Context) ([]models.Game, error) {
	const op = "storage.database.games.GetAll"

	var games []models.Game
	if err := s.joined(ctx).Scan(&games).Error; err != nil {
		return nil, wrap(op, err)
	}

	return games, nil
}

func (s *gameStore) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	const op = "storage.database.games.GetByID"

	var g models.Game
	if err := s.joined(ctx).Where("games.id = ?", id).First(&g).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &g, nil
}

func (s *gameStore) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	const op = "storage.database.games.GetBySlug"

	var g models.Game
	if err := s.joined(ctx).Where("games.slug = ?", slug).First(&g).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &g, nil
}

func (s *gameStore) GetByCategory(ctx context.Context, categoryID int64) ([]models.Game, error) {
	const op = "storage.database.games.GetByCategory"

	var games []models.Game
	if err := s.joined(ctx).Where("games.category_id = ?", categoryID).Scan(&games).Error; err != nil {
		return nil, wrap(op, err)
	}

	return games, nil
}

func (s *gameStore) GetFeatured(ctx context.Context) ([]models.Game, error) {
	const op = "storage.database.games.GetFeatured"

	var games []models.Game
	if err := s.joined(ctx).Where("games.featured = ?", true).Scan(&games).Error; err != nil {
		return nil, wrap(op, err)
	}

	return games, nil
}

func (s *gameStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	const op = "storage.database.games.CountByCategory"

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, wrap(op, err)
	}

	return count, nil
}

func (s *gameStore) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	const op = "storage.database.games.Create"

	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

func (s *gameStore) Update(ctx context.Context, g *models.Game) (*models.Game, error) {
	const op = "storage.database.games.Update"

	var existing models.Game
	if err := s.db.WithContext(ctx).First(&existing, g.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Game{ID: g.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(g).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, g.ID)
}

func (s *gameStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.games.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Game{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
