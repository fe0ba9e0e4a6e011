package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type categoryStore struct {
	db *gorm.DB
}

func (s *categoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	const op = "storage.database.categories.GetAll"

	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, wrap(op, err)
	}

	return cats, nil
}

func (s *categoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "storage.database.categories.GetByID"

	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &c, nil
}

func (s *categoryStore) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "storage.database.categories.GetBySlug"

	var c models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &c, nil
}

func (s *categoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	const op = "storage.database.categories.Create"

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *categoryStore) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	const op = "storage.database.categories.Update"

	var existing models.Category
	if err := s.db.WithContext(ctx).First(&existing, c.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Category{ID: c.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(c).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, c.ID)
}

func (s *categoryStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.categories.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
