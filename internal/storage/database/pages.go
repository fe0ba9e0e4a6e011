package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type pageStore struct {
	db *gorm.DB
}

func (s *pageStore) GetAll(ctx context.Context) ([]models.Page, error) {
	const op = "storage.database.pages.GetAll"

	var pages []models.Page
	if err := s.db.WithContext(ctx).Order("title ASC").Find(&pages).Error; err != nil {
		return nil, wrap(op, err)
	}

	return pages, nil
}

func (s *pageStore) GetByID(ctx context.Context, id int64) (*models.Page, error) {
	const op = "storage.database.pages.GetByID"

	var p models.Page
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &p, nil
}

func (s *pageStore) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	const op = "storage.database.pages.GetBySlug"

	var p models.Page
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &p, nil
}

func (s *pageStore) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	const op = "storage.database.pages.Create"

	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *pageStore) Update(ctx context.Context, p *models.Page) (*models.Page, error) {
	const op = "storage.database.pages.Update"

	var existing models.Page
	if err := s.db.WithContext(ctx).First(&existing, p.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Page{ID: p.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(p).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, p.ID)
}

func (s *pageStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.pages.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Page{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
