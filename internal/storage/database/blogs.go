package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type blogStore struct {
	db *gorm.DB
}

func (s *blogStore) GetAll(ctx context.Context) ([]models.Blog, error) {
	const op = "storage.database.blogs.GetAll"

	var blogs []models.Blog
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, wrap(op, err)
	}

	return blogs, nil
}

func (s *blogStore) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	const op = "storage.database.blogs.GetByID"

	var b models.Blog
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &b, nil
}

func (s *blogStore) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	const op = "storage.database.blogs.GetBySlug"

	var b models.Blog
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &b, nil
}

func (s *blogStore) GetPublished(ctx context.Context) ([]models.Blog, error) {
	const op = "storage.database.blogs.GetPublished"

	var blogs []models.Blog
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return blogs, nil
}

func (s *blogStore) GetFeatured(ctx context.Context) ([]models.Blog, error) {
	const op = "storage.database.blogs.GetFeatured"

	var blogs []models.Blog
	err := s.db.WithContext(ctx).
		Where("status = ? AND featured = ?", models.StatusPublished, true).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return blogs, nil
}

func (s *blogStore) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const op = "storage.database.blogs.Create"

	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *blogStore) Update(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const op = "storage.database.blogs.Update"

	var existing models.Blog
	if err := s.db.WithContext(ctx).First(&existing, b.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Blog{ID: b.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(b).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, b.ID)
}

func (s *blogStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.blogs.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Blog{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
