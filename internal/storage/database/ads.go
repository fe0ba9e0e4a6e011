package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type adStore struct {
	db *gorm.DB
}

func (s *adStore) GetAll(ctx context.Context) ([]models.Ad, error) {
	const op = "storage.database.ads.GetAll"

	var ads []models.Ad
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&ads).Error; err != nil {
		return nil, wrap(op, err)
	}

	return ads, nil
}

func (s *adStore) GetByID(ctx context.Context, id int64) (*models.Ad, error) {
	const op = "storage.database.ads.GetByID"

	var a models.Ad
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &a, nil
}

func (s *adStore) GetActive(ctx context.Context) ([]models.Ad, error) {
	const op = "storage.database.ads.GetActive"

	var ads []models.Ad
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&ads).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return ads, nil
}

func (s *adStore) GetByPosition(ctx context.Context, position string) ([]models.Ad, error) {
	const op = "storage.database.ads.GetByPosition"

	var ads []models.Ad
	err := s.db.WithContext(ctx).
		Where("position = ? AND active = ?", position, true).
		Find(&ads).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return ads, nil
}

func (s *adStore) Create(ctx context.Context, a *models.Ad) (*models.Ad, error) {
	const op = "storage.database.ads.Create"

	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *adStore) Update(ctx context.Context, a *models.Ad) (*models.Ad, error) {
	const op = "storage.database.ads.Update"

	var existing models.Ad
	if err := s.db.WithContext(ctx).First(&existing, a.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Ad{ID: a.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(a).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, a.ID)
}

func (s *adStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.ads.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Ad{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
