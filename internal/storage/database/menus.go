package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"
	"ht5play/internal/storage"

	"gorm.io/gorm"
)

type menuStore struct {
	db *gorm.DB
}

func (s *menuStore) GetAll(ctx context.Context) ([]models.Menu, error) {
	const op = "storage.database.menus.GetAll"

	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Order("location ASC, sort_order ASC").
		Find(&menus).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return menus, nil
}

func (s *menuStore) GetByID(ctx context.Context, id int64) (*models.Menu, error) {
	const op = "storage.database.menus.GetByID"

	var m models.Menu
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &m, nil
}

func (s *menuStore) GetByLocation(ctx context.Context, location models.MenuLocation) ([]models.Menu, error) {
	const op = "storage.database.menus.GetByLocation"

	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Where("location = ?", location).
		Order("sort_order ASC").
		Find(&menus).Error
	if err != nil {
		return nil, wrap(op, err)
	}

	return menus, nil
}

func (s *menuStore) Create(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	const op = "storage.database.menus.Create"

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (s *menuStore) Update(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	const op = "storage.database.menus.Update"

	var existing models.Menu
	if err := s.db.WithContext(ctx).First(&existing, m.ID).Error; err != nil {
		return nil, wrap(op, err)
	}

	err := s.db.WithContext(ctx).
		Model(&models.Menu{ID: m.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(m).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetByID(ctx, m.ID)
}

func (s *menuStore) Delete(ctx context.Context, id int64) error {
	const op = "storage.database.menus.Delete"

	res := s.db.WithContext(ctx).Delete(&models.Menu{}, id)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
