package database

import (
	"context"
	"fmt"

	"ht5play/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The settings document lives in a single row with a fixed primary key.
const settingsRowID = 1

type settingsStore struct {
	db *gorm.DB
}

func (s *settingsStore) Load(ctx context.Context) (*models.Settings, error) {
	const op = "storage.database.settings.Load"

	var doc models.Settings
	if err := s.db.WithContext(ctx).First(&doc, settingsRowID).Error; err != nil {
		return nil, wrap(op, err)
	}

	return &doc, nil
}

func (s *settingsStore) Save(ctx context.Context, doc *models.Settings) (*models.Settings, error) {
	const op = "storage.database.settings.Save"

	doc.ID = settingsRowID

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(doc).Error
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}
