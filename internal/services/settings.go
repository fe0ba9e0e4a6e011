package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

// UploadLimiter receives the upload size cap whenever an admin saves
// the settings document, so the limit applies without a restart.
type UploadLimiter interface {
	SetMaxBytes(maxBytes int64)
}

type SettingsService struct {
	stores  storage.Storage
	limiter UploadLimiter
	log     *slog.Logger
}

func NewSettingsService(s storage.Storage, limiter UploadLimiter, log *slog.Logger) *SettingsService {
	return &SettingsService{
		stores:  s,
		limiter: limiter,
		log:     log,
	}
}

// Get returns the settings document, falling back to defaults when no
// admin has ever saved one.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	const op = "services.settings.Get"

	doc, err := s.stores.Settings().Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

// Save replaces the document wholesale; there is no partial-field
// update contract. The version counter increments on every save.
func (s *SettingsService) Save(ctx context.Context, doc *models.Settings) (*models.Settings, error) {
	const op = "services.settings.Save"

	if doc.SiteName == "" {
		return nil, validationError("site name is required")
	}
	if doc.GamesPerPage <= 0 {
		return nil, validationError("games per page must be positive")
	}
	if doc.MaxFileSizeMB <= 0 {
		return nil, validationError("max file size must be positive")
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	doc.Version = current.Version + 1

	saved, err := s.stores.Settings().Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.limiter != nil {
		s.limiter.SetMaxBytes(int64(saved.MaxFileSizeMB) << 20)
	}

	return saved, nil
}
