package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type AdService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewAdService(s storage.Storage, log *slog.Logger) *AdService {
	return &AdService{
		stores: s,
		log:    log,
	}
}

func (s *AdService) GetAll(ctx context.Context) ([]models.Ad, error) {
	const op = "services.ads.GetAll"

	ads, err := s.stores.Ads().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ads, nil
}

func (s *AdService) GetActive(ctx context.Context) ([]models.Ad, error) {
	const op = "services.ads.GetActive"

	ads, err := s.stores.Ads().GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ads, nil
}

// GetByPosition returns the active ads for one slot; inactive ads are
// never served to the public pages.
func (s *AdService) GetByPosition(ctx context.Context, position string) ([]models.Ad, error) {
	const op = "services.ads.GetByPosition"

	ads, err := s.stores.Ads().GetByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ads, nil
}

func (s *AdService) Create(ctx context.Context, a *models.Ad) (*models.Ad, error) {
	const op = "services.ads.Create"

	if err := s.validate(a); err != nil {
		return nil, err
	}

	created, err := s.stores.Ads().Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *AdService) Update(ctx context.Context, a *models.Ad) (*models.Ad, error) {
	const op = "services.ads.Update"

	if err := s.validate(a); err != nil {
		return nil, err
	}

	updated, err := s.stores.Ads().Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *AdService) Delete(ctx context.Context, id int64) error {
	const op = "services.ads.Delete"

	if err := s.stores.Ads().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *AdService) validate(a *models.Ad) error {
	if strings.TrimSpace(a.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(a.Position) == "" {
		return validationError("position is required")
	}
	return nil
}
