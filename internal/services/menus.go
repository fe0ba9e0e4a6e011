package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type MenuService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewMenuService(s storage.Storage, log *slog.Logger) *MenuService {
	return &MenuService{
		stores: s,
		log:    log,
	}
}

func (s *MenuService) GetAll(ctx context.Context) ([]models.Menu, error) {
	const op = "services.menus.GetAll"

	menus, err := s.stores.Menus().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return menus, nil
}

func (s *MenuService) GetByLocation(ctx context.Context, location models.MenuLocation) ([]models.Menu, error) {
	const op = "services.menus.GetByLocation"

	if location != models.MenuHeader && location != models.MenuFooter {
		return nil, validationError("location must be header or footer")
	}

	menus, err := s.stores.Menus().GetByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return menus, nil
}

func (s *MenuService) Create(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	const op = "services.menus.Create"

	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}

	created, err := s.stores.Menus().Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *MenuService) Update(ctx context.Context, m *models.Menu) (*models.Menu, error) {
	const op = "services.menus.Update"

	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}

	updated, err := s.stores.Menus().Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	const op = "services.menus.Delete"

	if err := s.stores.Menus().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *MenuService) validate(ctx context.Context, m *models.Menu) error {
	if strings.TrimSpace(m.Label) == "" {
		return validationError("label is required")
	}
	if m.Location != models.MenuHeader && m.Location != models.MenuFooter {
		return validationError("location must be header or footer")
	}
	if m.ParentID != nil {
		if _, err := s.stores.Menus().GetByID(ctx, *m.ParentID); err != nil {
			return validationError("parent menu %d does not exist", *m.ParentID)
		}
	}
	return nil
}
