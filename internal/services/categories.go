package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type CategoryService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewCategoryService(s storage.Storage, log *slog.Logger) *CategoryService {
	return &CategoryService{
		stores: s,
		log:    log,
	}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	const op = "services.categories.GetAll"

	cats, err := s.stores.Categories().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cats, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "services.categories.GetByID"

	c, err := s.stores.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	const op = "services.categories.GetBySlug"

	c, err := s.stores.Categories().GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	const op = "services.categories.Create"

	if strings.TrimSpace(c.Name) == "" {
		return nil, validationError("name is required")
	}

	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}

	if _, err := s.stores.Categories().GetBySlug(ctx, c.Slug); err == nil {
		return nil, validationError("category with slug %q already exists", c.Slug)
	}

	// A fresh category has no games regardless of what the caller sent.
	c.GameCount = 0

	created, err := s.stores.Categories().Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	const op = "services.categories.Update"

	if strings.TrimSpace(c.Name) == "" {
		return nil, validationError("name is required")
	}

	existing, err := s.stores.Categories().GetByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if c.Slug == "" {
		c.Slug = existing.Slug
	}

	// The count is owned by the recompute step, not the request body.
	count, err := s.stores.Games().CountByCategory(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.GameCount = count

	updated, err := s.stores.Categories().Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// Delete removes the category only. Its games stay and read back with
// an empty category name until an admin reassigns them.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	const op = "services.categories.Delete"

	if err := s.stores.Categories().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
