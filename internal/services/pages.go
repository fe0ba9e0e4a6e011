package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type PageService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewPageService(s storage.Storage, log *slog.Logger) *PageService {
	return &PageService{
		stores: s,
		log:    log,
	}
}

func (s *PageService) GetAll(ctx context.Context) ([]models.Page, error) {
	const op = "services.pages.GetAll"

	pages, err := s.stores.Pages().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pages, nil
}

func (s *PageService) GetByID(ctx context.Context, id int64) (*models.Page, error) {
	const op = "services.pages.GetByID"

	p, err := s.stores.Pages().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *PageService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	const op = "services.pages.GetPublishedBySlug"

	p, err := s.stores.Pages().GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if p.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return p, nil
}

func (s *PageService) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	const op = "services.pages.Create"

	if err := s.validate(p); err != nil {
		return nil, err
	}

	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if _, err := s.stores.Pages().GetBySlug(ctx, p.Slug); err == nil {
		return nil, validationError("page with slug %q already exists", p.Slug)
	}

	p.Content = sanitizer.Sanitize(p.Content)

	created, err := s.stores.Pages().Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *PageService) Update(ctx context.Context, p *models.Page) (*models.Page, error) {
	const op = "services.pages.Update"

	if err := s.validate(p); err != nil {
		return nil, err
	}

	existing, err := s.stores.Pages().GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if p.Slug == "" {
		p.Slug = existing.Slug
	}
	p.Content = sanitizer.Sanitize(p.Content)

	updated, err := s.stores.Pages().Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *PageService) Delete(ctx context.Context, id int64) error {
	const op = "services.pages.Delete"

	if err := s.stores.Pages().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *PageService) validate(p *models.Page) error {
	if strings.TrimSpace(p.Title) == "" {
		return validationError("title is required")
	}
	switch p.Status {
	case "", models.StatusDraft, models.StatusPublished:
	default:
		return validationError("status must be draft or published")
	}
	if p.Status == "" {
		p.Status = models.StatusDraft
	}
	return nil
}
