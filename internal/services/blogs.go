package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ht5play/internal/catalog"
	"ht5play/internal/models"
	"ht5play/internal/storage"
)

type BlogService struct {
	stores storage.Storage
	log    *slog.Logger
}

func NewBlogService(s storage.Storage, log *slog.Logger) *BlogService {
	return &BlogService{
		stores: s,
		log:    log,
	}
}

// List serves the public blog index: published posts only, filtered by
// free text over title and content, newest first, nine per page.
func (s *BlogService) List(ctx context.Context, text string, page int) (catalog.Page[models.Blog], error) {
	const op = "services.blogs.List"

	blogs, err := s.stores.Blogs().GetPublished(ctx)
	if err != nil {
		return catalog.Page[models.Blog]{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := catalog.FilterBlogs(blogs, text)
	catalog.SortBlogsNewest(filtered)

	size := catalog.BlogsPerPage
	page = catalog.ClampPage(page, catalog.TotalPages(len(filtered), size))
	return catalog.Paginate(filtered, page, size), nil
}

func (s *BlogService) GetAll(ctx context.Context) ([]models.Blog, error) {
	const op = "services.blogs.GetAll"

	blogs, err := s.stores.Blogs().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

func (s *BlogService) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	const op = "services.blogs.GetByID"

	b, err := s.stores.Blogs().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// GetPublishedBySlug is the public detail read; drafts stay invisible
// even when the slug is known.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	const op = "services.blogs.GetPublishedBySlug"

	b, err := s.stores.Blogs().GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if b.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return b, nil
}

func (s *BlogService) GetFeatured(ctx context.Context) ([]models.Blog, error) {
	const op = "services.blogs.GetFeatured"

	blogs, err := s.stores.Blogs().GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

func (s *BlogService) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const op = "services.blogs.Create"

	if err := s.validate(b); err != nil {
		return nil, err
	}

	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	if _, err := s.stores.Blogs().GetBySlug(ctx, b.Slug); err == nil {
		return nil, validationError("blog with slug %q already exists", b.Slug)
	}

	b.Content = sanitizer.Sanitize(b.Content)
	b.Views = 0

	created, err := s.stores.Blogs().Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *BlogService) Update(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const op = "services.blogs.Update"

	if err := s.validate(b); err != nil {
		return nil, err
	}

	existing, err := s.stores.Blogs().GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if b.Slug == "" {
		b.Slug = existing.Slug
	}
	b.Content = sanitizer.Sanitize(b.Content)
	b.Views = existing.Views

	updated, err := s.stores.Blogs().Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id int64) error {
	const op = "services.blogs.Delete"

	if err := s.stores.Blogs().Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IncrementViews bumps the view counter; lost increments under
// concurrent reads are acceptable.
func (s *BlogService) IncrementViews(ctx context.Context, id int64) error {
	const op = "services.blogs.IncrementViews"

	b, err := s.stores.Blogs().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b.Views++
	if _, err := s.stores.Blogs().Update(ctx, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *BlogService) validate(b *models.Blog) error {
	if strings.TrimSpace(b.Title) == "" {
		return validationError("title is required")
	}
	switch b.Status {
	case "", models.StatusDraft, models.StatusPublished:
	default:
		return validationError("status must be draft or published")
	}
	if b.Status == "" {
		b.Status = models.StatusDraft
	}
	return nil
}
