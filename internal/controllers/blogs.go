package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"ht5play/internal/catalog"
	"ht5play/internal/models"

	"github.com/go-chi/chi/v5"
)

type BlogServicer interface {
	List(ctx context.Context, text string, page int) (catalog.Page[models.Blog], error)
	GetAll(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error)
	GetFeatured(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Update(ctx context.Context, b *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

type BlogController struct {
	service BlogServicer
	log     *slog.Logger
}

func NewBlogController(s BlogServicer, log *slog.Logger) *BlogController {
	return &BlogController{
		service: s,
		log:     log,
	}
}

func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.List"

	query := r.URL.Query()
	pageNum, err := strconv.Atoi(query.Get("page"))
	if err != nil || pageNum < 1 {
		pageNum = 1
	}

	page, err := c.service.List(r.Context(), query.Get("q"), pageNum)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, page)
}

func (c *BlogController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.GetAll"

	blogs, err := c.service.GetAll(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, blogs)
}

func (c *BlogController) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.GetByID"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	b, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, b)
}

// GetBySlug serves the public post detail and bumps the view counter.
// A failed bump does not fail the read.
func (c *BlogController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.GetBySlug"

	b, err := c.service.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	if err := c.service.IncrementViews(r.Context(), b.ID); err != nil {
		c.log.Warn("view counter bump failed",
			slog.String("operation", op),
			slog.Int64("id", b.ID),
			slog.String("error", err.Error()))
	} else {
		b.Views++
	}

	writeJSON(w, c.log, http.StatusOK, b)
}

func (c *BlogController) GetFeatured(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.GetFeatured"

	blogs, err := c.service.GetFeatured(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, blogs)
}

func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.Create"

	var b models.Blog
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &b)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var b models.Blog
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	b.ID = id

	updated, err := c.service.Update(r.Context(), &b)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.blogs.Delete"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		respondError(w, c.log, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
