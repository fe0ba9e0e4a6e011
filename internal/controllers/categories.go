package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/models"

	"github.com/go-chi/chi/v5"
)

type CategoryServicer interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryController struct {
	service CategoryServicer
	log     *slog.Logger
}

func NewCategoryController(s CategoryServicer, log *slog.Logger) *CategoryController {
	return &CategoryController{
		service: s,
		log:     log,
	}
}

func (c *CategoryController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.GetAll"

	cats, err := c.service.GetAll(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, cats)
}

func (c *CategoryController) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.GetByID"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	cat, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, cat)
}

func (c *CategoryController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.GetBySlug"

	cat, err := c.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, cat)
}

func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.Create"

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &cat)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	cat.ID = id

	updated, err := c.service.Update(r.Context(), &cat)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.categories.Delete"

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
