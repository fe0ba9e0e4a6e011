package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/models"

	"github.com/go-chi/chi/v5"
)

type PageServicer interface {
	GetAll(ctx context.Context) ([]models.Page, error)
	GetByID(ctx context.Context, id int64) (*models.Page, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, p *models.Page) (*models.Page, error)
	Update(ctx context.Context, p *models.Page) (*models.Page, error)
	Delete(ctx context.Context, id int64) error
}

type PageController struct {
	service PageServicer
	log     *slog.Logger
}

func NewPageController(s PageServicer, log *slog.Logger) *PageController {
	return &PageController{
		service: s,
		log:     log,
	}
}

func (c *PageController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.GetAll"

	pages, err := c.service.GetAll(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, pages)
}

func (c *PageController) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.GetByID"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	p, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, p)
}

func (c *PageController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.GetBySlug"

	p, err := c.service.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, p)
}

func (c *PageController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.Create"

	var p models.Page
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &p)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *PageController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var p models.Page
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	p.ID = id

	updated, err := c.service.Update(r.Context(), &p)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *PageController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.pages.Delete"

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
