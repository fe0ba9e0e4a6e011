package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/models"
)

type AdServicer interface {
	GetAll(ctx context.Context) ([]models.Ad, error)
	GetActive(ctx context.Context) ([]models.Ad, error)
	GetByPosition(ctx context.Context, position string) ([]models.Ad, error)
	Create(ctx context.Context, a *models.Ad) (*models.Ad, error)
	Update(ctx context.Context, a *models.Ad) (*models.Ad, error)
	Delete(ctx context.Context, id int64) error
}

type AdController struct {
	service AdServicer
	log     *slog.Logger
}

func NewAdController(s AdServicer, log *slog.Logger) *AdController {
	return &AdController{
		service: s,
		log:     log,
	}
}

// GetActive serves the public ad slots. With ?position=<slot> only the
// active ads for that slot are returned.
func (c *AdController) GetActive(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.GetActive"

	if position := r.URL.Query().Get("position"); position != "" {
		ads, err := c.service.GetByPosition(r.Context(), position)
		if err != nil {
			respondError(w, c.log, op, err)
			return
		}
		writeJSON(w, c.log, http.StatusOK, ads)
		return
	}

	ads, err := c.service.GetActive(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, ads)
}

func (c *AdController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.GetAll"

	ads, err := c.service.GetAll(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, ads)
}

func (c *AdController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.Create"

	var a models.Ad
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &a)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *AdController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var a models.Ad
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	a.ID = id

	updated, err := c.service.Update(r.Context(), &a)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *AdController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ads.Delete"

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
