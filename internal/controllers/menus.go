package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/models"
)

type MenuServicer interface {
	GetAll(ctx context.Context) ([]models.Menu, error)
	GetByLocation(ctx context.Context, location models.MenuLocation) ([]models.Menu, error)
	Create(ctx context.Context, m *models.Menu) (*models.Menu, error)
	Update(ctx context.Context, m *models.Menu) (*models.Menu, error)
	Delete(ctx context.Context, id int64) error
}

type MenuController struct {
	service MenuServicer
	log     *slog.Logger
}

func NewMenuController(s MenuServicer, log *slog.Logger) *MenuController {
	return &MenuController{
		service: s,
		log:     log,
	}
}

// GetAll serves the public menu tree. With ?location=header|footer only
// that slot is returned, already ordered for rendering.
func (c *MenuController) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.menus.GetAll"

	if location := r.URL.Query().Get("location"); location != "" {
		menus, err := c.service.GetByLocation(r.Context(), models.MenuLocation(location))
		if err != nil {
			respondError(w, c.log, op, err)
			return
		}
		writeJSON(w, c.log, http.StatusOK, menus)
		return
	}

	menus, err := c.service.GetAll(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, menus)
}

func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.menus.Create"

	var m models.Menu
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &m)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.menus.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var m models.Menu
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	m.ID = id

	updated, err := c.service.Update(r.Context(), &m)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.menus.Delete"

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
