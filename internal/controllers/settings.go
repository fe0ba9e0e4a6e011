package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/models"
)

type SettingsServicer interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, doc *models.Settings) (*models.Settings, error)
}

type SettingsController struct {
	service SettingsServicer
	log     *slog.Logger
}

func NewSettingsController(s SettingsServicer, log *slog.Logger) *SettingsController {
	return &SettingsController{
		service: s,
		log:     log,
	}
}

func (c *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.settings.Get"

	doc, err := c.service.Get(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, doc)
}

func (c *SettingsController) Save(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.settings.Save"

	var doc models.Settings
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	saved, err := c.service.Save(r.Context(), &doc)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, saved)
}
