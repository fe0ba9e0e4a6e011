package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"ht5play/internal/services"

	"github.com/go-chi/chi/v5"
)

type ImportServicer interface {
	Providers() []string
	ImportFromProvider(ctx context.Context, provider string, categoryID int64) (*services.ImportResult, error)
	ImportFromURL(ctx context.Context, feedURL, source string, categoryID int64) (*services.ImportResult, error)
}

type ImportController struct {
	service ImportServicer
	log     *slog.Logger
}

func NewImportController(s ImportServicer, log *slog.Logger) *ImportController {
	return &ImportController{
		service: s,
		log:     log,
	}
}

func (c *ImportController) Providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.log, http.StatusOK, c.service.Providers())
}

type importRequest struct {
	URL        string `json:"url"`
	Source     string `json:"source"`
	CategoryID int64  `json:"category_id"`
}

// FromProvider runs a full import of one distributor feed. The batch
// result is returned even when some items failed.
func (c *ImportController) FromProvider(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.importer.FromProvider"

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	result, err := c.service.ImportFromProvider(r.Context(), chi.URLParam(r, "provider"), req.CategoryID)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, result)
}

func (c *ImportController) FromURL(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.importer.FromURL"

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	result, err := c.service.ImportFromURL(r.Context(), req.URL, req.Source, req.CategoryID)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, result)
}
