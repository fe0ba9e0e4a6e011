package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ht5play/internal/services"
	"ht5play/internal/storage"

	"github.com/go-chi/chi/v5"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrGetList    = errors.New("failed to get list")
	ErrCreate     = errors.New("failed to create")
	ErrUpdate     = errors.New("failed to update")
	ErrDelete     = errors.New("failed to delete")
	ErrEncoding   = errors.New("failed to encode")
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(ErrEncoding.Error(), slog.String("error", err.Error()))
	}
}

// respondError converts service failures into the three user-visible
// classes: not found, validation, everything else transient.
func respondError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	log.Error("request failed",
		slog.String("operation", op),
		slog.String("error", err.Error()))

	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, log, http.StatusNotFound, errorResponse{Error: ErrNotFound.Error()})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
