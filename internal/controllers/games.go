package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"ht5play/internal/catalog"
	"ht5play/internal/models"
	"ht5play/internal/storage/uploads"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GameServicer interface {
	List(ctx context.Context, q catalog.Query) (catalog.Page[models.Game], error)
	AdminList(ctx context.Context, text string, sortKey catalog.SortKey, page int) (catalog.Page[models.Game], error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	GetBySlug(ctx context.Context, slug string) (*models.Game, error)
	GetFeatured(ctx context.Context) ([]models.Game, error)
	GetRelated(ctx context.Context, id int64) ([]models.Game, error)
	Create(ctx context.Context, g *models.Game) (*models.Game, error)
	Update(ctx context.Context, g *models.Game) (*models.Game, error)
	Delete(ctx context.Context, id int64) error
	IncrementPlays(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.GameStats, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (*models.Settings, error)
}

type GameController struct {
	service  GameServicer
	settings SettingsReader
	log      *slog.Logger
	uploads  uploads.IUploads
}

func NewGameController(s GameServicer, settings SettingsReader, log *slog.Logger, u uploads.IUploads) *GameController {
	return &GameController{
		service:  s,
		settings: settings,
		log:      log,
		uploads:  u,
	}
}

// List is the public catalog view binding: query parameters in, one
// page of filtered, sorted games out. The page size comes from the
// settings document.
func (c *GameController) List(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.List"

	perPage := catalog.GamesPerPage
	if doc, err := c.settings.Get(r.Context()); err == nil && doc.GamesPerPage > 0 {
		perPage = doc.GamesPerPage
	}

	q := catalog.ParseQuery(r.URL.Query(), perPage)

	page, err := c.service.List(r.Context(), q)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, page)
}

func (c *GameController) AdminList(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.AdminList"

	query := r.URL.Query()
	pageNum, err := strconv.Atoi(query.Get("page"))
	if err != nil || pageNum < 1 {
		pageNum = 1
	}

	page, err := c.service.AdminList(
		r.Context(),
		query.Get("q"),
		catalog.ParseSortKey(query.Get("sort")),
		pageNum,
	)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, page)
}

func (c *GameController) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetByID"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	g, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, g)
}

func (c *GameController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetBySlug"

	g, err := c.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, g)
}

func (c *GameController) GetFeatured(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetFeatured"

	games, err := c.service.GetFeatured(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, games)
}

func (c *GameController) GetRelated(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.GetRelated"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	games, err := c.service.GetRelated(r.Context(), id)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, games)
}

func (c *GameController) Play(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Play"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	if err := c.service.IncrementPlays(r.Context(), id); err != nil {
		respondError(w, c.log, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *GameController) Create(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Create"

	var g models.Game
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	created, err := c.service.Create(r.Context(), &g)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusCreated, created)
}

func (c *GameController) Update(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Update"

	id, err := idParam(r)
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}

	var g models.Game
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	g.ID = id

	updated, err := c.service.Update(r.Context(), &g)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, updated)
}

func (c *GameController) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Delete"

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

// UploadThumb stores a thumbnail under a fresh uuid filename and
// returns the name for the admin form to reference.
func (c *GameController) UploadThumb(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.UploadThumb"

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: ErrBadRequest.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	if err := c.uploads.SaveImage(data, filename); err != nil {
		c.log.Error("upload failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		writeJSON(w, c.log, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, c.log, http.StatusCreated, map[string]string{"filename": filename})
}

func (c *GameController) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.games.Stats"

	stats, err := c.service.Stats(r.Context())
	if err != nil {
		respondError(w, c.log, op, err)
		return
	}

	writeJSON(w, c.log, http.StatusOK, stats)
}
