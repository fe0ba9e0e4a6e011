package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ht5play/internal/catalog"
	"ht5play/internal/models"
	"ht5play/internal/services"
	"ht5play/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) List(ctx context.Context, q catalog.Query) (catalog.Page[models.Game], error) {
	args := m.Called(q)
	return args.Get(0).(catalog.Page[models.Game]), args.Error(1)
}

func (m *MockGameService) AdminList(ctx context.Context, text string, sortKey catalog.SortKey, page int) (catalog.Page[models.Game], error) {
	args := m.Called(text, sortKey, page)
	return args.Get(0).(catalog.Page[models.Game]), args.Error(1)
}

func (m *MockGameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) GetFeatured(ctx context.Context) ([]models.Game, error) {
	args := m.Called()
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameService) GetRelated(ctx context.Context, id int64) ([]models.Game, error) {
	args := m.Called(id)
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameService) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	args := m.Called(g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) Update(ctx context.Context, g *models.Game) (*models.Game, error) {
	args := m.Called(g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) Delete(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGameService) IncrementPlays(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGameService) Stats(ctx context.Context) (*models.GameStats, error) {
	args := m.Called()
	return args.Get(0).(*models.GameStats), args.Error(1)
}

type MockUploads struct {
	mock.Mock
}

func (m *MockUploads) SaveImage(data []byte, filename string) error {
	args := m.Called(data, filename)
	return args.Error(0)
}

func (m *MockUploads) DeleteImage(filename string) error {
	args := m.Called(filename)
	return args.Error(0)
}

func (m *MockUploads) ReplaceImage(image []byte, oldFilename, newFilename string) error {
	args := m.Called(image, oldFilename, newFilename)
	return args.Error(0)
}

func (m *MockUploads) SetMaxBytes(maxBytes int64) {
	m.Called(maxBytes)
}

type stubSettings struct {
	doc *models.Settings
}

func (s *stubSettings) Get(ctx context.Context) (*models.Settings, error) {
	return s.doc, nil
}

func setupGameController(perPage int) (*GameController, *MockGameService, *MockUploads) {
	mockService := &MockGameService{}
	mockUploads := &MockUploads{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	settings := models.DefaultSettings()
	settings.GamesPerPage = perPage

	controller := NewGameController(mockService, &stubSettings{doc: settings}, logger, mockUploads)
	return controller, mockService, mockUploads
}

func TestGameController_List(t *testing.T) {
	ctrl, mockService, _ := setupGameController(12)

	expected := catalog.Page[models.Game]{
		Items:      []models.Game{{ID: 1, Title: "Dragon Quest"}},
		Total:      1,
		TotalPages: 1,
		Current:    1,
		Size:       12,
	}

	mockService.On("List", catalog.Query{
		Text:          "dragon",
		Sort:          catalog.SortNewest,
		CategoryParam: "action",
		Page:          2,
		PerPage:       12,
	}).Return(expected, nil)

	req := httptest.NewRequest("GET", "/api/games?q=dragon&sort=newest&category=action&page=2", nil)
	w := httptest.NewRecorder()

	ctrl.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page catalog.Page[models.Game]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, expected, page)
	mockService.AssertExpectations(t)
}

func TestGameController_GetByID(t *testing.T) {
	router := func(ctrl *GameController) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/api/games/{id}", ctrl.GetByID)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl, mockService, _ := setupGameController(24)
		mockService.On("GetByID", int64(7)).Return(&models.Game{ID: 7, Title: "Found"}, nil)

		w := httptest.NewRecorder()
		router(ctrl).ServeHTTP(w, httptest.NewRequest("GET", "/api/games/7", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl, mockService, _ := setupGameController(24)
		mockService.On("GetByID", int64(99)).Return(nil, storage.ErrNotFound)

		w := httptest.NewRecorder()
		router(ctrl).ServeHTTP(w, httptest.NewRequest("GET", "/api/games/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id maps to 400", func(t *testing.T) {
		ctrl, _, _ := setupGameController(24)

		w := httptest.NewRecorder()
		router(ctrl).ServeHTTP(w, httptest.NewRequest("GET", "/api/games/seven", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGameController_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, mockService, _ := setupGameController(24)

		payload := &models.Game{Title: "New Game", URL: "https://games.example/new"}
		mockService.On("Create", mock.AnythingOfType("*models.Game")).
			Return(&models.Game{ID: 1, Title: "New Game", Slug: "new-game"}, nil)

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/admin/games", bytes.NewReader(body))
		w := httptest.NewRecorder()

		ctrl.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation maps to 400 with message", func(t *testing.T) {
		ctrl, mockService, _ := setupGameController(24)

		mockService.On("Create", mock.AnythingOfType("*models.Game")).
			Return(nil, services.ErrValidation)

		req := httptest.NewRequest("POST", "/api/admin/games", bytes.NewReader([]byte(`{"title":""}`)))
		w := httptest.NewRecorder()

		ctrl.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		ctrl, _, _ := setupGameController(24)

		req := httptest.NewRequest("POST", "/api/admin/games", bytes.NewReader([]byte(`{not json`)))
		w := httptest.NewRecorder()

		ctrl.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGameController_Play(t *testing.T) {
	ctrl, mockService, _ := setupGameController(24)
	mockService.On("IncrementPlays", int64(3)).Return(nil)

	r := chi.NewRouter()
	r.Post("/api/games/{id}/play", ctrl.Play)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/games/3/play", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
