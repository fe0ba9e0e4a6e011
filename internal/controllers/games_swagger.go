package controllers

import _ "ht5play/internal/models"

// ListGames godoc
// @Summary      Browse the game catalog
// @Description  Returns one page of games after filtering by text and category and applying the requested sort order
// @Tags         games
// @Produce      json
// @Param        q        query     string  false  "Text filter matched against title and description"
// @Param        category query     string  false  "Category id, slug or name"
// @Param        sort     query     string  false  "Sort order: title, recent, newest, oldest, trending, random"
// @Param        page     query     int     false  "Page number (defaults to 1)"
// @Success      200  {object}  catalog.Page[models.Game]
// @Failure      500  {object}  map[string]string
// @Router       /games [get]
func ListGames() {}

// GetGameBySlug godoc
// @Summary      Get a game by slug
// @Description  Returns the game detail used by the public play page
// @Tags         games
// @Produce      json
// @Param        slug  path      string  true  "Game slug"
// @Success      200   {object}  models.Game
// @Failure      404   {object}  map[string]string
// @Router       /games/slug/{slug} [get]
func GetGameBySlug() {}

// GetRelatedGames godoc
// @Summary      Get related games
// @Description  Returns up to four other games from the same category
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game id"
// @Success      200  {array}   models.Game
// @Failure      404  {object}  map[string]string
// @Router       /games/{id}/related [get]
func GetRelatedGames() {}

// PlayGame godoc
// @Summary      Record a play
// @Description  Increments the play counter for a game
// @Tags         games
// @Param        id  path  int  true  "Game id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /games/{id}/play [post]
func PlayGame() {}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a game; the slug is derived from the title and the category game count is recomputed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        game  body      models.Game  true  "Game to create"
// @Success      201   {object}  models.Game
// @Failure      400   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /admin/games [post]
func CreateGame() {}

// UploadThumb godoc
// @Summary      Upload a game thumbnail
// @Description  Stores an image under a generated filename and returns the name
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /admin/games/upload [post]
func UploadThumb() {}

// GetGameStats godoc
// @Summary      Dashboard counters
// @Description  Returns total, featured and recently added game counts plus a per-source breakdown
// @Tags         admin
// @Produce      json
// @Success      200  {object}  models.GameStats
// @Failure      500  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /admin/games/stats [get]
func GetGameStats() {}

// ImportFromProvider godoc
// @Summary      Import games from a distributor feed
// @Description  Pulls the provider feed and files every game under the chosen category; per-item failures do not abort the batch
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        provider  path      string  true  "Feed provider: gamemonetize or gamedistribution"
// @Success      200  {object}  services.ImportResult
// @Failure      400  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /admin/import/{provider} [post]
func ImportFromProvider() {}
