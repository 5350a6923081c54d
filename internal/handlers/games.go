package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/jogos-org/jogos/api/v1"
	"github.com/jogos-org/jogos/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListGames returns the derived view of a scope
// (GET /games)
func (h *Handler) ListGames(c *gin.Context, params v1.ListGamesParams) {
	log := zap.S().Named("game_handler")

	browse, err := v1.ParseBrowseParams(params.Scope, params.Search, params.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.catalog.Browse(c.Request.Context(), browse)
	if err != nil {
		fail(c, log, err, "failed to list games")
		return
	}

	c.JSON(http.StatusOK, v1.NewGameListResponse(result, h.covers))
}

// ExportGames writes the derived view of a scope as a spreadsheet
// (GET /games/export)
func (h *Handler) ExportGames(c *gin.Context, params v1.ExportGamesParams) {
	log := zap.S().Named("game_handler")

	browse, err := v1.ParseBrowseParams(params.Scope, params.Search, params.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.catalog.Browse(c.Request.Context(), browse)
	if err != nil {
		fail(c, log, err, "failed to export games")
		return
	}

	locale := h.locale.Locale()
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, result.Items, export.Options{
		Language:   locale.Language,
		DateLayout: locale.DateLayout,
	}); err != nil {
		fail(c, log, err, "failed to export games")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="jogos.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetGame returns a single game
// (GET /games/{id})
func (h *Handler) GetGame(c *gin.Context, id int64) {
	g, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to get game")
		return
	}

	c.JSON(http.StatusOK, v1.NewGameFromModel(*g, h.covers))
}

// CreateGame validates and stores a new game. An omitted currency takes the
// locale preference.
// (POST /games)
func (h *Handler) CreateGame(c *gin.Context) {
	var body v1.CreateGameJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := body.ToModel()
	if body.PaidPriceCurrency == nil {
		game.PaidPriceCurrency = h.locale.Locale().Currency.ISO
	}

	g, _, err := h.catalog.Create(c.Request.Context(), game)
	if err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to create game")
		return
	}

	c.JSON(http.StatusCreated, v1.NewGameFromModel(*g, h.covers))
}

// UpdateGame replaces every caller-owned field of a game
// (PUT /games/{id})
func (h *Handler) UpdateGame(c *gin.Context, id int64) {
	var body v1.UpdateGameJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := body.ToModel()
	form.ID = id

	g, _, err := h.catalog.Update(c.Request.Context(), form)
	if err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to update game")
		return
	}

	c.JSON(http.StatusOK, v1.NewGameFromModel(*g, h.covers))
}

// DeleteGame removes a game and its cover
// (DELETE /games/{id})
func (h *Handler) DeleteGame(c *gin.Context, id int64) {
	if _, err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to delete game")
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleFavorite flips the favorite flag of a game
// (POST /games/{id}/favorite)
func (h *Handler) ToggleFavorite(c *gin.Context, id int64) {
	g, _, err := h.catalog.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to toggle favorite")
		return
	}

	c.JSON(http.StatusOK, v1.NewGameFromModel(*g, h.covers))
}

// ListPlatforms returns the platforms that own at least one game
// (GET /platforms)
func (h *Handler) ListPlatforms(c *gin.Context) {
	platforms, err := h.catalog.Platforms(c.Request.Context())
	if err != nil {
		fail(c, zap.S().Named("game_handler"), err, "failed to list platforms")
		return
	}

	out := make([]v1.Platform, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, v1.NewPlatformFromModel(p))
	}

	c.JSON(http.StatusOK, out)
}
