package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/jogos-org/jogos/api/v1"
	"github.com/jogos-org/jogos/internal/models"
)

// SearchMetadata looks a title up on the remote metadata service
// (GET /metadata/search)
func (h *Handler) SearchMetadata(c *gin.Context, params v1.SearchMetadataParams) {
	var platform models.PlatformID
	if params.Platform != nil {
		platform = models.PlatformID(*params.Platform)
	}

	candidates, err := h.metadata.Search(c.Request.Context(), params.Term, platform)
	if err != nil {
		fail(c, zap.S().Named("metadata_handler"), err, "failed to search metadata")
		return
	}

	out := make([]v1.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, v1.NewCandidateFromModel(cand))
	}

	c.JSON(http.StatusOK, out)
}

// SaveCover downloads an image as the cover of a game
// (POST /games/{id}/cover)
func (h *Handler) SaveCover(c *gin.Context, id int64) {
	log := zap.S().Named("metadata_handler")

	var body v1.SaveCoverJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if _, err := h.catalog.Get(c.Request.Context(), id); err != nil {
		fail(c, log, err, "failed to save cover")
		return
	}

	if err := h.metadata.SaveCover(c.Request.Context(), id, body.Url); err != nil {
		log.Warnw("cover download failed", "id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to download cover"})
		return
	}

	c.Status(http.StatusNoContent)
}
