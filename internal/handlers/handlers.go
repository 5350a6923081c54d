package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/jogos-org/jogos/api/v1"
	"github.com/jogos-org/jogos/internal/preferences"
	"github.com/jogos-org/jogos/internal/services"
	srvErrors "github.com/jogos-org/jogos/pkg/errors"
)

// Localizer provides the formatting options used by the export.
type Localizer interface {
	Locale() preferences.Locale
}

type Handler struct {
	catalog  *services.CatalogService
	metadata *services.MetadataService
	covers   v1.CoverLookup
	locale   Localizer
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(catalog *services.CatalogService, metadata *services.MetadataService, covers v1.CoverLookup, locale Localizer) *Handler {
	return &Handler{
		catalog:  catalog,
		metadata: metadata,
		covers:   covers,
		locale:   locale,
	}
}

// fail maps service errors to HTTP status codes. Unknown errors are logged
// and reported as 500 with msg.
func fail(c *gin.Context, log *zap.SugaredLogger, err error, msg string) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case srvErrors.IsInvalidGameError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsStaleSearchError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case srvErrors.IsMetadataUnavailableError(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
