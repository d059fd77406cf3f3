// Package handlers implements the HTTP API consumed by the mobile client.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cineflow/catalogd/internal/config"
	"github.com/cineflow/catalogd/internal/constants"
	apperrors "github.com/cineflow/catalogd/internal/errors"
	"github.com/cineflow/catalogd/internal/services"
)

// Handler handles HTTP requests for the catalog API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes for the catalog API.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/health", h.handleHealth)

	api := r.Group("/api/v1")
	{
		api.GET("/catalog/home", h.handleCatalogHome)
		api.GET("/search", h.handleSearch)
		api.GET("/categories", h.handleCategories)
		api.GET("/categories/:id/posts", h.handleCategoryPosts)
		api.GET("/videos/:id", h.handleVideo)
	}
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(http.StatusOK, "%s %s", constants.ServiceName, constants.ServiceVersion)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.ServiceVersion})
}

// respondError maps the catalog error taxonomy onto HTTP statuses: missing
// entities are 404, bad ids 400, anything upstream 502.
func (h *Handler) respondError(c *gin.Context, err error) {
	if ce, ok := err.(*apperrors.CatalogError); ok {
		switch ce.Type {
		case apperrors.ErrorTypePostNotFound, apperrors.ErrorTypeEpisodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": ce.Message})
			return
		case apperrors.ErrorTypeInvalidID:
			c.JSON(http.StatusBadRequest, gin.H{"error": ce.Message})
			return
		case apperrors.ErrorTypeUpstreamFailure, apperrors.ErrorTypeMalformedResponse:
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream catalog unavailable"})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
