package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cineflow/catalogd/internal/models"
	"github.com/cineflow/catalogd/internal/normalize"
	"github.com/cineflow/catalogd/internal/pagination"
)

// listingResponse is one page of a paginated listing plus the cursor state
// the client's accumulator needs.
type listingResponse struct {
	Videos     []models.Video `json:"videos"`
	Page       int            `json:"page"`
	HasMore    bool           `json:"hasMore"`
	TotalPages int            `json:"totalPages,omitempty"`
}

// categoryNode is a main category with its flattened sub-categories.
type categoryNode struct {
	models.Category
	SubCategories []models.Category `json:"subCategories,omitempty"`
}

func (h *Handler) handleCatalogHome(c *gin.Context) {
	catalog, err := h.services.Catalog.GetCatalog(c.Request.Context())
	if err != nil {
		h.services.Logger.Errorf("[api] failed to build home catalog: %v", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

func (h *Handler) handleSearch(c *gin.Context) {
	searchTerm := c.Query("searchTerm")
	if searchTerm == "" {
		c.JSON(http.StatusOK, listingResponse{Videos: []models.Video{}, Page: 1})
		return
	}

	page := parsePage(c.DefaultQuery("page", "1"))

	videos, pg, err := h.services.Catalog.SearchPosts(c.Request.Context(), searchTerm, page)
	if err != nil {
		h.services.Logger.Errorf("[api] search %q failed: %v", searchTerm, err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.listing(videos, page, pg))
}

func (h *Handler) handleCategories(c *gin.Context) {
	items, err := h.services.Catalog.FetchCategories(c.Request.Context())
	if err != nil {
		h.services.Logger.Errorf("[api] failed to fetch categories: %v", err)
		h.respondError(c, err)
		return
	}

	nodes := make([]categoryNode, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, categoryNode{
			Category:      normalize.FlatCategory(item),
			SubCategories: normalize.FlatCategories(item.SubCategory),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": nodes})
}

func (h *Handler) handleCategoryPosts(c *gin.Context) {
	categoryID := c.Param("id")
	page := parsePage(c.DefaultQuery("page", "1"))

	videos, pg, err := h.services.Catalog.FetchCategoryPosts(c.Request.Context(), categoryID, page)
	if err != nil {
		h.services.Logger.Errorf("[api] category %s page %d failed: %v", categoryID, page, err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.listing(videos, page, pg))
}

func (h *Handler) handleVideo(c *gin.Context) {
	id := c.Param("id")

	if normalize.IsEpisodeID(id) {
		episode, err := h.services.Catalog.GetEpisodeByID(c.Request.Context(), id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"episode": episode})
		return
	}

	video, err := h.services.Catalog.GetVideoByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": video})
}

func (h *Handler) listing(videos []models.Video, page int, pg *models.Pagination) listingResponse {
	resp := listingResponse{
		Videos:  videos,
		Page:    page,
		HasMore: pagination.HasMore(page, len(videos), pg, h.services.Catalog.PageSize()),
	}
	if pg != nil {
		resp.TotalPages = pg.TotalPages
	}
	return resp
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
