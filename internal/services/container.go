package services

import (
	"context"

	"github.com/cineflow/catalogd/internal/cache"
	"github.com/cineflow/catalogd/internal/database"
	"github.com/cineflow/catalogd/internal/models"
	"github.com/cineflow/catalogd/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Catalog CatalogService
	Cache   *cache.LRUCache
	DB      database.Database
	Logger  logger.Logger
}

// CatalogService defines the catalog operations consumed by handlers.
type CatalogService interface {
	GetCatalog(ctx context.Context) (*models.Catalog, error)
	SearchPosts(ctx context.Context, searchTerm string, page int) ([]models.Video, *models.Pagination, error)
	FetchCategories(ctx context.Context) ([]models.CategoryItem, error)
	FetchCategoryPosts(ctx context.Context, categoryID string, page int) ([]models.Video, *models.Pagination, error)
	GetVideoByID(ctx context.Context, id string) (*models.Video, error)
	GetEpisodeByID(ctx context.Context, episodeID string) (*models.Episode, error)
	PageSize() int
}
