// Package services implements the catalog fetcher: it calls the upstream
// REST API, normalizes the payloads and caches the results.
package services

import (
	"context"
	"net/http"
	"time"

	"github.com/cineflow/catalogd/internal/cache"
	"github.com/cineflow/catalogd/internal/constants"
	"github.com/cineflow/catalogd/internal/database"
	"github.com/cineflow/catalogd/internal/errors"
	"github.com/cineflow/catalogd/internal/models"
	"github.com/cineflow/catalogd/internal/normalize"
	"github.com/cineflow/catalogd/pkg/httputil"
	"github.com/cineflow/catalogd/pkg/logger"
	"github.com/cineflow/catalogd/pkg/ratelimiter"
)

// Catalog fetches and normalizes the upstream streaming catalog. Post
// details go through a two-tier cache: memory LRU first, then the bolt
// store, then the network.
type Catalog struct {
	baseURL      string
	imageBaseURL string
	pageSize     int
	cacheTTL     time.Duration

	cache       *cache.LRUCache
	db          database.Database
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger
}

// NewCatalog creates a catalog service against the given upstream base URL.
// Image references returned by the upstream are relative and get resolved
// against imageBaseURL by concatenation.
func NewCatalog(baseURL, imageBaseURL string, pageSize int, cacheTTL time.Duration, memCache *cache.LRUCache, log logger.Logger) *Catalog {
	return &Catalog{
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		pageSize:     pageSize,
		cacheTTL:     cacheTTL,
		cache:        memCache,
		rateLimiter:  ratelimiter.NewTokenBucket(constants.UpstreamRateLimit, constants.UpstreamRateBurst),
		httpClient:   httputil.NewHTTPClient(10 * time.Second),
		logger:       log,
	}
}

// SetDB attaches the persistent post-detail cache.
func (s *Catalog) SetDB(db database.Database) {
	s.db = db
}

// PageSize returns the item count requested per listing page.
func (s *Catalog) PageSize() int {
	return s.pageSize
}

// GetCatalog fetches the homepage feed and assembles the home catalog:
// synthetic trending/recently-added categories, the upstream categories,
// and the flat de-duplicated video list.
func (s *Catalog) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	const cacheKey = "catalog:home"
	if data, found := s.cache.Get(cacheKey); found {
		return data.(*models.Catalog), nil
	}

	var home models.HomepageResponse
	if err := s.getJSON(ctx, s.baseURL+"/api/home-page/getHomePagePosts", &home); err != nil {
		return nil, err
	}

	catalog := normalize.Catalog(home, s.imageBaseURL)
	s.logger.Infof("[catalog] assembled home catalog: %d categories, %d videos",
		len(catalog.Categories), len(catalog.AllVideos))

	s.cache.Set(cacheKey, &catalog)
	return &catalog, nil
}

// SearchPosts fetches one page of search results and normalizes every post.
// The upstream pagination block is passed through when present.
func (s *Catalog) SearchPosts(ctx context.Context, searchTerm string, page int) ([]models.Video, *models.Pagination, error) {
	apiURL := s.searchURL(searchTerm, page)
	s.logger.Debugf("[catalog] searching %q page %d", searchTerm, page)

	var resp models.SearchResponse
	if err := s.getJSON(ctx, apiURL, &resp); err != nil {
		return nil, nil, err
	}

	return normalize.SearchPosts(resp.Posts, s.imageBaseURL), resp.Pagination, nil
}

// FetchCategories fetches the categories tree (main categories with their
// nested sub-categories).
func (s *Catalog) FetchCategories(ctx context.Context) ([]models.CategoryItem, error) {
	const cacheKey = "catalog:categories"
	if data, found := s.cache.Get(cacheKey); found {
		return data.([]models.CategoryItem), nil
	}

	var items []models.CategoryItem
	if err := s.getJSON(ctx, s.baseURL+"/api/categories", &items); err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, items)
	return items, nil
}

// FetchCategoryPosts fetches one page of a category's contents. The
// upstream returns either {"posts": [...]} or a bare array; both shapes are
// accepted, and an unexpected shape degrades to an empty page.
func (s *Catalog) FetchCategoryPosts(ctx context.Context, categoryID string, page int) ([]models.Video, *models.Pagination, error) {
	apiURL := s.categoryPostsURL(categoryID, page)
	s.logger.Debugf("[catalog] fetching category %s page %d", categoryID, page)

	var resp models.CategoryPostsResponse
	if err := s.getJSON(ctx, apiURL, &resp); err != nil {
		return nil, nil, err
	}

	return normalize.SearchPosts(resp.Posts, s.imageBaseURL), resp.Pagination, nil
}

// GetVideoByID fetches and normalizes an individual post. The id must be a
// plain post id; episode ids are handled by GetEpisodeByID.
func (s *Catalog) GetVideoByID(ctx context.Context, id string) (*models.Video, error) {
	detail, err := s.fetchPostDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	video := normalize.DetailPost(*detail, s.imageBaseURL)
	return &video, nil
}

// GetEpisodeByID resolves a synthesized "{postID}-s{n}-e{n}" id back to its
// episode: the parent post id is recovered from the prefix, the parent is
// fetched and normalized, and its seasons are scanned for an exact match.
func (s *Catalog) GetEpisodeByID(ctx context.Context, episodeID string) (*models.Episode, error) {
	if !normalize.IsEpisodeID(episodeID) {
		return nil, errors.NewInvalidIDError(episodeID)
	}

	postID := normalize.ParentPostID(episodeID)
	show, err := s.GetVideoByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !show.IsSeries() {
		s.logger.Warnf("[catalog] episode id %s resolves to non-series post %s", episodeID, postID)
		return nil, errors.NewEpisodeNotFoundError(episodeID)
	}

	episode, ok := normalize.FindEpisode(show, episodeID)
	if !ok {
		return nil, errors.NewEpisodeNotFoundError(episodeID)
	}
	return episode, nil
}

// fetchPostDetail looks up a post detail through the cache tiers before
// hitting the network.
func (s *Catalog) fetchPostDetail(ctx context.Context, postID string) (*models.PostDetail, error) {
	cacheKey := "post:" + postID
	if data, found := s.cache.Get(cacheKey); found {
		return data.(*models.PostDetail), nil
	}

	if s.db != nil {
		if cached, err := s.db.GetCachedPost(postID, s.cacheTTL); err == nil && cached != nil {
			s.cache.Set(cacheKey, cached)
			return cached, nil
		}
	}

	var detail models.PostDetail
	if err := s.getJSONNotFound(ctx, s.baseURL+"/api/posts/"+postID, &detail, postID); err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, &detail)
	if s.db != nil {
		if err := s.db.StorePost(postID, &detail); err != nil {
			s.logger.Errorf("[catalog] failed to store post %s: %v", postID, err)
		}
	}

	return &detail, nil
}
