package normalize

import (
	"strconv"

	"github.com/cineflow/catalogd/internal/constants"
	"github.com/cineflow/catalogd/internal/models"
)

// Category converts a home-feed category, normalizing its embedded posts.
func Category(apiCategory models.APICategory, imageBaseURL string) models.Category {
	videos := make([]models.Video, 0, len(apiCategory.Posts))
	for _, post := range apiCategory.Posts {
		videos = append(videos, HomePost(post, imageBaseURL))
	}
	return models.Category{
		ID:     strconv.Itoa(apiCategory.ID),
		Name:   apiCategory.Name,
		Videos: videos,
	}
}

// TrendingCategory builds the synthetic "Trending Now" category from the
// head of the latest-posts feed.
func TrendingCategory(latest []models.APIPost, imageBaseURL string) models.Category {
	return syntheticCategory(
		constants.TrendingCategoryID,
		constants.TrendingCategoryName,
		latest,
		constants.TrendingCategorySize,
		imageBaseURL,
	)
}

// RecentlyAddedCategory builds the synthetic "Recently Added" category from
// the head of the latest-posts feed.
func RecentlyAddedCategory(latest []models.APIPost, imageBaseURL string) models.Category {
	return syntheticCategory(
		constants.RecentlyAddedCategoryID,
		constants.RecentlyAddedCategoryName,
		latest,
		constants.RecentlyAddedCategorySize,
		imageBaseURL,
	)
}

func syntheticCategory(id, name string, latest []models.APIPost, size int, imageBaseURL string) models.Category {
	if len(latest) > size {
		latest = latest[:size]
	}
	videos := make([]models.Video, 0, len(latest))
	for _, post := range latest {
		videos = append(videos, HomePost(post, imageBaseURL))
	}
	return models.Category{ID: id, Name: name, Videos: videos}
}

// Catalog assembles the home screen from the homepage feed: the two
// synthetic categories followed by every non-empty upstream category, plus a
// flat de-duplicated list of all videos. Latest posts are added first; a
// category post with an id already present is dropped, first occurrence
// wins.
func Catalog(home models.HomepageResponse, imageBaseURL string) models.Catalog {
	var categories []models.Category
	var all []models.Video
	seen := make(map[string]struct{})

	if len(home.LatestPost) > 0 {
		categories = append(categories,
			TrendingCategory(home.LatestPost, imageBaseURL),
			RecentlyAddedCategory(home.LatestPost, imageBaseURL),
		)

		for _, post := range home.LatestPost {
			video := HomePost(post, imageBaseURL)
			seen[video.ID] = struct{}{}
			all = append(all, video)
		}
	}

	for _, apiCategory := range home.CategoryPosts {
		if len(apiCategory.Posts) == 0 {
			continue
		}

		categories = append(categories, Category(apiCategory, imageBaseURL))

		for _, post := range apiCategory.Posts {
			id := strconv.Itoa(post.ID)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			all = append(all, HomePost(post, imageBaseURL))
		}
	}

	return models.Catalog{Categories: categories, AllVideos: all}
}

// FlatCategory converts a categories-tree node into a Category with no
// videos; contents are fetched separately by the category listing.
func FlatCategory(item models.CategoryItem) models.Category {
	return models.Category{
		ID:     strconv.Itoa(item.ID),
		Name:   item.Name,
		Videos: []models.Video{},
	}
}

// FlatCategories converts a slice of tree nodes in order.
func FlatCategories(items []models.CategoryItem) []models.Category {
	categories := make([]models.Category, 0, len(items))
	for _, item := range items {
		categories = append(categories, FlatCategory(item))
	}
	return categories
}
