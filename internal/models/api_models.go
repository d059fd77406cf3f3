// Package models defines upstream API response structures and the
// normalized catalog entities served to clients.
package models

import "encoding/json"

// Upstream post type values.
const (
	PostTypeSingleVideo = "singleVideo"
	PostTypeSeries      = "series"
	PostTypeMultiFile   = "multiFile"
	PostTypeSingleFile  = "singleFile"
)

// APIPost is a post as returned by the home-page feed.
type APIPost struct {
	ID        int    `json:"id"`
	Title     string `json:"title,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	ImageSm   string `json:"imageSm"`
	Quality   string `json:"quality"`
	WatchTime string `json:"watchTime"`
	Type      string `json:"type"`
	Year      string `json:"year"`
}

// APICategory is a category with embedded posts from the home-page feed.
type APICategory struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	ParentID *int      `json:"parentId"`
	Posts    []APIPost `json:"posts"`
}

// HomepageResponse is the payload of GET /api/home-page/getHomePagePosts.
type HomepageResponse struct {
	LatestPost    []APIPost     `json:"latestPost"`
	CategoryPosts []APICategory `json:"categoryPosts"`
}

// SearchAPIPost is a post as returned by GET /api/posts. It is a richer
// shape than APIPost: it carries a small image variant and free-text
// metadata used for descriptions.
type SearchAPIPost struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Image     string `json:"image"`
	ImageSm   string `json:"imageSm"`
	Cover     string `json:"cover,omitempty"`
	MetaData  string `json:"metaData"`
	Tags      string `json:"tags"`
	View      int    `json:"view"`
	Name      string `json:"name"`
	Quality   string `json:"quality"`
	WatchTime string `json:"watchTime"`
	Year      string `json:"year"`

	Categories []CategoryRef `json:"categories,omitempty"`
}

// CategoryRef is the slim category reference embedded in posts.
type CategoryRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID *int   `json:"parentId"`
}

// Pagination carries the optional paging block some listing endpoints return.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SearchResponse is the payload of GET /api/posts?searchTerm=...
type SearchResponse struct {
	Posts      []SearchAPIPost `json:"posts"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// CategoryPostsResponse is the payload of GET /api/posts?categoryExact=...
// The upstream is inconsistent: it returns either {"posts": [...]} or a bare
// JSON array. UnmarshalJSON accepts both and normalizes to the object form.
type CategoryPostsResponse struct {
	Posts      []SearchAPIPost `json:"posts"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

func (r *CategoryPostsResponse) UnmarshalJSON(data []byte) error {
	var posts []SearchAPIPost
	if err := json.Unmarshal(data, &posts); err == nil {
		r.Posts = posts
		r.Pagination = nil
		return nil
	}

	type alias CategoryPostsResponse
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unexpected shape degrades to an empty listing rather than failing.
		r.Posts = nil
		r.Pagination = nil
		return nil
	}
	*r = CategoryPostsResponse(obj)
	return nil
}

// CategoryItem is a node of the categories tree from GET /api/categories.
type CategoryItem struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	ParentID    *int           `json:"parentId"`
	SubCategory []CategoryItem `json:"subCategory,omitempty"`
}

// PostDetail is the payload of GET /api/posts/{id}. Content is either a
// plain URL string (movies) or an array of season objects (series), so it
// is kept raw and decoded on demand.
type PostDetail struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Image     string          `json:"image"`
	ImageSm   string          `json:"imageSm"`
	Cover     string          `json:"cover,omitempty"`
	MetaData  string          `json:"metaData"`
	Tags      string          `json:"tags"`
	Content   json.RawMessage `json:"content"`
	View      int             `json:"view"`
	Name      string          `json:"name"`
	Quality   string          `json:"quality"`
	WatchTime string          `json:"watchTime"`
	Year      string          `json:"year"`

	Categories []CategoryRef `json:"categories,omitempty"`
}

// SeasonContent is one entry of a series detail's content array.
type SeasonContent struct {
	SeasonName string           `json:"seasonName"`
	Episodes   []EpisodeContent `json:"episodes"`
}

// EpisodeContent is one playable episode inside a season.
type EpisodeContent struct {
	Link  string `json:"link"`
	Title string `json:"title"`
}

// ContentURL returns the content field decoded as a single URL string, or
// "" when the content is a season array (or absent).
func (p *PostDetail) ContentURL() string {
	if len(p.Content) == 0 {
		return ""
	}
	var url string
	if err := json.Unmarshal(p.Content, &url); err != nil {
		return ""
	}
	return url
}

// ContentSeasons returns the content field decoded as a season array, or
// nil when the content is a plain URL string (or absent).
func (p *PostDetail) ContentSeasons() []SeasonContent {
	if len(p.Content) == 0 {
		return nil
	}
	var seasons []SeasonContent
	if err := json.Unmarshal(p.Content, &seasons); err != nil {
		return nil
	}
	return seasons
}
