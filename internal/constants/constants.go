// Package constants defines application-wide constants and default values.
package constants

const (
	// Service metadata
	ServiceName    = "catalogd"
	ServiceVersion = "1.0.0"

	// Default configuration values
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Upstream API
	DefaultAPIBaseURL = "http://new.circleftp.net:5000"
	UploadsPath       = "/uploads/"

	// Listing page size used by search and category content requests
	DefaultPageSize = 50

	// Cache settings
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 24 // hours

	// Rate limiting for upstream calls
	UpstreamRateLimit = 20 // requests per second
	UpstreamRateBurst = 5  // burst capacity

	// Search input quiet period in milliseconds
	DefaultSearchDebounceMs = 500
)

// Normalization placeholders. The upstream API supplies neither ratings nor
// a playable URL for feed posts, and series feed posts carry no episode
// listing; these stand-ins keep the client renderable.
const (
	// PlaceholderVideoURL is used for posts whose playable content is only
	// available from the detail endpoint.
	PlaceholderVideoURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"

	// PlaceholderRating is used because the upstream never supplies ratings.
	PlaceholderRating = 8.0

	// PlaceholderEpisodeCount is used for series normalized without real
	// season data. Likely a stand-in inherited from the backend's client;
	// verify against real backend samples before changing.
	PlaceholderEpisodeCount = 10
)

// Synthetic home categories derived from the latest-posts feed.
const (
	TrendingCategoryID        = "trending"
	TrendingCategoryName      = "Trending Now"
	TrendingCategorySize      = 6
	RecentlyAddedCategoryID   = "recently-added"
	RecentlyAddedCategoryName = "Recently Added"
	RecentlyAddedCategorySize = 8
)

// Genre fallbacks. The home feed and the search/detail normalizers
// intentionally use different unmatched-fallback tags.
const (
	GenreFallbackHome   = "Entertainment"
	GenreFallbackSearch = "General"
)
