package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cineflow/catalogd/internal/constants"
	"github.com/cineflow/catalogd/internal/models"
)

// HomePost converts a home-feed post into a normalized Video. Feed posts
// carry no playable content, so the video URL is a placeholder and series
// get a single synthetic season until the detail endpoint is consulted.
func HomePost(post models.APIPost, imageBaseURL string) models.Video {
	title := post.Title
	if title == "" {
		title = post.Name
	}
	image := imageBaseURL + post.Image

	video := models.Video{
		ID:          strconv.Itoa(post.ID),
		Type:        models.VideoTypeMovie,
		Title:       title,
		Description: fmt.Sprintf("%s • %s", post.Quality, post.Year),
		Poster:      image,
		Backdrop:    image,
		Duration:    ParseWatchTime(post.WatchTime),
		ReleaseYear: parseYear(post.Year, time.Now().Year()),
		Genres:      InferGenres(post.Quality, constants.GenreFallbackHome),
		Rating:      constants.PlaceholderRating,
		VideoURL:    constants.PlaceholderVideoURL,
		Quality:     post.Quality,
		WatchTime:   post.WatchTime,
		Subtitles:   InferSubtitles(post.Quality, ""),
		AudioTracks: InferAudioTracks(post.Quality, ""),
	}

	if post.Type == models.PostTypeSeries {
		episode := models.Episode{Video: video, SeasonNumber: 1, EpisodeNumber: 1}
		episode.Title = "Episode 1"

		video.Type = models.VideoTypeTV
		video.Seasons = []models.Season{{SeasonNumber: 1, Episodes: []models.Episode{episode}}}
		video.TotalEpisodes = constants.PlaceholderEpisodeCount
	}

	return video
}

// SearchPost converts a search-result post into a normalized Video. Search
// posts carry a small poster variant and free-text metadata; their audio and
// subtitle tracks are fixed English defaults rather than inferred.
func SearchPost(post models.SearchAPIPost, imageBaseURL string) models.Video {
	description := post.MetaData
	if description == "" {
		description = post.Title
	}
	if description == "" {
		description = post.Name
	}

	video := models.Video{
		ID:          strconv.Itoa(post.ID),
		Type:        models.VideoTypeMovie,
		Title:       post.Name,
		Description: description,
		Poster:      imageBaseURL + post.ImageSm,
		Backdrop:    imageBaseURL + post.Image,
		Duration:    ParseWatchTime(post.WatchTime),
		ReleaseYear: parseYear(post.Year, 2000),
		Genres:      InferGenres(post.Quality, constants.GenreFallbackSearch),
		Rating:      constants.PlaceholderRating,
		VideoURL:    constants.PlaceholderVideoURL,
		Quality:     post.Quality,
		WatchTime:   post.WatchTime,
		Subtitles:   []models.Subtitle{{ID: "1", Language: "en", Label: "English"}},
		AudioTracks: []models.AudioTrack{{ID: "1", Language: "en", Label: "English 5.1"}},
	}

	if post.Type == models.PostTypeSeries {
		episode := models.Episode{Video: video, SeasonNumber: 1, EpisodeNumber: 1}
		episode.Title = fmt.Sprintf("%s - Episode 1", post.Name)
		episode.Description = fmt.Sprintf("%s - Episode 1", description)

		video.Type = models.VideoTypeTV
		video.Seasons = []models.Season{{SeasonNumber: 1, Episodes: []models.Episode{episode}}}
		video.TotalEpisodes = constants.PlaceholderEpisodeCount
	}

	return video
}

// SearchPosts converts a page of search-result posts in order.
func SearchPosts(posts []models.SearchAPIPost, imageBaseURL string) []models.Video {
	videos := make([]models.Video, 0, len(posts))
	for _, post := range posts {
		videos = append(videos, SearchPost(post, imageBaseURL))
	}
	return videos
}

// DetailPost converts an individual-post-detail payload into a normalized
// Video. This is the only path with real playable content: a movie's video
// URL comes straight from the content field, and a series' content array is
// expanded into seasons and episodes with synthesized IDs.
func DetailPost(post models.PostDetail, imageBaseURL string) models.Video {
	description := post.MetaData
	if description == "" {
		description = post.Title
	}
	if description == "" {
		description = post.Name
	}

	contentURL := post.ContentURL()

	base := models.Video{
		ID:          strconv.Itoa(post.ID),
		Type:        models.VideoTypeMovie,
		Title:       post.Name,
		Description: description,
		Poster:      imageBaseURL + post.ImageSm,
		Backdrop:    imageBaseURL + post.Image,
		Duration:    ParseWatchTime(post.WatchTime),
		ReleaseYear: parseYear(post.Year, 2000),
		Genres:      InferGenres(post.Quality, constants.GenreFallbackSearch),
		Rating:      constants.PlaceholderRating,
		VideoURL:    contentURL,
		Quality:     post.Quality,
		WatchTime:   post.WatchTime,
		Subtitles:   InferSubtitles(post.Quality, contentURL),
		AudioTracks: InferAudioTracks(post.Quality, contentURL),
	}

	if post.Type != models.PostTypeSeries {
		return base
	}

	seasons := buildSeasons(base, post.ContentSeasons(), post.Quality)
	if len(seasons) == 0 {
		// Series with string content or no usable seasons degrades to a
		// plain movie around whatever single content value exists.
		return base
	}

	show := base
	show.Type = models.VideoTypeTV
	show.Seasons = seasons
	show.TotalEpisodes = countEpisodes(seasons)
	return show
}

// buildSeasons expands a detail content array. Seasons with an empty name or
// no episodes are skipped and do not consume a season number: SeasonNumber
// is the 1-based position among the seasons that survive.
func buildSeasons(base models.Video, content []models.SeasonContent, quality string) []models.Season {
	var seasons []models.Season
	for _, sc := range content {
		if sc.SeasonName == "" || len(sc.Episodes) == 0 {
			continue
		}

		seasonNumber := len(seasons) + 1
		season := models.Season{SeasonNumber: seasonNumber}
		for i, ep := range sc.Episodes {
			episodeNumber := i + 1

			episode := models.Episode{
				Video:         base,
				SeasonNumber:  seasonNumber,
				EpisodeNumber: episodeNumber,
			}
			episode.ID = EpisodeID(base.ID, seasonNumber, episodeNumber)
			episode.Title = ep.Title
			episode.VideoURL = ep.Link
			episode.Subtitles = InferSubtitles(quality, ep.Link)
			episode.AudioTracks = InferAudioTracks(quality, ep.Link)

			season.Episodes = append(season.Episodes, episode)
		}
		seasons = append(seasons, season)
	}
	return seasons
}

func countEpisodes(seasons []models.Season) int {
	total := 0
	for _, season := range seasons {
		total += len(season.Episodes)
	}
	return total
}

// EpisodeID synthesizes the deterministic episode identifier. The player
// reverses this scheme via ParentPostID to recover the owning post.
func EpisodeID(postID string, season, episode int) string {
	return fmt.Sprintf("%s-s%d-e%d", postID, season, episode)
}

// IsEpisodeID reports whether id follows the "{postID}-s{n}-e{n}" scheme.
func IsEpisodeID(id string) bool {
	return strings.Contains(id, "-s") && strings.Contains(id, "-e")
}

// ParentPostID recovers the owning post id from a synthesized episode id.
// Non-episode ids are returned unchanged.
func ParentPostID(episodeID string) string {
	if i := strings.Index(episodeID, "-s"); i >= 0 {
		return episodeID[:i]
	}
	return episodeID
}

// FindEpisode scans a show's seasons for an exact episode id match.
func FindEpisode(show *models.Video, episodeID string) (*models.Episode, bool) {
	for si := range show.Seasons {
		for ei := range show.Seasons[si].Episodes {
			if show.Seasons[si].Episodes[ei].ID == episodeID {
				return &show.Seasons[si].Episodes[ei], true
			}
		}
	}
	return nil, false
}

// parseYear parses an upstream year string, falling back when absent or
// unparseable.
func parseYear(year string, fallback int) int {
	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		return y
	}
	return fallback
}
