package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineflow/catalogd/internal/constants"
	"github.com/cineflow/catalogd/internal/models"
)

const testImageBase = "http://cdn.example.com/uploads/"

func TestHomePostMovie(t *testing.T) {
	post := models.APIPost{
		ID:        42,
		Title:     "Inception",
		Name:      "inception-2010",
		Image:     "inception.jpg",
		Quality:   "1080p English",
		WatchTime: "2h 28m",
		Type:      models.PostTypeSingleVideo,
		Year:      "2010",
	}

	video := HomePost(post, testImageBase)

	assert.Equal(t, "42", video.ID)
	assert.Equal(t, models.VideoTypeMovie, video.Type)
	assert.Equal(t, "Inception", video.Title)
	assert.Equal(t, "1080p English • 2010", video.Description)
	assert.Equal(t, testImageBase+"inception.jpg", video.Poster)
	assert.Equal(t, video.Poster, video.Backdrop)
	assert.Equal(t, 148, video.Duration)
	assert.Equal(t, 2010, video.ReleaseYear)
	assert.Equal(t, []string{"Hollywood"}, video.Genres)
	assert.Equal(t, constants.PlaceholderRating, video.Rating)
	assert.Equal(t, constants.PlaceholderVideoURL, video.VideoURL)
	assert.Empty(t, video.Seasons)
	assert.Zero(t, video.TotalEpisodes)
}

func TestHomePostTitleFallsBackToName(t *testing.T) {
	post := models.APIPost{ID: 7, Name: "some-name", Type: models.PostTypeSingleVideo, Year: "2020"}
	video := HomePost(post, testImageBase)
	assert.Equal(t, "some-name", video.Title)
}

func TestHomePostYearFallback(t *testing.T) {
	post := models.APIPost{ID: 7, Name: "x", Type: models.PostTypeSingleVideo, Year: "unknown"}
	video := HomePost(post, testImageBase)
	assert.Equal(t, time.Now().Year(), video.ReleaseYear)
}

func TestHomePostGenreFallback(t *testing.T) {
	post := models.APIPost{ID: 7, Name: "x", Quality: "1080p", Type: models.PostTypeSingleVideo, Year: "2020"}
	video := HomePost(post, testImageBase)
	assert.Equal(t, []string{"Entertainment"}, video.Genres)
}

func TestHomePostSeries(t *testing.T) {
	post := models.APIPost{
		ID:      9,
		Name:    "Dark",
		Quality: "TV Series 1080p",
		Type:    models.PostTypeSeries,
		Year:    "2017",
	}

	video := HomePost(post, testImageBase)

	assert.Equal(t, models.VideoTypeTV, video.Type)
	require.Len(t, video.Seasons, 1)
	require.Len(t, video.Seasons[0].Episodes, 1)
	assert.Equal(t, 1, video.Seasons[0].SeasonNumber)
	assert.Equal(t, "Episode 1", video.Seasons[0].Episodes[0].Title)
	assert.Equal(t, constants.PlaceholderEpisodeCount, video.TotalEpisodes)
}

func TestSearchPost(t *testing.T) {
	post := models.SearchAPIPost{
		ID:        101,
		Title:     "The Batman",
		Name:      "The Batman (2022)",
		Image:     "batman-full.jpg",
		ImageSm:   "batman-small.jpg",
		MetaData:  "Gritty detective noir",
		Quality:   "1080p",
		WatchTime: "2h 56m",
		Type:      models.PostTypeSingleVideo,
		Year:      "2022",
	}

	video := SearchPost(post, testImageBase)

	assert.Equal(t, "101", video.ID)
	assert.Equal(t, "The Batman (2022)", video.Title)
	assert.Equal(t, "Gritty detective noir", video.Description)
	assert.Equal(t, testImageBase+"batman-small.jpg", video.Poster)
	assert.Equal(t, testImageBase+"batman-full.jpg", video.Backdrop)
	assert.Equal(t, []string{"General"}, video.Genres)
	assert.Equal(t, []models.Subtitle{{ID: "1", Language: "en", Label: "English"}}, video.Subtitles)
	assert.Equal(t, []models.AudioTrack{{ID: "1", Language: "en", Label: "English 5.1"}}, video.AudioTracks)
}

func TestSearchPostDescriptionFallbacks(t *testing.T) {
	post := models.SearchAPIPost{ID: 1, Title: "A Title", Name: "a-name", Type: models.PostTypeSingleVideo}
	assert.Equal(t, "A Title", SearchPost(post, testImageBase).Description)

	post.Title = ""
	assert.Equal(t, "a-name", SearchPost(post, testImageBase).Description)
}

func TestSearchPostYearFallback(t *testing.T) {
	post := models.SearchAPIPost{ID: 1, Name: "x", Type: models.PostTypeSingleVideo, Year: ""}
	assert.Equal(t, 2000, SearchPost(post, testImageBase).ReleaseYear)
}

func TestSearchPostSeries(t *testing.T) {
	post := models.SearchAPIPost{
		ID:       55,
		Name:     "Breaking Bad",
		MetaData: "Chemistry teacher turns cook",
		Type:     models.PostTypeSeries,
		Year:     "2008",
	}

	video := SearchPost(post, testImageBase)

	assert.Equal(t, models.VideoTypeTV, video.Type)
	require.Len(t, video.Seasons, 1)
	episode := video.Seasons[0].Episodes[0]
	assert.Equal(t, "Breaking Bad - Episode 1", episode.Title)
	assert.Equal(t, "Chemistry teacher turns cook - Episode 1", episode.Description)
	assert.Equal(t, constants.PlaceholderEpisodeCount, video.TotalEpisodes)
}

func detailWithContent(t *testing.T, id int, postType string, content interface{}) models.PostDetail {
	t.Helper()
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return models.PostDetail{
		ID:        id,
		Name:      "Sample",
		Type:      postType,
		Image:     "full.jpg",
		ImageSm:   "small.jpg",
		Quality:   "1080p Dual Audio",
		WatchTime: "45m",
		Year:      "2021",
		Content:   raw,
	}
}

func TestDetailPostMovie(t *testing.T) {
	detail := detailWithContent(t, 200, models.PostTypeSingleVideo, "http://cdn.example.com/movie.mkv")

	video := DetailPost(detail, testImageBase)

	assert.Equal(t, models.VideoTypeMovie, video.Type)
	assert.Equal(t, "http://cdn.example.com/movie.mkv", video.VideoURL)
	// Tracks inferred with the content URL as reference.
	require.NotEmpty(t, video.AudioTracks)
	assert.Equal(t, "en", video.AudioTracks[0].Language)
}

func TestDetailPostSeries(t *testing.T) {
	content := []models.SeasonContent{
		{SeasonName: "Season 1", Episodes: []models.EpisodeContent{
			{Link: "http://cdn/e1.mkv", Title: "Pilot"},
			{Link: "http://cdn/e2.mkv", Title: "Second"},
		}},
		{SeasonName: "", Episodes: []models.EpisodeContent{{Link: "http://cdn/x.mkv", Title: "Orphan"}}},
		{SeasonName: "Season 3", Episodes: []models.EpisodeContent{}},
		{SeasonName: "Final Season", Episodes: []models.EpisodeContent{
			{Link: "http://cdn/f1.mkv", Title: "Finale"},
		}},
	}
	detail := detailWithContent(t, 300, models.PostTypeSeries, content)

	video := DetailPost(detail, testImageBase)

	require.Equal(t, models.VideoTypeTV, video.Type)
	// Unnamed and empty seasons are skipped without consuming a number.
	require.Len(t, video.Seasons, 2)
	assert.Equal(t, 1, video.Seasons[0].SeasonNumber)
	assert.Equal(t, 2, video.Seasons[1].SeasonNumber)
	assert.Equal(t, 3, video.TotalEpisodes)

	first := video.Seasons[0].Episodes[0]
	assert.Equal(t, "300-s1-e1", first.ID)
	assert.Equal(t, "Pilot", first.Title)
	assert.Equal(t, "http://cdn/e1.mkv", first.VideoURL)

	finale := video.Seasons[1].Episodes[0]
	assert.Equal(t, "300-s2-e1", finale.ID)
	assert.Equal(t, 2, finale.SeasonNumber)
	assert.Equal(t, 1, finale.EpisodeNumber)
}

func TestDetailPostEpisodeCountMatchesSeasons(t *testing.T) {
	content := []models.SeasonContent{
		{SeasonName: "S1", Episodes: []models.EpisodeContent{{Link: "a"}, {Link: "b"}, {Link: "c"}}},
		{SeasonName: "S2", Episodes: []models.EpisodeContent{{Link: "d"}}},
	}
	detail := detailWithContent(t, 12, models.PostTypeSeries, content)

	video := DetailPost(detail, testImageBase)

	total := 0
	for _, season := range video.Seasons {
		total += len(season.Episodes)
	}
	assert.Equal(t, total, video.TotalEpisodes)
}

func TestDetailPostSeriesWithStringContentDegradesToMovie(t *testing.T) {
	detail := detailWithContent(t, 77, models.PostTypeSeries, "http://cdn/single.mkv")

	video := DetailPost(detail, testImageBase)

	assert.Equal(t, models.VideoTypeMovie, video.Type)
	assert.Equal(t, "http://cdn/single.mkv", video.VideoURL)
}

func TestDetailPostSeriesWithNoQualifyingSeasonsDegradesToMovie(t *testing.T) {
	content := []models.SeasonContent{
		{SeasonName: "", Episodes: []models.EpisodeContent{{Link: "x"}}},
		{SeasonName: "Empty", Episodes: nil},
	}
	detail := detailWithContent(t, 78, models.PostTypeSeries, content)

	video := DetailPost(detail, testImageBase)

	assert.Equal(t, models.VideoTypeMovie, video.Type)
}

func TestEpisodeIDRoundTrip(t *testing.T) {
	for _, postID := range []string{"1", "12345", "987"} {
		for season := 1; season <= 3; season++ {
			for episode := 1; episode <= 4; episode++ {
				id := EpisodeID(postID, season, episode)
				assert.True(t, IsEpisodeID(id))
				assert.Equal(t, postID, ParentPostID(id))
				assert.True(t, strings.HasPrefix(id, fmt.Sprintf("%s-s%d-e%d", postID, season, episode)))
			}
		}
	}
}

func TestParentPostIDPlainID(t *testing.T) {
	assert.Equal(t, "42", ParentPostID("42"))
}

func TestFindEpisode(t *testing.T) {
	content := []models.SeasonContent{
		{SeasonName: "S1", Episodes: []models.EpisodeContent{{Link: "a", Title: "E1"}, {Link: "b", Title: "E2"}}},
		{SeasonName: "S2", Episodes: []models.EpisodeContent{{Link: "c", Title: "E1"}}},
	}
	detail := detailWithContent(t, 500, models.PostTypeSeries, content)
	show := DetailPost(detail, testImageBase)

	episode, ok := FindEpisode(&show, "500-s2-e1")
	require.True(t, ok)
	assert.Equal(t, "E1", episode.Title)
	assert.Equal(t, 2, episode.SeasonNumber)

	_, ok = FindEpisode(&show, "500-s9-e9")
	assert.False(t, ok)
}
