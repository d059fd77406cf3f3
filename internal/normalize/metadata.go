package normalize

import (
	"strconv"
	"strings"

	"github.com/cineflow/catalogd/internal/models"
)

// genreKeyword maps a quality-string keyword to the genre tag it implies.
// Matches are appended in table order, not input order.
type genreKeyword struct {
	keyword string
	genre   string
}

var genreKeywords = []genreKeyword{
	{"anime", "Animation"},
	{"hindi", "Bollywood"},
	{"english", "Hollywood"},
	{"tv series", "TV Show"},
	{"documentary", "Documentary"},
	{"dub", "Dubbed"},
}

// InferGenres derives genre tags from a free-text quality string by
// case-insensitive keyword matching. When nothing matches the result is
// exactly [fallback]; the home feed and the search/detail paths pass
// different fallback tags.
func InferGenres(quality, fallback string) []string {
	q := strings.ToLower(quality)

	var genres []string
	for _, kw := range genreKeywords {
		if q != "" && strings.Contains(q, kw.keyword) {
			genres = append(genres, kw.genre)
		}
	}

	if len(genres) == 0 {
		genres = append(genres, fallback)
	}
	return genres
}

// InferAudioTracks derives the audio track list from the quality string and,
// independently, from the content URL or filename.
func InferAudioTracks(quality, contentRef string) []models.AudioTrack {
	var tracks []models.AudioTrack
	q := strings.ToLower(quality)

	switch {
	case q == "":
		tracks = append(tracks, models.AudioTrack{ID: "1", Language: "en", Label: "English"})
	case strings.Contains(q, "dual audio") || strings.Contains(q, "hin+eng"):
		tracks = append(tracks,
			models.AudioTrack{ID: "1", Language: "en", Label: "English"},
			models.AudioTrack{ID: "2", Language: "hi", Label: "Hindi"},
		)
	case strings.Contains(q, "hindi"):
		tracks = append(tracks, models.AudioTrack{ID: "1", Language: "hi", Label: "Hindi"})
	case strings.Contains(q, "spanish") || strings.Contains(q, "esp"):
		tracks = append(tracks, models.AudioTrack{ID: "1", Language: "es", Label: "Spanish"})
	case strings.Contains(q, "french") || strings.Contains(q, "fr"):
		tracks = append(tracks, models.AudioTrack{ID: "1", Language: "fr", Label: "French"})
	default:
		tracks = append(tracks, models.AudioTrack{ID: "1", Language: "en", Label: "English"})
	}

	// Surround-sound markers decorate the primary track's label only.
	if q != "" {
		switch {
		case strings.Contains(q, "5.1") || strings.Contains(q, "surround"):
			tracks[0].Label += " 5.1"
		case strings.Contains(q, "7.1"):
			tracks[0].Label += " 7.1"
		case strings.Contains(q, "atmos"):
			tracks[0].Label += " Atmos"
		}
	}

	if ref := strings.ToLower(contentRef); ref != "" {
		if strings.Contains(ref, "dual") && !hasAudioLanguage(tracks, "hi") {
			tracks = append(tracks, models.AudioTrack{
				ID:       strconv.Itoa(len(tracks) + 1),
				Language: "hi",
				Label:    "Hindi",
			})
		}

		if strings.Contains(ref, "multi") && len(tracks) == 1 {
			tracks = append(tracks,
				models.AudioTrack{ID: "2", Language: "es", Label: "Spanish"},
				models.AudioTrack{ID: "3", Language: "fr", Label: "French"},
			)
		}
	}

	return tracks
}

// InferSubtitles derives the subtitle track list from the quality string and
// the content URL or filename. The list is never empty: English is the final
// fallback.
func InferSubtitles(quality, contentRef string) []models.Subtitle {
	var subtitles []models.Subtitle
	q := strings.ToLower(quality)

	if q != "" {
		if strings.Contains(q, "dual audio") || strings.Contains(q, "hin+eng") {
			subtitles = append(subtitles,
				models.Subtitle{ID: "1", Language: "en", Label: "English"},
				models.Subtitle{ID: "2", Language: "hi", Label: "Hindi"},
			)
		} else if strings.Contains(q, "subtitle") || strings.Contains(q, "sub") {
			subtitles = append(subtitles, models.Subtitle{ID: "1", Language: "en", Label: "English"})
		}
	}

	if ref := strings.ToLower(contentRef); ref != "" {
		if strings.Contains(ref, ".srt") || strings.Contains(ref, "subtitle") {
			if !hasSubtitleLanguage(subtitles, "en") {
				subtitles = append(subtitles, models.Subtitle{
					ID:       strconv.Itoa(len(subtitles) + 1),
					Language: "en",
					Label:    "English",
				})
			}
		}

		if strings.Contains(ref, "dual") || strings.Contains(ref, "multi") {
			if !hasSubtitleLanguage(subtitles, "en") {
				subtitles = append(subtitles, models.Subtitle{ID: "1", Language: "en", Label: "English"})
			}
			if !hasSubtitleLanguage(subtitles, "hi") {
				subtitles = append(subtitles, models.Subtitle{
					ID:       strconv.Itoa(len(subtitles) + 1),
					Language: "hi",
					Label:    "Hindi",
				})
			}
		}
	}

	if len(subtitles) == 0 {
		subtitles = append(subtitles, models.Subtitle{ID: "1", Language: "en", Label: "English"})
	}

	return subtitles
}

func hasAudioLanguage(tracks []models.AudioTrack, language string) bool {
	for _, t := range tracks {
		if t.Language == language {
			return true
		}
	}
	return false
}

func hasSubtitleLanguage(subtitles []models.Subtitle, language string) bool {
	for _, s := range subtitles {
		if s.Language == language {
			return true
		}
	}
	return false
}
