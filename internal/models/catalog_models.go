package models

// VideoType discriminates the two normalized video kinds.
type VideoType string

const (
	VideoTypeMovie VideoType = "movie"
	VideoTypeTV    VideoType = "tv"
)

// Video is the normalized catalog entity. A movie is a Video with
// Type=="movie"; a TV show carries Seasons and TotalEpisodes in addition.
type Video struct {
	ID          string       `json:"id"`
	Type        VideoType    `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Poster      string       `json:"poster"`
	Backdrop    string       `json:"backdrop"`
	Duration    int          `json:"duration"` // minutes
	ReleaseYear int          `json:"releaseYear"`
	Genres      []string     `json:"genres"`
	Rating      float64      `json:"rating"`
	VideoURL    string       `json:"videoUrl"`
	Quality     string       `json:"quality"`
	WatchTime   string       `json:"watchTime"`
	Subtitles   []Subtitle   `json:"subtitles,omitempty"`
	AudioTracks []AudioTrack `json:"audioTracks,omitempty"`

	// TV show fields, empty for movies.
	Seasons       []Season `json:"seasons,omitempty"`
	TotalEpisodes int      `json:"totalEpisodes,omitempty"`
}

// IsSeries reports whether the video is a TV show.
func (v *Video) IsSeries() bool {
	return v.Type == VideoTypeTV
}

// Season groups the episodes of one season of a TV show.
type Season struct {
	SeasonNumber int       `json:"seasonNumber"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is a playable episode. It carries all Video fields plus its
// position; its ID is synthesized as "{postID}-s{season}-e{episode}".
type Episode struct {
	Video
	SeasonNumber  int `json:"seasonNumber"`
	EpisodeNumber int `json:"episodeNumber"`
}

// Subtitle is a selectable subtitle track.
type Subtitle struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// AudioTrack is a selectable audio track.
type AudioTrack struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// Category is a named, ordered group of videos. Videos may be empty for
// tree categories whose contents are fetched separately.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
}

// Catalog is the assembled home screen: synthetic and upstream categories
// plus a flat de-duplicated list of every video seen in the feed.
type Catalog struct {
	Categories []Category `json:"categories"`
	AllVideos  []Video    `json:"allVideos"`
}
