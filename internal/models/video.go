package models

// Video is a catalog search result, optionally enriched with details
// from a follow-up videos.list call. DurationSeconds stays zero until
// enrichment succeeds.
type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ChannelTitle    string `json:"channelTitle"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	PublishedAt     string `json:"publishedAt,omitempty"`
}

// URL returns the public watch URL for the video.
func (v *Video) URL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

type Playlist struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
}
