package models

// Plan modes. The mode fully determines which optional fields of a
// LearningPlan are meaningful.
const (
	ModePlaylist = "playlist"
	ModeCurated  = "curated"
)

type LearningItem struct {
	VideoID         string `json:"videoId"`
	Title           string `json:"title"`
	URL             string `json:"url"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

type LearningModule struct {
	Title                string         `json:"title"`
	EstimatedTimeMinutes int            `json:"estimatedTimeMinutes,omitempty"`
	Items                []LearningItem `json:"items"`
}

type LearningTips struct {
	Milestones []string `json:"milestones"`
	Exercises  []string `json:"exercises,omitempty"`
	CheatSheet string   `json:"cheatSheet,omitempty"`
}

// LearningPlan is the response of plan generation. In playlist mode the
// Playlist* fields are set; in curated mode Modules carries the lesson
// structure. Plans are built once per request and never persisted.
type LearningPlan struct {
	Topic                     string           `json:"topic"`
	Mode                      string           `json:"mode"`
	PlaylistID                string           `json:"playlistId,omitempty"`
	PlaylistTitle             string           `json:"playlistTitle,omitempty"`
	PlaylistChannelTitle      string           `json:"playlistChannelTitle,omitempty"`
	Modules                   []LearningModule `json:"modules,omitempty"`
	TotalEstimatedTimeMinutes int              `json:"totalEstimatedTimeMinutes,omitempty"`
	Tips                      *LearningTips    `json:"tips,omitempty"`
}
