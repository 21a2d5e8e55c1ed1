package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"studytube/internal/models"
	"studytube/shared/config"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrMissingAPIKey is a configuration error raised at construction, before
// any network call is attempted.
var ErrMissingAPIKey = errors.New("YouTube API key not configured")

// Search queries are augmented with fixed educational terms so the catalog
// surfaces study material rather than entertainment.
const (
	playlistQuerySuffix = " tutorial learn course guide playlist"
	videoQuerySuffix    = " tutorial learn course guide how to basics fundamentals"
)

const (
	playlistSearchMax = 5
	videoSearchMax    = 15
	relaxedSearchMax  = 20
	relaxedResultCap  = 10
	playlistItemsMax  = 50
)

type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// SearchPlaylists looks for existing playlists on the topic. Playlists are
// not run through the classifier: titles alone carry too little signal at
// this granularity, and playlist items are trusted by construction.
func (c *Client) SearchPlaylists(ctx context.Context, topic string) ([]*models.Playlist, error) {
	query := topic + playlistQuerySuffix
	log.Printf("Searching playlists for: %s", query)

	response, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("playlist").
		MaxResults(playlistSearchMax).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("playlist search failed: %w", err)
	}

	var playlists []*models.Playlist
	for _, item := range response.Items {
		if item.Id == nil || item.Id.PlaylistId == "" || item.Snippet == nil {
			continue
		}
		playlists = append(playlists, &models.Playlist{
			ID:           item.Id.PlaylistId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	return playlists, nil
}

// SearchVideos runs the two-pass video search. The strict pass augments the
// query and keeps only positively classified videos; if that yields nothing,
// a relaxed pass re-searches the raw topic and drops only videos with a
// disqualifying signal, capped at 10 results.
func (c *Client) SearchVideos(ctx context.Context, topic string) ([]*models.Video, error) {
	log.Printf("Searching videos for: %s", topic+videoQuerySuffix)
	videos, err := c.searchAndEnrich(ctx, topic+videoQuerySuffix, videoSearchMax)
	if err != nil {
		return nil, err
	}

	var educational []*models.Video
	for _, video := range videos {
		if isEducational(video.Title, video.Description) {
			educational = append(educational, video)
		}
	}
	if len(educational) > 0 {
		return educational, nil
	}

	log.Printf("No educational videos found for %q, trying relaxed search", topic)
	relaxed, err := c.searchAndEnrich(ctx, topic, relaxedSearchMax)
	if err != nil {
		// The strict result, empty as it is, still stands: the relaxed
		// pass is a recovery tier, not a second chance to fail.
		log.Printf("Relaxed video search failed: %v", err)
		return educational, nil
	}

	var kept []*models.Video
	for _, video := range relaxed {
		if hasDisqualifier(video.Title, video.Description) {
			continue
		}
		kept = append(kept, video)
		if len(kept) == relaxedResultCap {
			break
		}
	}
	return kept, nil
}

// PlaylistItems lists up to 50 items of a playlist in catalog order and
// enriches them with durations. If enrichment fails the bare items are
// returned rather than an error.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string) ([]*models.Video, error) {
	response, err := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(playlistItemsMax).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("playlist items lookup failed: %w", err)
	}

	var videos []*models.Video
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil || item.Snippet.ResourceId.VideoId == "" {
			continue
		}
		videos = append(videos, &models.Video{
			ID:           item.Snippet.ResourceId.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	if len(videos) == 0 {
		return videos, nil
	}

	if err := c.enrichDetails(ctx, videos); err != nil {
		log.Printf("Warning: failed to enrich playlist items: %v", err)
	}
	return videos, nil
}

// searchAndEnrich runs a video search and merges in duration and publish
// date from a batch details call. A details failure is an upstream error
// here; callers decide whether a fallback tier absorbs it.
func (c *Client) searchAndEnrich(ctx context.Context, query string, maxResults int64) ([]*models.Video, error) {
	response, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}

	var videos []*models.Video
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, &models.Video{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
		})
	}
	if len(videos) == 0 {
		return videos, nil
	}

	if err := c.enrichDetails(ctx, videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *Client) enrichDetails(ctx context.Context, videos []*models.Video) error {
	ids := make([]string, len(videos))
	for i, video := range videos {
		ids[i] = video.ID
	}

	response, err := c.service.Videos.List([]string{"contentDetails", "snippet"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("video details lookup failed: %w", err)
	}

	type detail struct {
		durationSeconds int
		publishedAt     string
	}
	details := make(map[string]detail, len(response.Items))
	for _, item := range response.Items {
		d := detail{}
		if item.ContentDetails != nil {
			if seconds, ok := parseDurationSeconds(item.ContentDetails.Duration); ok {
				d.durationSeconds = seconds
			}
		}
		if item.Snippet != nil {
			d.publishedAt = item.Snippet.PublishedAt
		}
		details[item.Id] = d
	}

	for _, video := range videos {
		if d, ok := details[video.ID]; ok {
			video.DurationSeconds = d.durationSeconds
			if d.publishedAt != "" {
				video.PublishedAt = d.publishedAt
			}
		}
	}
	return nil
}

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseDurationSeconds converts an ISO 8601 duration code like "PT1H2M3S"
// to seconds. ok is false when the code lacks the PT shape entirely.
func parseDurationSeconds(code string) (int, bool) {
	matches := durationPattern.FindStringSubmatch(code)
	if matches == nil {
		return 0, false
	}

	var totalSeconds int
	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			totalSeconds += hours * 3600
		}
	}
	if matches[2] != "" {
		if minutes, err := strconv.Atoi(matches[2]); err == nil {
			totalSeconds += minutes * 60
		}
	}
	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			totalSeconds += seconds
		}
	}
	return totalSeconds, true
}
