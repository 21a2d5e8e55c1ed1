package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimedTextURL = "https://video.google.com/timedtext"

// Language hints tried in order when fetching a transcript. The first
// non-empty result wins; a final unhinted attempt lets the endpoint pick
// whatever default track the video carries.
var transcriptLanguages = []string{"en", "en-US", "en-GB", "es", "hi"}

// TranscriptClient fetches spoken-text transcripts from the timedtext
// endpoint. A missing transcript is an expected state for every caller, so
// all failures degrade to an empty string.
type TranscriptClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewTranscriptClient() *TranscriptClient {
	return &TranscriptClient{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    defaultTimedTextURL,
	}
}

// Fetch returns the flattened transcript text for a video, or "" when no
// transcript is available in any tried language.
func (t *TranscriptClient) Fetch(ctx context.Context, videoID string) string {
	if videoID == "" {
		return ""
	}

	for _, lang := range transcriptLanguages {
		if text := t.fetchLanguage(ctx, videoID, lang); text != "" {
			return text
		}
	}
	return t.fetchLanguage(ctx, videoID, "")
}

func (t *TranscriptClient) fetchLanguage(ctx context.Context, videoID, lang string) string {
	endpoint := fmt.Sprintf("%s?v=%s", t.baseURL, url.QueryEscape(videoID))
	if lang != "" {
		endpoint += "&lang=" + url.QueryEscape(lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Printf("Transcript fetch failed for %s (lang=%q): %v", videoID, lang, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var doc struct {
		Texts []string `xml:"text"`
	}
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return ""
	}

	var segments []string
	for _, text := range doc.Texts {
		segment := strings.TrimSpace(html.UnescapeString(text))
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return strings.Join(segments, " ")
}
