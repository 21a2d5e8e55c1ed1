// Package tutor answers questions about the lesson currently on screen.
// It runs a strict waterfall: generative answer, summary shortcut,
// transcript extraction, catalog suggestions, then a fixed apology. The
// answerer never returns an error; a chat UI should never see one.
package tutor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"studytube/internal/models"
	"studytube/shared/relevance"
)

const (
	maxTranscriptChars  = 8000
	maxSummaryBullets   = 4
	maxExtractBullets   = 5
	maxSuggestions      = 2
	summarySyntheticQry = "topic introduction overview basics"
)

var summaryIntents = []string{"summary", "summarize", "outline", "overview", "what is this video about"}

// TranscriptFetcher provides the spoken text of a video, or "" when no
// transcript exists.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) string
}

// Searcher is the catalog slice used for alternative-video suggestions.
type Searcher interface {
	SearchVideos(ctx context.Context, topic string) ([]*models.Video, error)
}

// Generator is the generative tutoring capability. Nil means unconfigured;
// the deterministic tiers still run.
type Generator interface {
	Answer(ctx context.Context, question, topic, transcript string) (string, error)
}

type Tutor struct {
	transcripts TranscriptFetcher
	catalog     Searcher
	generator   Generator
}

func New(transcripts TranscriptFetcher, catalog Searcher, generator Generator) *Tutor {
	return &Tutor{transcripts: transcripts, catalog: catalog, generator: generator}
}

// tierFunc attempts one answer tier. ok reports whether the tier produced
// an answer; the driver stops at the first ok result.
type tierFunc func(ctx context.Context, question, topic, transcript string) (string, bool)

// AnswerQuestion answers a single question about a topic and, optionally,
// the video being watched. Stateless: each call is independent.
func (t *Tutor) AnswerQuestion(ctx context.Context, question, topic, videoID string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return "Please provide a question."
	}

	transcript := ""
	if t.transcripts != nil && videoID != "" {
		transcript = t.transcripts.Fetch(ctx, videoID)
	}
	if len(transcript) > maxTranscriptChars {
		cut := maxTranscriptChars
		for cut > 0 && !utf8.RuneStart(transcript[cut]) {
			cut--
		}
		transcript = transcript[:cut]
	}

	tiers := []tierFunc{
		t.generativeAnswer,
		t.summaryShortcut,
		t.transcriptExtraction,
		t.catalogSuggestions,
	}
	for _, tier := range tiers {
		if answer, ok := tier(ctx, question, topic, transcript); ok {
			return answer
		}
	}

	return fmt.Sprintf("I can't reach the AI right now. Based on the topic %s, try asking a more specific question or a step-by-step task to get a practical answer.", topicQuoted(topic))
}

func (t *Tutor) generativeAnswer(ctx context.Context, question, topic, transcript string) (string, bool) {
	if t.generator == nil {
		return "", false
	}

	answer, err := t.generator.Answer(ctx, question, topic, transcript)
	if err != nil {
		log.Printf("Generative answer failed: %v", err)
		return "", false
	}
	if answer == "" {
		return "", false
	}
	return answer, true
}

// summaryShortcut handles explicit summary requests without the AI: it
// extracts introduction-flavored sentences from the transcript. A matched
// summary intent always terminates the waterfall, even with an empty
// transcript.
func (t *Tutor) summaryShortcut(_ context.Context, question, topic, transcript string) (string, bool) {
	lowered := strings.ToLower(question)
	matched := false
	for _, intent := range summaryIntents {
		if strings.Contains(lowered, intent) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	sentences := relevance.TopSentences(transcript, summarySyntheticQry, maxSummaryBullets)
	if len(sentences) == 0 {
		return fmt.Sprintf("This video is about %s. Watch it through for the main concepts, then ask me about anything specific.", topicLabel(topic)), true
	}
	return "Here's a quick summary from the video:\n" + bulleted(sentences), true
}

func (t *Tutor) transcriptExtraction(_ context.Context, question, _, transcript string) (string, bool) {
	sentences := relevance.TopSentences(transcript, question, maxExtractBullets)
	if len(sentences) == 0 {
		return "", false
	}
	return "From the current video context:\n" + bulleted(sentences), true
}

func (t *Tutor) catalogSuggestions(ctx context.Context, question, topic, _ string) (string, bool) {
	if t.catalog == nil {
		return "", false
	}

	query := strings.TrimSpace(topic + " " + question)
	videos, err := t.catalog.SearchVideos(ctx, query)
	if err != nil {
		log.Printf("Suggestion search failed: %v", err)
		return "", false
	}
	if len(videos) == 0 {
		return "", false
	}
	if len(videos) > maxSuggestions {
		videos = videos[:maxSuggestions]
	}

	var suggestions []string
	for _, video := range videos {
		suggestions = append(suggestions, video.Title+" — "+video.ChannelTitle)
	}
	return "I couldn't find that in the current video, but these might help:\n" + bulleted(suggestions), true
}

func bulleted(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func topicLabel(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return "(unspecified)"
	}
	return topic
}

// topicQuoted quotes a real topic for display but leaves the unspecified
// placeholder bare.
func topicQuoted(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return "(unspecified)"
	}
	return fmt.Sprintf("%q", topic)
}
