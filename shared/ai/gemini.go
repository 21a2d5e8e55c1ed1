// Package ai wraps the Gemini API for the three generative operations of
// the service: curating a plan from candidate videos, generating learning
// tips, and answering tutoring questions. Every caller treats a failure
// here as "unavailable" and falls back to a deterministic tier.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"studytube/internal/models"
	"studytube/shared/config"

	"google.golang.org/genai"
)

// ErrMalformedResponse signals that the model returned text that does not
// parse into the expected structure. Callers treat it like any other
// upstream failure.
var ErrMalformedResponse = errors.New("malformed AI response")

const (
	maxPromptVideos      = 20
	maxDescriptionLength = 500
	maxTranscriptLength  = 8000
)

type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(cfg *config.AIConfig) (*Gemini, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("Gemini API key not configured")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model}, nil
}

// CuratedPlan is the plan fragment produced by the model; the planner adds
// mode and topic.
type CuratedPlan struct {
	Modules                   []models.LearningModule `json:"modules"`
	TotalEstimatedTimeMinutes int                     `json:"totalEstimatedTimeMinutes"`
	Tips                      *models.LearningTips    `json:"tips"`
}

const curateSystemPrompt = `You are an expert learning designer. Given a topic and a list of videos (title, description, durationSeconds, channelTitle), create a concise learning plan. Keep to <= 10 items total across modules. Prefer videos with clear titles and reasonable lengths. Output strict JSON with this shape:
{
  "modules": [{"title": string, "estimatedTimeMinutes": number, "items": [{"videoId": string, "title": string, "url": string, "durationMinutes": number}]}],
  "totalEstimatedTimeMinutes": number,
  "tips": {"milestones": [string], "exercises": [string], "cheatSheet": string}
}
No markdown. No commentary.`

// CuratePlan asks the model to structure candidate videos into modules.
func (g *Gemini) CuratePlan(ctx context.Context, topic string, videos []*models.Video) (*CuratedPlan, error) {
	if len(videos) > maxPromptVideos {
		videos = videos[:maxPromptVideos]
	}

	type promptVideo struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		DurationSeconds int    `json:"durationSeconds,omitempty"`
		ChannelTitle    string `json:"channelTitle"`
	}
	input := struct {
		Topic  string        `json:"topic"`
		Videos []promptVideo `json:"videos"`
	}{Topic: topic}
	for _, v := range videos {
		input.Videos = append(input.Videos, promptVideo{
			ID:              v.ID,
			Title:           v.Title,
			Description:     truncateString(v.Description, maxDescriptionLength),
			DurationSeconds: v.DurationSeconds,
			ChannelTitle:    v.ChannelTitle,
		})
	}

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode curation input: %w", err)
	}

	text, err := g.generate(ctx, curateSystemPrompt+"\nINPUT:\n"+string(inputJSON))
	if err != nil {
		return nil, err
	}
	return parseCuratedPlan(text)
}

// parseCuratedPlan is the strict parse-then-validate step over the model's
// curation output. Partial or absent fields are never trusted silently: an
// item without a video id is dropped, a module without usable items fails
// the whole response.
func parseCuratedPlan(text string) (*CuratedPlan, error) {
	var plan CuratedPlan
	if err := unmarshalResponse(text, &plan); err != nil {
		return nil, err
	}
	if len(plan.Modules) == 0 {
		return nil, fmt.Errorf("%w: no modules in curated plan", ErrMalformedResponse)
	}
	for i := range plan.Modules {
		var items []models.LearningItem
		for _, item := range plan.Modules[i].Items {
			if item.VideoID == "" || item.Title == "" {
				continue
			}
			if item.URL == "" {
				item.URL = "https://www.youtube.com/watch?v=" + item.VideoID
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: module %q has no usable items", ErrMalformedResponse, plan.Modules[i].Title)
		}
		plan.Modules[i].Items = items
	}
	return &plan, nil
}

const tipsSystemPrompt = `Generate concise learning tips for a topic. Output strict JSON with keys: milestones (3-5 bullets), exercises (optional, array), cheatSheet (optional, short string). No markdown.`

// LearningTips generates milestone-style tips for a topic.
func (g *Gemini) LearningTips(ctx context.Context, topic string) (*models.LearningTips, error) {
	text, err := g.generate(ctx, tipsSystemPrompt+"\nTOPIC: "+topic)
	if err != nil {
		return nil, err
	}
	return parseTips(text)
}

func parseTips(text string) (*models.LearningTips, error) {
	var tips models.LearningTips
	if err := unmarshalResponse(text, &tips); err != nil {
		return nil, err
	}
	if len(tips.Milestones) == 0 {
		return nil, fmt.Errorf("%w: tips without milestones", ErrMalformedResponse)
	}
	return &tips, nil
}

const tutorSystemPrompt = `You are a concise, helpful tutor. Answer strictly based on the given topic and video context. If something falls outside them, say you don't know. Provide clear, step-by-step guidance when appropriate.`

// Answer responds to a question grounded in the topic and a transcript
// excerpt. The transcript is truncated to keep the prompt bounded.
func (g *Gemini) Answer(ctx context.Context, question, topic, transcript string) (string, error) {
	if topic == "" {
		topic = "(unspecified)"
	}
	videoContext := "(no transcript available)"
	if transcript != "" {
		videoContext = truncateString(transcript, maxTranscriptLength)
	}

	prompt := fmt.Sprintf("%s\n\nTOPIC: %s\nVIDEO CONTEXT:\n%s\nQUESTION: %s",
		tutorSystemPrompt, topic, videoContext, question)

	return g.generate(ctx, prompt)
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// unmarshalResponse extracts the JSON object from a model response and
// decodes it. Models occasionally wrap output in code fences or prose, so
// everything outside the outermost braces is discarded.
func unmarshalResponse(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	jsonStr := text[start : end+1]
	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		log.Printf("Warning: AI returned unparseable JSON: %v", err)
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// truncateString cuts s to at most maxLength bytes without splitting a
// multi-byte rune.
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
