// Package planner turns a free-text topic into a LearningPlan via a
// degradation ladder: an existing playlist is preferred, then an
// AI-curated selection of videos, then a deterministic minimal plan.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"

	"studytube/internal/models"
	"studytube/shared/ai"
)

// ErrNoVideos is the terminal "no content found" condition: video search
// succeeded but nothing survived filtering.
var ErrNoVideos = errors.New("no relevant videos found for topic")

const (
	maxModules          = 3
	fallbackItemCount   = 3
	fallbackPlanMinutes = 30
)

// Catalog is the slice of the video catalog the planner needs.
type Catalog interface {
	SearchPlaylists(ctx context.Context, topic string) ([]*models.Playlist, error)
	SearchVideos(ctx context.Context, topic string) ([]*models.Video, error)
}

// Curator is the generative side of plan building. A nil Curator means the
// AI service is not configured and only deterministic tiers run.
type Curator interface {
	CuratePlan(ctx context.Context, topic string, videos []*models.Video) (*ai.CuratedPlan, error)
	LearningTips(ctx context.Context, topic string) (*models.LearningTips, error)
}

type Planner struct {
	catalog Catalog
	curator Curator
}

func New(catalog Catalog, curator Curator) *Planner {
	return &Planner{catalog: catalog, curator: curator}
}

// GeneratePlan runs the fallback ladder for a topic. Only two conditions
// are terminal: a failed video search and an empty filtered result; every
// other failure drops to the next rung.
func (p *Planner) GeneratePlan(ctx context.Context, topic string) (*models.LearningPlan, error) {
	// Rung 1: an existing playlist beats anything we could assemble.
	playlists, err := p.catalog.SearchPlaylists(ctx, topic)
	if err != nil {
		log.Printf("Error searching playlists for %q: %v", topic, err)
	}
	if len(playlists) > 0 {
		return p.playlistPlan(ctx, topic, playlists[0]), nil
	}

	// Rung 2: curate from top videos. Failure here is unrecoverable:
	// there is nothing left to build a plan from.
	videos, err := p.catalog.SearchVideos(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}
	if len(videos) == 0 {
		return nil, ErrNoVideos
	}

	return p.curatedPlan(ctx, topic, videos), nil
}

func (p *Planner) playlistPlan(ctx context.Context, topic string, playlist *models.Playlist) *models.LearningPlan {
	tips := defaultTips()
	if p.curator != nil {
		generated, err := p.curator.LearningTips(ctx, topic)
		if err != nil {
			log.Printf("Error generating tips for %q: %v", topic, err)
		} else {
			tips = generated
		}
	}

	return &models.LearningPlan{
		Topic:                topic,
		Mode:                 models.ModePlaylist,
		PlaylistID:           playlist.ID,
		PlaylistTitle:        playlist.Title,
		PlaylistChannelTitle: playlist.ChannelTitle,
		Tips:                 tips,
	}
}

func (p *Planner) curatedPlan(ctx context.Context, topic string, videos []*models.Video) *models.LearningPlan {
	var curated *ai.CuratedPlan
	if p.curator != nil {
		generated, err := p.curator.CuratePlan(ctx, topic, videos)
		if err != nil {
			log.Printf("Error generating curated plan for %q: %v", topic, err)
		} else {
			curated = generated
		}
	}
	if curated == nil {
		curated = fallbackPlan(videos)
	}

	modules := curated.Modules
	if len(modules) > maxModules {
		modules = modules[:maxModules]
	}

	return &models.LearningPlan{
		Topic:                     topic,
		Mode:                      models.ModeCurated,
		Modules:                   modules,
		TotalEstimatedTimeMinutes: curated.TotalEstimatedTimeMinutes,
		Tips:                      curated.Tips,
	}
}

// fallbackPlan builds the deterministic single-module plan used when the
// generative service is unavailable or returned garbage.
func fallbackPlan(videos []*models.Video) *ai.CuratedPlan {
	count := fallbackItemCount
	if len(videos) < count {
		count = len(videos)
	}

	items := make([]models.LearningItem, 0, count)
	for _, video := range videos[:count] {
		items = append(items, models.LearningItem{
			VideoID:         video.ID,
			Title:           video.Title,
			URL:             video.URL(),
			DurationMinutes: roundToMinutes(video.DurationSeconds),
		})
	}

	return &ai.CuratedPlan{
		Modules: []models.LearningModule{{
			Title:                "Getting Started",
			EstimatedTimeMinutes: fallbackPlanMinutes,
			Items:                items,
		}},
		TotalEstimatedTimeMinutes: fallbackPlanMinutes,
		Tips:                      defaultTips(),
	}
}

func defaultTips() *models.LearningTips {
	return &models.LearningTips{
		Milestones: []string{"Start with fundamentals", "Practice regularly", "Review and iterate"},
	}
}

func roundToMinutes(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 30) / 60
}
