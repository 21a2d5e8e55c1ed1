package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studytube/planner"
	"studytube/server"
	"studytube/shared/ai"
	"studytube/shared/config"
	"studytube/shared/monitoring"
	"studytube/tutor"
	"studytube/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	catalog, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}
	log.Println("YouTube client initialized")

	transcripts := youtube.NewTranscriptClient()

	// The Gemini key is optional; without it the planner and tutor run on
	// their deterministic fallback tiers only.
	var curator planner.Curator
	var generator tutor.Generator
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(&cfg.AI)
		if err != nil {
			log.Printf("Warning: failed to create Gemini client, generative tiers disabled: %v", err)
		} else {
			curator = gemini
			generator = gemini
			log.Println("Gemini client initialized")
		}
	} else {
		log.Println("GEMINI_API_KEY not set, generative tiers disabled")
	}

	monitor := monitoring.NewMonitor()
	srv := server.New(
		planner.New(catalog, curator),
		tutor.New(transcripts, catalog, generator),
		monitor,
	)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv.Router(cfg.Server.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("StudyTube server running on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, draining requests...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped cleanly")
}
