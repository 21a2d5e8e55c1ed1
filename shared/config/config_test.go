package config

import "testing"

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")
	t.Setenv("YT_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("APIKey = %q", cfg.YouTube.APIKey)
	}
	if cfg.AI.GeminiAPIKey != "gm-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.AI.GeminiAPIKey)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("Model default = %q", cfg.AI.Model)
	}
	if cfg.Server.AllowedOrigins != "http://localhost:3000" {
		t.Errorf("AllowedOrigins default = %q", cfg.Server.AllowedOrigins)
	}
}

func TestLoadRequiresYouTubeKey(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")
	t.Setenv("YT_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error without YT_API_KEY")
	}
}

func TestLoadGeminiKeyOptional(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")
	t.Setenv("YT_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, Gemini key must be optional", err)
	}
	if cfg.AI.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.AI.GeminiAPIKey)
	}
}
