package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestTranscriptClient(srv *httptest.Server) *TranscriptClient {
	return &TranscriptClient{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
}

func TestTranscriptFetchLanguageFallback(t *testing.T) {
	var requestedLangs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")
		requestedLangs = append(requestedLangs, lang)
		if lang != "en-GB" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`<?xml version="1.0"?><transcript><text start="0" dur="2">hello there</text><text start="2" dur="2">general lesson</text></transcript>`))
	}))
	defer srv.Close()

	text := newTestTranscriptClient(srv).Fetch(context.Background(), "abc123")
	if text != "hello there general lesson" {
		t.Errorf("Fetch() = %q, want joined transcript text", text)
	}

	// First success wins: no language after en-GB should have been tried.
	want := []string{"en", "en-US", "en-GB"}
	if len(requestedLangs) != len(want) {
		t.Fatalf("Requested languages %v, want %v", requestedLangs, want)
	}
	for i, lang := range want {
		if requestedLangs[i] != lang {
			t.Errorf("Request %d used lang %q, want %q", i, requestedLangs[i], lang)
		}
	}
}

func TestTranscriptFetchUnhintedFinalAttempt(t *testing.T) {
	var sawUnhinted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lang") == "" {
			sawUnhinted = true
			w.Write([]byte(`<transcript><text>fallback track</text></transcript>`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	text := newTestTranscriptClient(srv).Fetch(context.Background(), "abc123")
	if text != "fallback track" {
		t.Errorf("Fetch() = %q, want %q", text, "fallback track")
	}
	if !sawUnhinted {
		t.Error("Expected a final unhinted attempt")
	}
}

func TestTranscriptFetchDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if text := newTestTranscriptClient(srv).Fetch(context.Background(), "abc123"); text != "" {
		t.Errorf("Fetch() = %q, want empty string when no transcript exists", text)
	}
}

func TestTranscriptFetchUnescapesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript><text>it&amp;#39;s a test</text></transcript>`))
	}))
	defer srv.Close()

	text := newTestTranscriptClient(srv).Fetch(context.Background(), "abc123")
	if text != "it's a test" {
		t.Errorf("Fetch() = %q, want unescaped text", text)
	}
}

func TestTranscriptFetchEmptyVideoID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should be made for an empty video id")
	}))
	defer srv.Close()

	if text := newTestTranscriptClient(srv).Fetch(context.Background(), ""); text != "" {
		t.Errorf("Fetch(\"\") = %q, want empty string", text)
	}
}
