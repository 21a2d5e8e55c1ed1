package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studytube/internal/models"
	"studytube/planner"
	"studytube/shared/monitoring"
)

type fakePlanner struct {
	plan *models.LearningPlan
	err  error
}

func (f *fakePlanner) GeneratePlan(ctx context.Context, topic string) (*models.LearningPlan, error) {
	return f.plan, f.err
}

type fakeTutor struct {
	answer string
}

func (f *fakeTutor) AnswerQuestion(ctx context.Context, question, topic, videoID string) string {
	return f.answer
}

func newTestServer(p PlanGenerator, a Answerer) http.Handler {
	return New(p, a, monitoring.NewMonitor()).Router("http://localhost:3000")
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLearnReturnsPlan(t *testing.T) {
	plan := &models.LearningPlan{Topic: "Go basics", Mode: models.ModeCurated}
	handler := newTestServer(&fakePlanner{plan: plan}, &fakeTutor{})

	rec := postJSON(t, handler, "/api/learn", `{"topic": "Go basics"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}

	var got models.LearningPlan
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.Mode != models.ModeCurated || got.Topic != "Go basics" {
		t.Errorf("Plan = %+v", got)
	}
}

func TestLearnRejectsShortTopic(t *testing.T) {
	handler := newTestServer(&fakePlanner{}, &fakeTutor{})

	for _, body := range []string{`{}`, `{"topic": ""}`, `{"topic": " x "}`, `not json`} {
		rec := postJSON(t, handler, "/api/learn", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestLearnMapsNoVideosTo404(t *testing.T) {
	handler := newTestServer(&fakePlanner{err: planner.ErrNoVideos}, &fakeTutor{})

	rec := postJSON(t, handler, "/api/learn", `{"topic": "obscurissimum"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
}

func TestLearnMapsOtherErrorsTo500(t *testing.T) {
	handler := newTestServer(&fakePlanner{err: errors.New("catalog exploded")}, &fakeTutor{})

	rec := postJSON(t, handler, "/api/learn", `{"topic": "Go basics"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "exploded") {
		t.Error("Internal error details must not leak to the client")
	}
}

func TestAskAlwaysReturns200(t *testing.T) {
	handler := newTestServer(&fakePlanner{}, &fakeTutor{answer: "here is an answer"})

	for _, body := range []string{
		`{"question": "what is a slice?", "topic": "Go basics", "videoId": "v1"}`,
		`{"question": ""}`,
		`not json at all`,
	} {
		rec := postJSON(t, handler, "/api/ask", body)
		if rec.Code != http.StatusOK {
			t.Errorf("Body %q: status = %d, want 200", body, rec.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp["answer"] == "" {
			t.Errorf("Body %q: empty answer", body)
		}
	}
}

func TestRandomTopic(t *testing.T) {
	handler := newTestServer(&fakePlanner{}, &fakeTutor{})

	req := httptest.NewRequest("GET", "/api/random", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	found := false
	for _, topic := range randomTopics {
		if resp["topic"] == topic {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Topic %q is not in the fixed list", resp["topic"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer(&fakePlanner{}, &fakeTutor{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want 200 before any requests", rec.Code)
	}
}
