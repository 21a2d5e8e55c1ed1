// Package server exposes the planner and tutor over HTTP for the web
// front end. Plan generation can fail visibly (400/404/500); question
// answering always returns 200 with an answer body.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"studytube/internal/models"
	"studytube/planner"
	"studytube/shared/monitoring"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Starter topics for the "surprise me" button on the front end.
var randomTopics = []string{
	"Python programming",
	"Introduction to machine learning",
	"Basic guitar chords",
	"Cooking Italian pasta",
	"Digital marketing fundamentals",
	"Public speaking tips",
	"Photography basics",
	"Web accessibility",
	"React hooks overview",
	"Data visualization",
}

type PlanGenerator interface {
	GeneratePlan(ctx context.Context, topic string) (*models.LearningPlan, error)
}

type Answerer interface {
	AnswerQuestion(ctx context.Context, question, topic, videoID string) string
}

type Server struct {
	planner PlanGenerator
	tutor   Answerer
	monitor *monitoring.Monitor
}

func New(planGenerator PlanGenerator, answerer Answerer, monitor *monitoring.Monitor) *Server {
	return &Server{planner: planGenerator, tutor: answerer, monitor: monitor}
}

// Router builds the HTTP handler, CORS included. The allowed origin is the
// front end's host; everything else the browser sends is rejected.
func (s *Server) Router(allowedOrigins string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/learn", s.handleLearn).Methods("POST")
	api.HandleFunc("/ask", s.handleAsk).Methods("POST")
	api.HandleFunc("/random", s.handleRandom).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(allowedOrigins, ",")),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(r)
}

func (s *Server) handleLearn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req struct {
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing or invalid topic")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if len(topic) < 2 {
		writeError(w, http.StatusBadRequest, "Missing or invalid topic")
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), topic)
	if err != nil {
		s.monitor.RecordFailure(err, time.Since(start))
		if errors.Is(err, planner.ErrNoVideos) {
			writeError(w, http.StatusNotFound, "No relevant videos found for this topic. Please try a different search term.")
			return
		}
		log.Printf("Error generating plan for %q: %v", topic, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch videos. Please try again later.")
		return
	}

	s.monitor.RecordSuccess(fmt.Sprintf("plan generated for %q (%s mode)", topic, plan.Mode), time.Since(start))
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req struct {
		Question string `json:"question"`
		Topic    string `json:"topic"`
		VideoID  string `json:"videoId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Chat responses never surface transport-level failures.
		writeJSON(w, http.StatusOK, map[string]string{
			"answer": "Sorry, I ran into an issue answering that question.",
		})
		return
	}

	answer := s.tutor.AnswerQuestion(r.Context(), req.Question, req.Topic, req.VideoID)
	s.monitor.RecordSuccess("question answered", time.Since(start))
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	topic := randomTopics[rand.Intn(len(randomTopics))]
	writeJSON(w, http.StatusOK, map[string]string{"topic": topic})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", s.monitor.GetStatusSummary())
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, "Service unhealthy - %s", s.monitor.GetStatusSummary())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
