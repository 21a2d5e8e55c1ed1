package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks the outcome of the most recent plan and answer requests.
// Unlike a scheduled job there are many concurrent requests, so access is
// guarded by a mutex.
type Monitor struct {
	mu             sync.Mutex
	lastRequestOK  bool
	lastRequestAt  time.Time
	requestsServed int
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRequestOK = true
	m.lastRequestAt = time.Now()
	m.requestsServed++

	log.Printf("Request completed - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRequestOK = false
	m.lastRequestAt = time.Now()
	m.requestsServed++

	log.Printf("Request failed: %s (took %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastRequestAt.IsZero() {
		return true // No requests yet, assume healthy
	}
	return m.lastRequestOK
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastRequestAt.IsZero() {
		return "No requests yet"
	}
	state := "ok"
	if !m.lastRequestOK {
		state = "failed"
	}
	return fmt.Sprintf("%d requests served, last %s at %s", m.requestsServed, state, m.lastRequestAt.Format("Jan 2 15:04"))
}
