// Package journal keeps a bounded in-memory log of domain events.
//
// The service holds no state across process lifetimes, so the journal
// plays the role a transactional outbox would in a persistent system:
// every event the store emits is enriched with an ID and timestamp and
// retained for inspection, with the oldest entries evicted once the
// capacity is reached.
package journal

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Event is the minimal surface the journal needs from a domain event.
type Event interface {
	EventType() string
	AggregateID() string
}

// Entry is one recorded event.
type Entry struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	AggregateID string    `json:"aggregate_id"`
	Payload     string    `json:"payload"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Journal is a thread-safe bounded event log.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
	clock   clock.Clock
}

// DefaultCapacity bounds a journal created with a non-positive max.
const DefaultCapacity = 256

// New creates a Journal retaining at most max entries.
func New(max int, clk clock.Clock) *Journal {
	if max <= 0 {
		max = DefaultCapacity
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Journal{
		entries: make([]Entry, 0, max),
		max:     max,
		clock:   clk,
	}
}

// Record appends an event, evicting the oldest entry when full. The
// payload is the event serialized as JSON; serialization failures are
// recorded as an empty payload rather than dropping the entry.
func (j *Journal) Record(event Event) {
	payload := ""
	if data, err := json.Marshal(event); err == nil {
		payload = string(data)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.entries) == j.max {
		j.entries = j.entries[1:]
	}
	j.entries = append(j.entries, Entry{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		RecordedAt:  j.clock.Now(),
	})
}

// Entries returns the retained entries in recording order, optionally
// filtered by event type and capped at limit. A non-positive limit
// returns everything retained.
func (j *Journal) Entries(eventType string, limit int) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, 0, len(j.entries))
	for _, e := range j.entries {
		if eventType != "" && e.EventType != eventType {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Len returns the number of retained entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.entries)
}
