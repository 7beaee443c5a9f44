// Package publisher buffers registration events and delivers them to Kafka.
package publisher

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/signup/internal/events"
)

// Envelope is a registration event staged for delivery.
type Envelope struct {
	EventID      string
	EventType    string
	Activity     string
	PartitionKey string
	Payload      json.RawMessage
	Attempts     int
}

// Queue is the in-memory staging buffer between the domain service and the
// dispatcher. Enqueueing never blocks the request path; when the buffer is
// full the event is dropped and counted.
type Queue struct {
	mu       sync.Mutex
	entries  []Envelope
	capacity int
	logger   *log.Logger
}

// NewQueue constructs a Queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Queue{
		capacity: capacity,
		logger:   log.New(log.Writer(), "[publisher] ", log.LstdFlags),
	}
}

// RecordSignup implements domain.EventRecorder.
func (q *Queue) RecordSignup(activity, email string, rosterSize int) {
	q.record(events.TypeParticipantSignedUp, events.ParticipantSignedUp{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		RosterSize: rosterSize,
		OccurredAt: time.Now().UTC(),
	}, activity)
}

// RecordUnregister implements domain.EventRecorder.
func (q *Queue) RecordUnregister(activity, email string, rosterSize int) {
	q.record(events.TypeParticipantUnregistered, events.ParticipantUnregistered{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		RosterSize: rosterSize,
		OccurredAt: time.Now().UTC(),
	}, activity)
}

func (q *Queue) record(eventType string, payload interface{}, activity string) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		q.logger.Printf("marshal error (event_type=%s): %v", eventType, err)
		return
	}

	q.enqueue(Envelope{
		EventType:    eventType,
		Activity:     activity,
		PartitionKey: activity,
		Payload:      encoded,
	})
}

func (q *Queue) enqueue(env Envelope) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) >= q.capacity {
		droppedCounter.WithLabelValues("queue_full").Inc()
		q.logger.Printf("queue full, dropping event (event_type=%s, activity=%s)", env.EventType, env.Activity)
		return
	}
	q.entries = append(q.entries, env)
	queueDepthGauge.Set(float64(len(q.entries)))
}

// Dequeue removes and returns up to limit staged events in FIFO order.
func (q *Queue) Dequeue(limit int) []Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) == 0 {
		return nil
	}
	if limit <= 0 || limit > len(q.entries) {
		limit = len(q.entries)
	}

	batch := make([]Envelope, limit)
	copy(batch, q.entries[:limit])
	q.entries = append(q.entries[:0], q.entries[limit:]...)
	queueDepthGauge.Set(float64(len(q.entries)))
	return batch
}

// Requeue puts failed events back at the front of the buffer for another attempt.
func (q *Queue) Requeue(envs []Envelope) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(append([]Envelope(nil), envs...), q.entries...)
	if len(q.entries) > q.capacity {
		overflow := len(q.entries) - q.capacity
		droppedCounter.WithLabelValues("queue_full").Add(float64(overflow))
		q.entries = q.entries[:q.capacity]
	}
	queueDepthGauge.Set(float64(len(q.entries)))
}

// Depth returns the current number of staged events.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
