package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"example.com/signup/internal/events"
)

// Tally is the running count of registration changes for one activity.
type Tally struct {
	Signups     int
	Unregisters int
}

// Net returns signups minus unregistrations.
func (t Tally) Net() int {
	return t.Signups - t.Unregisters
}

// TallyHandler aggregates registration events per activity for audit reporting.
type TallyHandler struct {
	mu      sync.Mutex
	tallies map[string]Tally
}

// NewTallyHandler constructs a TallyHandler.
func NewTallyHandler() *TallyHandler {
	return &TallyHandler{tallies: make(map[string]Tally)}
}

// Handle implements Handler. Unknown event types are an error so the commit is
// skipped and the message surfaces in the handler error counter.
func (h *TallyHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case events.TypeParticipantSignedUp:
		var event events.ParticipantSignedUp
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("decode signed_up payload: %w", err)
		}
		h.apply(event.Activity, 1, 0)
	case events.TypeParticipantUnregistered:
		var event events.ParticipantUnregistered
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("decode unregistered payload: %w", err)
		}
		h.apply(event.Activity, 0, 1)
	default:
		return fmt.Errorf("unknown event_type %q", msg.EventType)
	}
	return nil
}

func (h *TallyHandler) apply(activity string, signups, unregisters int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tally := h.tallies[activity]
	tally.Signups += signups
	tally.Unregisters += unregisters
	h.tallies[activity] = tally
	recordNetRegistrations(activity, tally.Net())
}

// Snapshot returns a copy of the current tallies keyed by activity.
func (h *TallyHandler) Snapshot() map[string]Tally {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]Tally, len(h.tallies))
	for activity, tally := range h.tallies {
		out[activity] = tally
	}
	return out
}

// Summary renders a stable one-line report of all tallies for periodic logging.
func (h *TallyHandler) Summary() string {
	snapshot := h.Snapshot()
	if len(snapshot) == 0 {
		return "no registration events observed"
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	line := ""
	for i, name := range names {
		tally := snapshot[name]
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s: +%d/-%d (net %d)", name, tally.Signups, tally.Unregisters, tally.Net())
	}
	return line
}
