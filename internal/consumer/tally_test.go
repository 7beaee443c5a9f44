package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/events"
)

func signedUpMessage(t *testing.T, activity, email string) Message {
	t.Helper()
	payload, err := json.Marshal(events.ParticipantSignedUp{
		EventID:    "evt-1",
		Activity:   activity,
		Email:      email,
		RosterSize: 1,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return Message{
		Topic:     events.Topic,
		EventType: events.TypeParticipantSignedUp,
		Activity:  activity,
		Payload:   payload,
	}
}

func unregisteredMessage(t *testing.T, activity, email string) Message {
	t.Helper()
	payload, err := json.Marshal(events.ParticipantUnregistered{
		EventID:    "evt-2",
		Activity:   activity,
		Email:      email,
		RosterSize: 0,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return Message{
		Topic:     events.Topic,
		EventType: events.TypeParticipantUnregistered,
		Activity:  activity,
		Payload:   payload,
	}
}

func TestTallyHandlerCountsEvents(t *testing.T) {
	handler := NewTallyHandler()
	ctx := context.Background()

	require.NoError(t, handler.Handle(ctx, signedUpMessage(t, "Chess Club", "a@mergington.edu")))
	require.NoError(t, handler.Handle(ctx, signedUpMessage(t, "Chess Club", "b@mergington.edu")))
	require.NoError(t, handler.Handle(ctx, unregisteredMessage(t, "Chess Club", "a@mergington.edu")))
	require.NoError(t, handler.Handle(ctx, signedUpMessage(t, "Drama Club", "c@mergington.edu")))

	snapshot := handler.Snapshot()
	require.Equal(t, Tally{Signups: 2, Unregisters: 1}, snapshot["Chess Club"])
	require.Equal(t, 1, snapshot["Chess Club"].Net())
	require.Equal(t, Tally{Signups: 1}, snapshot["Drama Club"])
}

func TestTallyHandlerRejectsUnknownEventType(t *testing.T) {
	handler := NewTallyHandler()

	err := handler.Handle(context.Background(), Message{
		EventType: "registration.renamed",
		Payload:   json.RawMessage(`{}`),
	})
	require.Error(t, err)
	require.Empty(t, handler.Snapshot())
}

func TestTallyHandlerRejectsBadPayload(t *testing.T) {
	handler := NewTallyHandler()

	err := handler.Handle(context.Background(), Message{
		EventType: events.TypeParticipantSignedUp,
		Payload:   json.RawMessage(`[1,2,3]`),
	})
	require.Error(t, err)
}

func TestTallySummary(t *testing.T) {
	handler := NewTallyHandler()
	require.Equal(t, "no registration events observed", handler.Summary())

	ctx := context.Background()
	require.NoError(t, handler.Handle(ctx, signedUpMessage(t, "Chess Club", "a@mergington.edu")))
	require.NoError(t, handler.Handle(ctx, unregisteredMessage(t, "Art Club", "b@mergington.edu")))

	require.Equal(t, "Art Club: +0/-1 (net -1), Chess Club: +1/-0 (net 1)", handler.Summary())
}
