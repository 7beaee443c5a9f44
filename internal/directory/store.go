// Package directory implements the in-memory activity store.
package directory

import (
	"context"
	"sort"
	"sync"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// Store holds the activity directory in memory behind a single RWMutex.
// Activities live for the process lifetime; only rosters mutate.
type Store struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewStore constructs a Store populated with the seed catalog.
func NewStore() *Store {
	store := &Store{activities: make(map[string]domain.Activity)}
	store.seed()
	return store
}

// NewStoreWithActivities constructs a Store from an explicit catalog. Used by tests.
func NewStoreWithActivities(activities []domain.Activity) *Store {
	store := &Store{activities: make(map[string]domain.Activity, len(activities))}
	for _, activity := range activities {
		store.activities[activity.Name] = cloneActivity(activity)
	}
	return store
}

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, activity := range seedActivities() {
		s.activities[activity.Name] = activity
		observability.SetRosterSize(activity.Name, activity.RosterSize())
	}
}

// List returns a snapshot of every activity sorted by name.
func (s *Store) List(ctx context.Context) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		out = append(out, cloneActivity(activity))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns the named activity or nil when absent.
func (s *Store) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, nil
	}
	clone := cloneActivity(activity)
	return &clone, nil
}

// AddParticipant appends email to the roster, preserving signup order.
// max_participants is advisory and deliberately not checked.
func (s *Store) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}

	activity.Participants = append(append([]string(nil), activity.Participants...), email)
	s.activities[name] = activity

	clone := cloneActivity(activity)
	return &clone, nil
}

// RemoveParticipant removes email from the roster.
func (s *Store) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return nil, domain.ErrNotRegistered
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	for _, participant := range activity.Participants {
		if participant != email {
			participants = append(participants, participant)
		}
	}
	activity.Participants = participants
	s.activities[name] = activity

	clone := cloneActivity(activity)
	return &clone, nil
}

func cloneActivity(activity domain.Activity) domain.Activity {
	activity.Participants = append([]string(nil), activity.Participants...)
	return activity
}
