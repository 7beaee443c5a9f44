// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"strings"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotRegistered indicates the email is not on the activity roster.
	ErrNotRegistered = errors.New("student not registered")
)

// Directory captures the activity store operations.
type Directory interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// EventRecorder receives registration changes for asynchronous delivery.
type EventRecorder interface {
	RecordSignup(activity, email string, rosterSize int)
	RecordUnregister(activity, email string, rosterSize int)
}

// NopRecorder discards registration events. Used when publishing is disabled.
type NopRecorder struct{}

func (NopRecorder) RecordSignup(string, string, int)     {}
func (NopRecorder) RecordUnregister(string, string, int) {}

// Service orchestrates signup workflows over the activity directory.
type Service struct {
	directory Directory
	recorder  EventRecorder
}

// NewService constructs a Service.
func NewService(directory Directory, recorder EventRecorder) *Service {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Service{directory: directory, recorder: recorder}
}

// ListActivities returns a snapshot of every activity.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.directory.List(ctx)
}

// Signup appends email to the activity roster.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	email = strings.TrimSpace(email)

	activity, err := s.directory.AddParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	observability.RecordSignup(activity.Name, activity.RosterSize())
	s.recorder.RecordSignup(activity.Name, email, activity.RosterSize())
	return activity, nil
}

// Unregister removes email from the activity roster.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	email = strings.TrimSpace(email)

	activity, err := s.directory.RemoveParticipant(ctx, name, email)
	if err != nil {
		return nil, err
	}

	observability.RecordUnregister(activity.Name, activity.RosterSize())
	s.recorder.RecordUnregister(activity.Name, email, activity.RosterSize())
	return activity, nil
}
