// Package memory holds the in-memory activity roster store. The activity set
// is fixed at construction; participant lists are the only mutable state and
// live for exactly as long as the process.
package memory

import (
	"context"
	"sync"

	"mergingtonactivities/internal/domain"
)

// ActivityStore implements domain.ActivityRepository over a map guarded by a
// single RWMutex. The mux dispatches requests on separate goroutines, so each
// read-modify-write must run under the lock.
type ActivityStore struct {
	mu              sync.RWMutex
	activities      map[string]*domain.Activity
	enforceCapacity bool
}

// NewActivityStore builds a store from seeded activities. When
// enforceCapacity is true, AddParticipant rejects signups to a full activity;
// otherwise max_participants is advisory, matching the original deployment.
func NewActivityStore(activities map[string]*domain.Activity, enforceCapacity bool) *ActivityStore {
	copied := make(map[string]*domain.Activity, len(activities))
	for name, a := range activities {
		copied[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return &ActivityStore{
		activities:      copied,
		enforceCapacity: enforceCapacity,
	}
}

// List returns a deep copy of every activity keyed by name, so callers can
// never alias the slices a concurrent signup is appending to.
func (s *ActivityStore) List(ctx context.Context) (map[string]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return out, nil
}

// Get returns a deep copy of the named activity.
func (s *ActivityStore) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants), nil
}

func (s *ActivityStore) AddParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.IsSignedUp(email) {
		return domain.ErrAlreadySignedUp
	}
	if s.enforceCapacity && a.SpotsLeft() <= 0 {
		return domain.ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (s *ActivityStore) RemoveParticipant(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotSignedUp
}
