package domain

import (
	"context"
	"errors"
)

// Sentinel errors for roster operations. Controllers translate these to
// status codes; nothing below the delivery layer knows about HTTP.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
	ErrActivityFull     = errors.New("activity is full")
)

// Activity is one extracurricular offering. The activity name is the map key
// in the store and on the wire, so it is not part of the record itself.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with its own copy of participants, so the
// caller's slice can be reused freely.
func NewActivity(description, schedule string, maxParticipants int, participants []string) *Activity {
	return &Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    append([]string{}, participants...),
	}
}

// IsSignedUp reports whether email is on the activity's roster.
func (a *Activity) IsSignedUp(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SpotsLeft returns the remaining capacity. It can be negative when the store
// runs in permissive mode and an activity was overfilled.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// ActivityRepository defines storage operations for activity rosters.
// AddParticipant and RemoveParticipant are atomic with respect to a single
// activity's participant list.
type ActivityRepository interface {
	// List returns every activity keyed by name. Never fails.
	List(ctx context.Context) (map[string]*Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	// AddParticipant appends email to the named activity's roster, preserving
	// signup order. Returns ErrActivityNotFound, ErrAlreadySignedUp, or
	// ErrActivityFull (capacity enforcement only).
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the named activity's roster,
	// keeping the order of the remaining members. Returns ErrActivityNotFound
	// or ErrNotSignedUp.
	RemoveParticipant(ctx context.Context, name, email string) error
}

// RosterService defines the student-facing signup operations.
type RosterService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	// Signup registers email for the named activity and returns a
	// confirmation message referencing both.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister removes email from the named activity and returns a
	// confirmation message referencing both.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
