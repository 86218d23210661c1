package services

import (
	"context"
	"errors"
	"fmt"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/observability"
)

type rosterService struct {
	repo         domain.ActivityRepository
	emailService domain.EmailService
}

// NewRosterService creates a RosterService over the given store. emailService
// may be nil to disable confirmation emails entirely.
func NewRosterService(repo domain.ActivityRepository, emailService domain.EmailService) domain.RosterService {
	return &rosterService{
		repo:         repo,
		emailService: emailService,
	}
}

func (s *rosterService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *rosterService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		observability.RecordSignup(signupOutcome(err))
		return "", err
	}
	observability.RecordSignup("ok")

	if s.emailService != nil {
		schedule := ""
		if a, err := s.repo.Get(ctx, activityName); err == nil {
			schedule = a.Schedule
		}
		// Best effort: the email service logs failures, the signup stands.
		_ = s.emailService.SendSignupConfirmation(ctx, &domain.SignupConfirmationEmailData{
			Email:        email,
			ActivityName: activityName,
			Schedule:     schedule,
		})
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *rosterService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		observability.RecordUnregister(unregisterOutcome(err))
		return "", err
	}
	observability.RecordUnregister("ok")

	if s.emailService != nil {
		_ = s.emailService.SendUnregisterConfirmation(ctx, &domain.UnregisterConfirmationEmailData{
			Email:        email,
			ActivityName: activityName,
		})
	}

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func signupOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, domain.ErrActivityFull):
		return "full"
	default:
		return "error"
	}
}

func unregisterOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "error"
	}
}
