package services

import (
	"context"
	"errors"
	"testing"

	"mergingtonactivities/internal/domain"
)

type mockActivityRepository struct {
	activities map[string]*domain.Activity
	addErr     error
	removeErr  error
	added      []string
	removed    []string
}

func (m *mockActivityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	return m.activities, nil
}

func (m *mockActivityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	a, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return a, nil
}

func (m *mockActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, name+":"+email)
	return nil
}

func (m *mockActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, name+":"+email)
	return nil
}

type mockEmailService struct {
	signups     []*domain.SignupConfirmationEmailData
	unregisters []*domain.UnregisterConfirmationEmailData
	err         error
}

func (m *mockEmailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	m.signups = append(m.signups, data)
	return m.err
}

func (m *mockEmailService) SendUnregisterConfirmation(ctx context.Context, data *domain.UnregisterConfirmationEmailData) error {
	m.unregisters = append(m.unregisters, data)
	return m.err
}

func TestRosterService_Signup(t *testing.T) {
	chess := &domain.Activity{Description: "Chess", Schedule: "Fridays", MaxParticipants: 12}

	tests := []struct {
		name        string
		repo        *mockActivityRepository
		wantErr     error
		wantMessage string
		wantEmails  int
	}{
		{
			name:        "success",
			repo:        &mockActivityRepository{activities: map[string]*domain.Activity{"Chess Club": chess}},
			wantMessage: "Signed up ava@mergington.edu for Chess Club",
			wantEmails:  1,
		},
		{
			name:    "unknown activity",
			repo:    &mockActivityRepository{addErr: domain.ErrActivityNotFound},
			wantErr: domain.ErrActivityNotFound,
		},
		{
			name:    "already signed up",
			repo:    &mockActivityRepository{addErr: domain.ErrAlreadySignedUp},
			wantErr: domain.ErrAlreadySignedUp,
		},
		{
			name:    "activity full",
			repo:    &mockActivityRepository{addErr: domain.ErrActivityFull},
			wantErr: domain.ErrActivityFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emails := &mockEmailService{}
			svc := NewRosterService(tt.repo, emails)

			msg, err := svc.Signup(context.Background(), "Chess Club", "ava@mergington.edu")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if err == nil && msg != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, msg)
			}
			if len(emails.signups) != tt.wantEmails {
				t.Fatalf("expected %d confirmation emails, got %d", tt.wantEmails, len(emails.signups))
			}
		})
	}
}

func TestRosterService_Signup_EmailDataIncludesSchedule(t *testing.T) {
	repo := &mockActivityRepository{
		activities: map[string]*domain.Activity{
			"Chess Club": {Schedule: "Fridays, 3:30 PM - 5:00 PM", MaxParticipants: 12},
		},
	}
	emails := &mockEmailService{}
	svc := NewRosterService(repo, emails)

	if _, err := svc.Signup(context.Background(), "Chess Club", "ava@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails.signups) != 1 {
		t.Fatalf("expected 1 confirmation email, got %d", len(emails.signups))
	}
	data := emails.signups[0]
	if data.ActivityName != "Chess Club" || data.Email != "ava@mergington.edu" {
		t.Fatalf("unexpected email data: %+v", data)
	}
	if data.Schedule != "Fridays, 3:30 PM - 5:00 PM" {
		t.Fatalf("expected schedule in email data, got %q", data.Schedule)
	}
}

func TestRosterService_Signup_EmailFailureDoesNotFailSignup(t *testing.T) {
	repo := &mockActivityRepository{activities: map[string]*domain.Activity{}}
	emails := &mockEmailService{err: errors.New("smtp down")}
	svc := NewRosterService(repo, emails)

	msg, err := svc.Signup(context.Background(), "Chess Club", "ava@mergington.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestRosterService_Signup_NilEmailService(t *testing.T) {
	repo := &mockActivityRepository{activities: map[string]*domain.Activity{}}
	svc := NewRosterService(repo, nil)

	if _, err := svc.Signup(context.Background(), "Chess Club", "ava@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRosterService_Unregister(t *testing.T) {
	tests := []struct {
		name        string
		repo        *mockActivityRepository
		wantErr     error
		wantMessage string
		wantEmails  int
	}{
		{
			name:        "success",
			repo:        &mockActivityRepository{},
			wantMessage: "Unregistered ava@mergington.edu from Chess Club",
			wantEmails:  1,
		},
		{
			name:    "unknown activity",
			repo:    &mockActivityRepository{removeErr: domain.ErrActivityNotFound},
			wantErr: domain.ErrActivityNotFound,
		},
		{
			name:    "not signed up",
			repo:    &mockActivityRepository{removeErr: domain.ErrNotSignedUp},
			wantErr: domain.ErrNotSignedUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emails := &mockEmailService{}
			svc := NewRosterService(tt.repo, emails)

			msg, err := svc.Unregister(context.Background(), "Chess Club", "ava@mergington.edu")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if err == nil && msg != tt.wantMessage {
				t.Fatalf("expected message %q, got %q", tt.wantMessage, msg)
			}
			if len(emails.unregisters) != tt.wantEmails {
				t.Fatalf("expected %d confirmation emails, got %d", tt.wantEmails, len(emails.unregisters))
			}
		})
	}
}

func TestRosterService_ListActivities(t *testing.T) {
	repo := &mockActivityRepository{
		activities: map[string]*domain.Activity{
			"Chess Club":  {MaxParticipants: 12},
			"Debate Club": {MaxParticipants: 16},
		},
	}
	svc := NewRosterService(repo, nil)

	got, err := svc.ListActivities(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
}
