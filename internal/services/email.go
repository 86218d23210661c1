package services

import (
	"context"
	"fmt"
	"log"

	"mergingtonactivities/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the signup confirmation email using the
// "signup_confirmation" template.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("signup confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("signup_confirmation", data)
	if err != nil {
		log.Printf("[EMAIL] Failed to render signup confirmation for %s: %v", data.Email, err)
		return fmt.Errorf("failed to render signup_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("[EMAIL] Failed to send signup confirmation to %s: %v", data.Email, err)
		return fmt.Errorf("failed to send signup confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Signup confirmation sent to %s for %s", data.Email, data.ActivityName)
	return nil
}

// SendUnregisterConfirmation sends the unregister confirmation email using the
// "unregister_confirmation" template.
func (s *emailService) SendUnregisterConfirmation(ctx context.Context, data *domain.UnregisterConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("unregister confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("unregister_confirmation", data)
	if err != nil {
		log.Printf("[EMAIL] Failed to render unregister confirmation for %s: %v", data.Email, err)
		return fmt.Errorf("failed to render unregister_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		log.Printf("[EMAIL] Failed to send unregister confirmation to %s: %v", data.Email, err)
		return fmt.Errorf("failed to send unregister confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Unregister confirmation sent to %s for %s", data.Email, data.ActivityName)
	return nil
}
