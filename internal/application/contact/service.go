// Package contact forwards public contact-form submissions to the site
// owner's inbox.
package contact

import (
	"context"
	"fmt"
	"strings"

	apperrors "vitalis/internal/shared/errors"
	"vitalis/internal/shared/logger"
)

// Mailer abstracts the SMTP client.
type Mailer interface {
	Send(to, subject, body string) error
}

type Input struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type Service struct {
	mailer  Mailer
	inbox   string
	logger  logger.Interface
	enabled bool
}

func NewService(mailer Mailer, inbox string) *Service {
	return &Service{
		mailer:  mailer,
		inbox:   inbox,
		logger:  logger.NewLogger().With("component", "contact.service"),
		enabled: mailer != nil && inbox != "",
	}
}

// Submit relays the message. The sender address goes into the body, not
// the envelope, so a forged reply-to cannot spoof delivery.
func (s *Service) Submit(_ context.Context, input Input) error {
	if !s.enabled {
		s.logger.Warnw("contact form submitted but mailer is not configured")
		return apperrors.NewInternalError("contact form is not available")
	}

	subject := fmt.Sprintf("[contact] %s", input.Subject)
	body := strings.Join([]string{
		"From: " + input.Name + " <" + input.Email + ">",
		"",
		input.Message,
	}, "\n")

	if err := s.mailer.Send(s.inbox, subject, body); err != nil {
		s.logger.Errorw("failed to relay contact message", "error", err)
		return apperrors.NewInternalError("failed to send message")
	}

	s.logger.Infow("contact message relayed", "from", input.Email)
	return nil
}
