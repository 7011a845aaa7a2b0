package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventregistry/internal/domain"
)

type emailService struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	invitationRepo domain.EventInvitationRepository
}

// NewEmailService returns an EmailService that renders with the given
// template renderer, delivers through the given Mailer, and records
// delivered invitations in the invitation repository.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, invitationRepo domain.EventInvitationRepository) domain.EmailService {
	return &emailService{
		mailer:         mailer,
		renderer:       renderer,
		invitationRepo: invitationRepo,
	}
}

// SendInvitations sends the invitation email to each address. Every address
// is an independent unit of work: a failed send is recorded in that
// address's result and the remaining sends still run. The returned slice has
// one entry per input address, in input order. ErrRelayUnavailable is
// returned when the batch is non-empty and no send succeeded.
func (s *emailService) SendInvitations(ctx context.Context, eventName string, addresses []string) ([]*domain.InvitationResult, error) {
	results := make([]*domain.InvitationResult, 0, len(addresses))
	failed := 0

	for _, addr := range addresses {
		data := &domain.InvitationEmailData{Email: addr, EventName: eventName}
		subject, htmlBody, textBody, err := s.renderer.Render("invitation", data)
		if err != nil {
			// A broken template fails every address the same way; bail out.
			return nil, fmt.Errorf("failed to render invitation template: %w", err)
		}

		if err := s.mailer.Send(addr, subject, htmlBody, textBody); err != nil {
			log.Printf("[EMAIL] Invitation to %s failed: %v", addr, err)
			results = append(results, &domain.InvitationResult{Email: addr, Error: err.Error()})
			failed++
			continue
		}

		inv := &domain.EventInvitation{
			EventName: eventName,
			Email:     addr,
			SentAt:    time.Now().UTC(),
		}
		// The audit row is best-effort; a logging failure does not undo the send.
		if err := s.invitationRepo.Create(ctx, inv); err != nil {
			log.Printf("[EMAIL] Failed to record invitation for %s: %v", addr, err)
		}

		results = append(results, &domain.InvitationResult{Email: addr, Sent: true})
	}

	if len(addresses) > 0 && failed == len(addresses) {
		return results, domain.ErrRelayUnavailable
	}
	return results, nil
}
