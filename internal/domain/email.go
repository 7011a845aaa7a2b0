package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the event invitation email.
type InvitationEmailData struct {
	Email     string
	EventName string
}

// InvitationResult is the per-address outcome of a batch invitation send.
type InvitationResult struct {
	Email string `json:"email"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// EmailService defines the contract for sending domain-level emails.
// SendInvitations attempts one send per address and never aborts the batch
// on a single failure; it returns one result per input address, in order.
type EmailService interface {
	SendInvitations(ctx context.Context, eventName string, addresses []string) ([]*InvitationResult, error)
}
