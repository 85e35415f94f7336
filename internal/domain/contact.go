package domain

import (
	"context"
	"strings"
)

// ContactSubmission represents a contact form submission. It is transient:
// validated, forwarded to the mail transport and discarded, never persisted.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Normalized returns a copy with surrounding whitespace removed and the
// email address lowercased. Validation and sending operate on this form,
// so a whitespace-only field fails the required rule. The name also has
// interior whitespace collapsed: it ends up in the mail Subject header,
// and an embedded CRLF would otherwise split the header block.
func (s ContactSubmission) Normalized() ContactSubmission {
	return ContactSubmission{
		Name:    strings.Join(strings.Fields(s.Name), " "),
		Email:   strings.ToLower(strings.TrimSpace(s.Email)),
		Message: strings.TrimSpace(s.Message),
	}
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message to the
	// site owner's mailbox. Validation failures are returned as
	// validation.Errors and cause no side effects.
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
}
