package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hashirsyed/portfolio-api/internal/domain"
	"github.com/hashirsyed/portfolio-api/pkg/email"
	"github.com/hashirsyed/portfolio-api/pkg/validation"
)

type contactUsecase struct {
	sender      email.Sender
	validate    *validator.Validate
	ownerEmail  string
	sendTimeout time.Duration
}

// NewContactUsecase creates a new contact usecase. The sender is an
// explicit dependency so tests can substitute a double.
func NewContactUsecase(sender email.Sender, validate *validator.Validate, ownerEmail string, sendTimeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		sender:      sender,
		validate:    validate,
		ownerEmail:  ownerEmail,
		sendTimeout: sendTimeout,
	}
}

// contactEmailTemplate is the HTML template for contact notifications.
// html/template escapes all three fields, so submitted markup arrives as
// text in the owner's inbox.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2196F3; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #2196F3; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from your portfolio contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// SendContactMessage validates the submission and relays it to the owner's
// mailbox. Validation runs before any side effect: a rejected submission
// never reaches the mail transport.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	sub := req.Normalized()

	if err := uc.validate.Struct(sub); err != nil {
		return validation.FormatValidationErrors(err)
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, sub); err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	msg := email.Message{
		From:    uc.ownerEmail,
		To:      uc.ownerEmail,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("Portfolio Contact - %s", sub.Name),
		HTML:    body.String(),
	}

	// Bound the outbound call so a hung transport cannot stall the request
	ctx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
