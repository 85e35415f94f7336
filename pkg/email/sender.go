package email

import "context"

// Message is a single outbound notification email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string // HTML body, already escaped by the caller
}

// Sender delivers messages through an external mail provider. The relay
// treats delivery as fire-and-forget: a nil error means the provider
// accepted the message, not that it reached the inbox.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
