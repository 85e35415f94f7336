package email

import (
	"context"
	"log/slog"
)

// NoopSender is a no-op sender for development. It logs sends but does
// not deliver anything.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message but does not deliver it.
func (s *NoopSender) Send(_ context.Context, msg Message) error {
	slog.Info("noop_email_send", "to", msg.To, "reply_to", msg.ReplyTo, "subject", msg.Subject)
	return nil
}
