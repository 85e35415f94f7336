package email

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIME(t *testing.T) {
	msg := Message{
		From:    "owner@example.com",
		To:      "owner@example.com",
		ReplyTo: "alice@example.com",
		Subject: "Portfolio Contact - Alice",
		HTML:    "<p>hi</p>",
	}

	raw := string(buildMIME(msg))

	assert.Contains(t, raw, "From: owner@example.com\r\n")
	assert.Contains(t, raw, "To: owner@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: alice@example.com\r\n")
	assert.Contains(t, raw, "Subject: Portfolio Contact - Alice\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")

	// Headers and body are separated by exactly one blank line
	parts := strings.SplitN(raw, "\r\n\r\n", 2)
	assert.Len(t, parts, 2)
	assert.Equal(t, "<p>hi</p>", parts[1])
}

func TestBuildMIMEStripsHeaderNewlines(t *testing.T) {
	msg := Message{
		From:    "owner@example.com",
		To:      "owner@example.com",
		ReplyTo: "alice@example.com\r\nX-Injected: 1",
		Subject: "Portfolio Contact - AB\r\nBcc: evil@attacker.example",
		HTML:    "<p>hi</p>",
	}

	raw := string(buildMIME(msg))
	headers := strings.SplitN(raw, "\r\n\r\n", 2)[0]

	assert.NotContains(t, headers, "Bcc:")
	assert.NotContains(t, headers, "X-Injected:")
	assert.Contains(t, headers, "Subject: Portfolio Contact - ABBcc: evil@attacker.example")

	// Exactly the six fixed headers, nothing smuggled in
	assert.Len(t, strings.Split(headers, "\r\n"), 6)
}

func TestNoopSender(t *testing.T) {
	s := NewNoopSender()
	err := s.Send(context.Background(), Message{To: "owner@example.com", Subject: "x"})
	assert.NoError(t, err)
}
