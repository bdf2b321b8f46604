// Package notifications delivers out-of-band messages to users. Delivery is
// best effort: a failed send is logged and must never fail the request that
// triggered it.
package notifications

import (
	"context"

	"inkwell/internal/middleware"
)

// Mailer sends transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, code string) error
}

// LogMailer writes outgoing mail to the structured log instead of an SMTP
// relay. It is the default in development and test environments.
type LogMailer struct {
	From string
}

// NewLogMailer returns a LogMailer sending from the given address.
func NewLogMailer(from string) *LogMailer {
	return &LogMailer{From: from}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, code string) error {
	middleware.Logger.InfoContext(ctx, "password reset mail",
		"from", m.From,
		"to", to,
		"code", code,
	)
	return nil
}
