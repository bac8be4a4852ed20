package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail. Delivery is best effort: callers
// surface a failure to the user but never retry.
type Mailer interface {
	SendResetCode(ctx context.Context, to, code string) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP creates a mailer for the given relay.
func NewSMTP(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// SendResetCode emails a password reset code to the given address.
func (m *SMTPMailer) SendResetCode(_ context.Context, to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Sports Hub password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires in 10 minutes. If you did not request a reset, ignore this email.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}
