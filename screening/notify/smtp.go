package notify

import (
	"context"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender delivers mail over authenticated SMTP with STARTTLS.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(msg) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return ErrSendFailed(err)
		}
		return nil
	}
}
