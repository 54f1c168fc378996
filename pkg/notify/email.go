package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/email"
)

// EmailConfig holds SMTP settings for the email channel
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
	StartTLS bool
	Timeout  time.Duration
}

// EmailSender delivers notifications over SMTP
type EmailSender struct {
	sender *email.Sender
	from   string
}

// NewEmailSender creates an SMTP-backed sender
func NewEmailSender(cfg EmailConfig) *EmailSender {
	opts := []email.Option{
		email.Port(cfg.Port),
		email.ContentType("text/plain"),
	}
	if cfg.Username != "" {
		opts = append(opts, email.Auth(cfg.Username, cfg.Password))
	}
	if cfg.TLS {
		opts = append(opts, email.TLS(true))
	}
	if cfg.StartTLS {
		opts = append(opts, email.STARTTLS(true))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, email.TimeOut(cfg.Timeout))
	}

	return &EmailSender{
		sender: email.NewSender(cfg.Host, opts...),
		from:   cfg.From,
	}
}

// Name returns the channel name
func (s *EmailSender) Name() string {
	return "EMAIL"
}

// Send delivers one message to the given address
func (s *EmailSender) Send(_ context.Context, to, subject, body string) error {
	params := email.Params{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
	}
	if err := s.sender.Send(body, params); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
