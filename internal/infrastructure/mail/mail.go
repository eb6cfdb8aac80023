package mail

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
	gomail "gopkg.in/gomail.v2"

	"securenest/internal/app/server/config"
)

// dialer is the slice of gomail this package needs, injectable in tests.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Sender delivers OTP mail over SMTP.
type Sender struct {
	dialer dialer
	from   string
	log    *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
		log:    log.With(slog.String("component", "mail_sender")),
	}
}

// SendOTP mails the code to email. kind selects the wording for a first
// issue versus a resend; the subject stays the same for both.
func (s *Sender) SendOTP(ctx context.Context, email, code, kind string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your OTP Code")
	m.SetBody("text/html", GenerateOTPEmail(code, kind))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("failed to send otp mail", "email", email, "error", err)
		return fmt.Errorf("send otp mail: %w", err)
	}

	s.log.Debug("otp mail sent", "email", email, "kind", kind)
	return nil
}
