package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jayramanidev/portfolio/internal/config"
	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
)

// Mailer delivers contact-form submissions.
type Mailer interface {
	Send(ctx context.Context, req *model.ContactRequest) error
}

// smtpMailer implements Mailer over plain SMTP with auth.
type smtpMailer struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates an SMTP-backed mailer.
func NewSMTPMailer(cfg config.SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// Send delivers the contact message to the configured recipient.
func (m *smtpMailer) Send(_ context.Context, req *model.ContactRequest) error {
	if m.cfg.User == "" || m.cfg.Password == "" || m.cfg.To == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", req.Name)
	body := fmt.Sprintf(
		"New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n",
		req.Name, req.Email, req.Message,
	)

	msg := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\nReply-To: %s\r\n\r\n%s",
		m.cfg.To, subject, req.Email, body,
	))

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		m.logger.Error().Err(err).Msg("failed to send contact email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info().Str("from", req.Email).Msg("contact email sent")
	return nil
}
