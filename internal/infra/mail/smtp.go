package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"art-collector/config"
	"art-collector/internal/logger"
)

const senderName = "artCollector Team"

// SMTPMailer sends plain-text mail. With no host configured it only logs
// the message, which is enough for local development.
type SMTPMailer struct {
	cfg  config.SMTP
	log  *logger.Logger
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg config.SMTP, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" {
		m.log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("smtp not configured, mail not sent")
		return nil
	}

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	msg := buildMessage(m.cfg.From, to, subject, body)

	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte("Subject: " + subject + "\r\n" +
		"From: \"" + senderName + "\" <" + from + ">\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}
