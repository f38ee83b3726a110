// Package mailx sends transactional email over SMTP. Delivery is best
// effort: sends are bounded by a timeout and failures are reported to the
// caller, never retried.
package mailx

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no SMTP host is configured. Callers
// treat it like any other delivery failure.
var ErrNotConfigured = errors.New("mailx: smtp not configured")

// ErrTimeout reports that the SMTP conversation exceeded the send timeout.
var ErrTimeout = errors.New("mailx: send timed out")

// Mailer delivers a single message. Implementations must honour the
// context deadline.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string

	// Timeout bounds a single send. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds an SMTP send when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Enabled reports whether the config points at a real SMTP server.
func (c Config) Enabled() bool { return c.Host != "" }

// SMTPMailer sends mail through a single SMTP server with plain auth.
type SMTPMailer struct {
	cfg Config

	// sendMail is swappable for tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates an SMTP mailer from config.
func New(cfg Config) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

// Send delivers one message. The SMTP conversation races against the
// configured timeout; a timeout counts as a delivery failure and is not
// retried. net/smtp has no context support, so a late send is abandoned
// rather than cancelled.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.cfg.Enabled() {
		return ErrNotConfigured
	}

	msg := buildMessage(m.cfg.From, to, subject, body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	done := make(chan error, 1)
	go func() {
		done <- m.sendMail(addr, auth, m.cfg.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailx: send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}

// buildMessage assembles a minimal RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
