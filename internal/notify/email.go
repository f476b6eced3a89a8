// Package notify implements the email and SMS notification channels.
// Each channel is independently configurable and independently fallible;
// a disabled or failing channel never affects the other.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/jonathan/aro-monitor/internal/config"
	"github.com/jonathan/aro-monitor/internal/types"
)

// Mailer delivers a composed message. *mail.Client satisfies it.
type Mailer interface {
	DialAndSendWithContext(ctx context.Context, msgs ...*mail.Msg) error
}

// EmailNotifier sends availability alerts over authenticated STARTTLS SMTP.
type EmailNotifier struct {
	cfg    config.Config
	client Mailer
	now    func() time.Time
}

// NewEmailNotifier builds the channel. When the email settings are
// incomplete the notifier is returned disabled rather than failing; the
// channel is simply skipped at dispatch time.
func NewEmailNotifier(cfg config.Config) (*EmailNotifier, error) {
	n := &EmailNotifier{cfg: cfg, now: time.Now}
	if !cfg.EmailConfigured() {
		return n, nil
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.EmailAddress),
		mail.WithPassword(cfg.EmailPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	n.client = client
	return n, nil
}

// Name identifies the channel in logs.
func (n *EmailNotifier) Name() string { return "email" }

// Enabled reports whether sender address, credential, and recipient are all
// configured.
func (n *EmailNotifier) Enabled() bool { return n.client != nil }

// Notify composes and sends a plain-text summary of the available units.
func (n *EmailNotifier) Notify(ctx context.Context, matches []types.Match) error {
	m := mail.NewMsg()
	if err := m.From(n.cfg.EmailAddress); err != nil {
		return fmt.Errorf("set sender %q: %w", n.cfg.EmailAddress, err)
	}
	if err := m.To(n.cfg.NotificationEmail); err != nil {
		return fmt.Errorf("set recipient %q: %w", n.cfg.NotificationEmail, err)
	}

	now := n.now()
	m.Subject(emailSubject(n.cfg.PropertyName, now))
	m.SetBodyString(mail.TypeTextPlain, emailBody(n.cfg.PropertyName, n.cfg.TargetURL, matches, now))

	if err := n.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send email to %s: %w", n.cfg.NotificationEmail, err)
	}
	return nil
}
