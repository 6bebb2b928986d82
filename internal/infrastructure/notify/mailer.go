package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"regportal/internal/ports/output"
)

var _ Sink = (*Mailer)(nil)

// Mailer sends the "On-Duty request" letter to the registered student.
type Mailer struct {
	client     *mail.Client
	from       string
	locale     string
	translator output.T
}

// MailerConfig carries the SMTP settings for the on-duty letter.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Locale   string
}

func NewMailer(cfg MailerConfig, translator output.T) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Mailer{
		client:     client,
		from:       cfg.From,
		locale:     cfg.Locale,
		translator: translator,
	}, nil
}

func (m *Mailer) Name() string { return "mailer" }

func (m *Mailer) Deliver(ctx context.Context, ev RegistrationCreated) error {
	data := map[string]any{
		"StudentName": ev.StudentName,
		"CollegeName": ev.CollegeName,
		"EventName":   ev.EventName,
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(ev.Email); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(m.translator.T(m.locale, "email.onduty.subject", data))
	msg.SetBodyString(mail.TypeTextHTML, m.translator.T(m.locale, "email.onduty.body", data))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send on-duty letter: %w", err)
	}
	return nil
}
