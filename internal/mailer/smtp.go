package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Sender delivers contact messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTP sends contact messages to a fixed recipient over STARTTLS with PLAIN auth.
// The visitor's address is set as Reply-To.
type SMTP struct {
	cfg Config
}

func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m, err := s.newMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

func (s *SMTP) newMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("set from address: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("set to address: %w", err)
	}
	if err := m.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("set reply-to address: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Message)

	return m, nil
}
