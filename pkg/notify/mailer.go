package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/pkg/config"
)

// ErrNoRecipients is returned when a message has nobody to go to.
var ErrNoRecipients = errors.New("notify: message has no recipients")

// Message is a plain-text notification.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends notifications over SMTP.
type Mailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *zap.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewMailer builds a Mailer from notification config.
func NewMailer(cfg config.NotificationConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return &Mailer{
		addr:   cfg.SMTPHost + ":" + strconv.Itoa(cfg.SMTPPort),
		auth:   auth,
		from:   cfg.Sender,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// Send delivers msg. The SMTP exchange itself is not cancellable; ctx is
// checked before dialing.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = msg.To
	e.Subject = msg.Subject
	e.Text = []byte(msg.Body)

	if err := m.send(e, m.addr, m.auth); err != nil {
		m.logger.Error("failed to send email", zap.Strings("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	m.logger.Info("email sent", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
