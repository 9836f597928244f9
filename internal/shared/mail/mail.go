package mail

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
)

// Message is a plain notification email.
type Message struct {
	To          []mail.Address
	Subject     string
	TextContent string
	HTMLContent string
}

func (m *Message) HasRecipients() bool {
	return len(m.To) > 0
}

func (m *Message) HasContent() bool {
	return strings.TrimSpace(m.TextContent) != "" || strings.TrimSpace(m.HTMLContent) != ""
}

// Mailer delivers messages in the background. Delivery failures are logged
// and never reported back to the caller.
type Mailer interface {
	SendMessages(ctx context.Context, messages ...*Message)
}

// New picks SendGrid when an API key is configured, console output otherwise.
func New(cfg *config.Config) Mailer {
	from := mail.Address{Name: cfg.Mail.FromName, Address: cfg.Mail.FromAddress}
	prefix := "[" + cfg.Mail.FromName + "] "

	if cfg.Mail.SendGridAPIKey == "" {
		slog.Info("SENDGRID_API_KEY 미설정 - 콘솔 메일러 사용")
		return NewConsoleMailer(from, prefix)
	}
	return NewSendGridMailer(cfg.Mail.SendGridAPIKey, from, prefix)
}
