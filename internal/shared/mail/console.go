package mail

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
)

// ConsoleMailer writes messages to the log instead of sending them.
// Used when no SendGrid key is configured (local, dev).
type ConsoleMailer struct {
	from       mail.Address
	subjPrefix string
}

var _ Mailer = (*ConsoleMailer)(nil)

func NewConsoleMailer(from mail.Address, subjPrefix string) *ConsoleMailer {
	return &ConsoleMailer{from: from, subjPrefix: subjPrefix}
}

func (m *ConsoleMailer) SendMessages(ctx context.Context, messages ...*Message) {
	for _, msg := range messages {
		if !msg.HasRecipients() || !msg.HasContent() {
			continue
		}
		logger.FromContext(ctx).Info("[MAIL] 콘솔 메일",
			"raw", m.render(*msg),
		)
	}
}

func (m *ConsoleMailer) render(msg Message) string {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s\r\n", m.from.String())
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n", m.subjPrefix+msg.Subject)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", strings.Join(maskRecipients(msg.To), ", "))
	_, _ = fmt.Fprint(body, "\r\n")
	_, _ = fmt.Fprintf(body, "%s\r\n", msg.TextContent)
	return body.String()
}
