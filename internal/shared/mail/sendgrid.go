package mail

import (
	"context"
	"net/http"
	"net/mail"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

type SendGridMailer struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
}

var _ Mailer = (*SendGridMailer)(nil)

func NewSendGridMailer(key string, from mail.Address, subjPrefix string) *SendGridMailer {
	return &SendGridMailer{
		key:        key,
		from:       sgmail.NewEmail(from.Name, from.Address),
		subjPrefix: subjPrefix,
	}
}

func (m *SendGridMailer) SendMessages(ctx context.Context, messages ...*Message) {
	// 요청이 끝나도 발송은 계속되어야 한다
	ctx = context.WithoutCancel(ctx)
	for _, msg := range messages {
		if !msg.HasRecipients() || !msg.HasContent() {
			continue
		}
		go m.send(ctx, *msg)
	}
}

func (m *SendGridMailer) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.TextContent))
	if msg.HTMLContent != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	}
	return v3
}

func (m *SendGridMailer) send(ctx context.Context, msg Message) {
	log := logger.FromContext(ctx)

	req := sendgrid.GetRequest(m.key, sendGridEndpoint, sendGridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		log.Error("[MAIL] 메일 발송 실패", "error", err, "to", maskRecipients(msg.To))
		return
	}
	if res.StatusCode >= http.StatusBadRequest {
		log.Error("[MAIL] 메일 발송 거부",
			"status", res.StatusCode,
			"body", res.Body,
			"to", maskRecipients(msg.To),
		)
		return
	}
	log.Info("[MAIL] 메일 발송 완료", "to", maskRecipients(msg.To))
}

func maskRecipients(addrs []mail.Address) []string {
	masked := make([]string, 0, len(addrs))
	for _, a := range addrs {
		masked = append(masked, logger.MaskEmail(a.Address))
	}
	return masked
}
