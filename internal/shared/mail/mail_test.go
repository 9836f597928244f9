package mail

import (
	"net/mail"
	"testing"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestNew_SelectsByAPIKey(t *testing.T) {
	cfg := &config.Config{Mail: config.MailConfig{FromName: "과외 게시판", FromAddress: "no-reply@example.com"}}

	_, isConsole := New(cfg).(*ConsoleMailer)
	assert.True(t, isConsole)

	cfg.Mail.SendGridAPIKey = "SG.test"
	_, isSendGrid := New(cfg).(*SendGridMailer)
	assert.True(t, isSendGrid)
}

func TestConsoleMailer_RenderMasksRecipient(t *testing.T) {
	m := NewConsoleMailer(mail.Address{Name: "과외 게시판", Address: "no-reply@example.com"}, "[과외 게시판] ")

	raw := m.render(Message{
		To:          []mail.Address{{Address: "teacher@example.com"}},
		Subject:     "글이 등록되었습니다",
		TextContent: "본문",
	})

	assert.Contains(t, raw, "Subject: [과외 게시판] 글이 등록되었습니다")
	assert.NotContains(t, raw, "teacher@example.com")
	assert.Contains(t, raw, "본문")
}

func TestSendGridMailer_Prepare(t *testing.T) {
	m := NewSendGridMailer("SG.test", mail.Address{Name: "보드", Address: "no-reply@example.com"}, "[보드] ")

	v3 := m.prepare(Message{
		To:          []mail.Address{{Address: "a@example.com"}},
		Subject:     "제목",
		TextContent: "본문",
	})

	assert.Equal(t, "no-reply@example.com", v3.From.Address)
	assert.Len(t, v3.Personalizations, 1)
	assert.Equal(t, "[보드] 제목", v3.Personalizations[0].Subject)
	assert.Len(t, v3.Content, 1)
}

func TestMessage_Guards(t *testing.T) {
	msg := &Message{}
	assert.False(t, msg.HasRecipients())
	assert.False(t, msg.HasContent())

	msg.TextContent = "  "
	assert.False(t, msg.HasContent())
}
