package testutil

import (
	"context"
	"sync"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/mail"
)

// RecordingMailer keeps sent messages in memory and sends synchronously.
type RecordingMailer struct {
	mu   sync.Mutex
	Sent []mail.Message
}

var _ mail.Mailer = (*RecordingMailer)(nil)

func (m *RecordingMailer) SendMessages(_ context.Context, messages ...*mail.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		m.Sent = append(m.Sent, *msg)
	}
}

func (m *RecordingMailer) Messages() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.Sent...)
}
