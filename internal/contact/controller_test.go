package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"puramente/internal/dto"
)

type mockSender struct {
	SendFunc func(ctx context.Context, req dto.ContactRequest) error
	calls    int
}

func (m *mockSender) Send(ctx context.Context, req dto.ContactRequest) error {
	m.calls++
	if m.SendFunc != nil {
		return m.SendFunc(ctx, req)
	}
	return nil
}

func TestSend_Success(t *testing.T) {
	sender := &mockSender{}
	c := NewController(sender, zap.NewNop())

	body := `{"name":"John","email":"john@example.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/send", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Send(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Emails sent successfully")
	assert.Equal(t, 1, sender.calls)
}

func TestSend_MissingFields(t *testing.T) {
	sender := &mockSender{}
	c := NewController(sender, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/contact/send", strings.NewReader(`{"message":"Hi"}`))
	rec := httptest.NewRecorder()
	c.Send(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, sender.calls)
}

func TestSend_MailerFailure(t *testing.T) {
	sender := &mockSender{
		SendFunc: func(ctx context.Context, req dto.ContactRequest) error {
			return errors.New("smtp unreachable")
		},
	}
	c := NewController(sender, zap.NewNop())

	body := `{"name":"John","email":"john@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/send", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Send(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send emails")
}

func TestMailer_BuildsMessages(t *testing.T) {
	m := NewMailer(testSMTPConfig(), zap.NewNop())

	req := dto.ContactRequest{
		Name:    "John <script>",
		Email:   "john@example.com",
		Message: "Hello",
	}

	admin, err := m.adminMessage(req)
	assert.NoError(t, err)
	assert.NotNil(t, admin)

	reply, err := m.autoReplyMessage(req)
	assert.NoError(t, err)
	assert.NotNil(t, reply)
}
