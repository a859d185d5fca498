package service

import (
	"errors"
	"testing"

	"github.com/sefazor/pricing-web/internal/models"
	"github.com/sefazor/pricing-web/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	sent []models.ContactRequest
	err  error
}

func (f *fakeNotifier) SendContactRequest(req models.ContactRequest) error {
	f.sent = append(f.sent, req)
	return f.err
}

func TestContactService_Submit(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewContactService(notifier, utils.NewValidator(), zap.NewNop())

	err := svc.Submit(models.ContactRequest{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com ",
		Plan:    "Enterprise",
		Message: " We need 500 seats. ",
	})
	require.NoError(t, err)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Ada Lovelace", notifier.sent[0].Name)
	assert.Equal(t, "ada@example.com", notifier.sent[0].Email)
	assert.Equal(t, "We need 500 seats.", notifier.sent[0].Message)
}

func TestContactService_Invalid(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewContactService(notifier, utils.NewValidator(), zap.NewNop())

	err := svc.Submit(models.ContactRequest{Name: "Ada", Email: "not-an-email", Message: "  "})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
	assert.Empty(t, notifier.sent)
}

func TestContactService_DeliveryFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("rate limited")}
	svc := NewContactService(notifier, utils.NewValidator(), zap.NewNop())

	err := svc.Submit(models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrContactDelivery)
	assert.Contains(t, err.Error(), "rate limited")
}
