package funds

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"lineblocs.com/ledger/handlers/billing"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/mocks"
	"lineblocs.com/ledger/models"
)

func TestProcessPaymentEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	task := models.PaymentEventTask{Payload: []byte(`{}`), Signature: "t=1,v1=abc"}

	t.Run("Should credit the parsed funds event", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		amount := decimal.RequireFromString("25.50")
		mockHandler.EXPECT().ParseFundsEvent(task.Payload, task.Signature).
			Return(&models.FundsEvent{AccountID: 42, Amount: amount, Reference: "pi_123"}, nil)
		mockLedger.EXPECT().AddFunds(mock.Anything, 42, amount, "pi_123").Return(true, nil)

		err := NewFundsService(mockHandler, mockLedger).ProcessPaymentEvent(ctx, task)
		assert.NoError(t, err)
	})

	t.Run("Should treat an already credited payment as success", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		amount := decimal.RequireFromString("10")
		mockHandler.EXPECT().ParseFundsEvent(task.Payload, task.Signature).
			Return(&models.FundsEvent{AccountID: 42, Amount: amount, Reference: "pi_123"}, nil)
		mockLedger.EXPECT().AddFunds(mock.Anything, 42, amount, "pi_123").Return(false, nil)

		err := NewFundsService(mockHandler, mockLedger).ProcessPaymentEvent(ctx, task)
		assert.NoError(t, err)
	})

	t.Run("Should skip events that are not funds events", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		mockHandler.EXPECT().ParseFundsEvent(task.Payload, task.Signature).Return(nil, nil)

		err := NewFundsService(mockHandler, mockLedger).ProcessPaymentEvent(ctx, task)
		assert.NoError(t, err)
	})

	t.Run("Should surface invalid events without touching the ledger", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		mockHandler.EXPECT().ParseFundsEvent(task.Payload, task.Signature).Return(nil, billing.ErrInvalidEvent)

		err := NewFundsService(mockHandler, mockLedger).ProcessPaymentEvent(ctx, task)
		assert.ErrorIs(t, err, billing.ErrInvalidEvent)
	})

	t.Run("Should propagate ledger failures", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		amount := decimal.RequireFromString("10")
		mockHandler.EXPECT().ParseFundsEvent(task.Payload, task.Signature).
			Return(&models.FundsEvent{AccountID: 7, Amount: amount, Reference: "pi_9"}, nil)
		mockLedger.EXPECT().AddFunds(mock.Anything, 7, amount, "pi_9").Return(false, ledger.ErrAccountNotFound)

		err := NewFundsService(mockHandler, mockLedger).ProcessPaymentEvent(ctx, task)
		assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	})
}

func TestFundsHandleMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Should decode the forwarded webhook", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockHandler.EXPECT().ParseFundsEvent([]byte("hi"), "t=1,v1=abc").Return(nil, nil)

		// payload is base64 encoded on the wire
		err := NewFundsService(mockHandler, mocks.NewFundsCrediter(t)).HandleMessage(ctx,
			[]byte(`{"payload":"aGk=","signature":"t=1,v1=abc"}`))
		assert.NoError(t, err)
	})

	t.Run("Should drop events that fail verification", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockHandler.EXPECT().ParseFundsEvent([]byte("hi"), "bad").Return(nil, billing.ErrInvalidEvent)

		err := NewFundsService(mockHandler, mocks.NewFundsCrediter(t)).HandleMessage(ctx,
			[]byte(`{"payload":"aGk=","signature":"bad"}`))
		assert.ErrorIs(t, err, queue.ErrMalformedMessage)
	})

	t.Run("Should keep store failures retryable", func(t *testing.T) {
		t.Parallel()

		mockHandler := mocks.NewFundsEventHandler(t)
		mockLedger := mocks.NewFundsCrediter(t)
		amount := decimal.RequireFromString("5")
		failure := errors.New("lock wait timeout exceeded")
		mockHandler.EXPECT().ParseFundsEvent([]byte("hi"), "sig").
			Return(&models.FundsEvent{AccountID: 1, Amount: amount, Reference: "pi_1"}, nil)
		mockLedger.EXPECT().AddFunds(mock.Anything, 1, amount, "pi_1").Return(false, failure)

		err := NewFundsService(mockHandler, mockLedger).HandleMessage(ctx, []byte(`{"payload":"aGk=","signature":"sig"}`))
		assert.Equal(t, failure, err)
	})
}
