// Package funds applies "funds added" payment events to account balances.
package funds

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/handlers/billing"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/models"
)

type FundsCrediter interface {
	AddFunds(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (bool, error)
}

type FundsService struct {
	handler billing.FundsEventHandler
	ledger  FundsCrediter
	logger  *logrus.Entry
}

func NewFundsService(handler billing.FundsEventHandler, crediter FundsCrediter) *FundsService {
	return &FundsService{
		handler: handler,
		ledger:  crediter,
		logger:  logrus.WithField("component", "funds_service"),
	}
}

// ProcessPaymentEvent returns billing.ErrInvalidEvent for payloads that can never be
// applied. Non-funds events are acknowledged without touching the ledger.
func (s *FundsService) ProcessPaymentEvent(ctx context.Context, task models.PaymentEventTask) error {
	event, err := s.handler.ParseFundsEvent(task.Payload, task.Signature)
	if err != nil {
		s.logger.WithError(err).Warn("rejecting payment event")
		return err
	}
	if event == nil {
		s.logger.Debug("payment event is not a funds event, skipping")
		return nil
	}

	credited, err := s.ledger.AddFunds(ctx, event.AccountID, event.Amount, event.Reference)
	if err != nil {
		s.logger.WithError(err).WithField("reference", event.Reference).Error("could not credit funds")
		return err
	}
	if !credited {
		s.logger.WithField("reference", event.Reference).Info("payment already credited")
	}
	return nil
}

// HandleMessage is the payment_events queue handler.
func (s *FundsService) HandleMessage(ctx context.Context, body []byte) error {
	var task models.PaymentEventTask
	if err := queue.Decode(body, &task); err != nil {
		return err
	}
	err := s.ProcessPaymentEvent(ctx, task)
	switch {
	case errors.Is(err, billing.ErrInvalidEvent),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrAccountNotFound):
		return errors.Join(queue.ErrMalformedMessage, err)
	}
	return err
}
