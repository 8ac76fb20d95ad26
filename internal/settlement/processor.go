// Package settlement turns call-lifecycle signals into ledger settlements.
package settlement

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/models"
	"lineblocs.com/ledger/repository"
)

type CallCharger interface {
	ChargeForCompletedCall(ctx context.Context, accountID int, callReference string, reportedDuration *int) (*ledger.CallSettlement, error)
}

type Processor struct {
	calls  repository.CallRepository
	ledger CallCharger
	logger *logrus.Entry
}

func NewProcessor(calls repository.CallRepository, charger CallCharger) *Processor {
	return &Processor{
		calls:  calls,
		ledger: charger,
		logger: logrus.WithField("component", "settlement_processor"),
	}
}

// HandleCallCompleted settles the call referenced by event. Signals other than
// completed and references that were never logged are ignored. Repeated delivery
// is safe; the ledger skips calls that are already billed.
func (p *Processor) HandleCallCompleted(ctx context.Context, event models.CallStatusEvent) error {
	log := p.logger.WithFields(logrus.Fields{
		"call_reference": event.CallReference,
		"status":         event.Status,
	})

	if event.Status != models.CallStatusCompleted {
		log.Debug("ignoring non-completed call status")
		return nil
	}

	record, err := p.calls.GetCallRecord(ctx, event.CallReference)
	if errors.Is(err, repository.ErrRecordNotFound) {
		log.Info("no billing record for call, nothing to settle")
		return nil
	}
	if err != nil {
		log.WithError(err).Error("could not load call billing record")
		return err
	}
	if record.IsBilled {
		log.Debug("call already settled")
		return nil
	}

	_, err = p.ledger.ChargeForCompletedCall(ctx, record.AccountId, record.CallReference, event.DurationSeconds)
	if err != nil {
		log.WithError(err).Error("could not settle call")
		return err
	}
	return nil
}

// HandleMessage is the call_status_events queue handler.
func (p *Processor) HandleMessage(ctx context.Context, body []byte) error {
	var event models.CallStatusEvent
	if err := queue.Decode(body, &event); err != nil {
		return err
	}
	if event.CallReference == "" {
		return queue.ErrMalformedMessage
	}
	err := p.HandleCallCompleted(ctx, event)
	if errors.Is(err, repository.ErrAccountNotFound) {
		// the call points at an account that no longer exists
		return errors.Join(queue.ErrMalformedMessage, err)
	}
	return err
}
