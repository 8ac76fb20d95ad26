package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/queue"
	models "lineblocs.com/ledger/models"
	"lineblocs.com/ledger/repository"
)

// ReconcileJob republishes completion signals for calls that finished but were never
// settled, for example because the original event was lost. Settlement is idempotent
// so a call that is settled in the meantime is skipped by the worker.
type ReconcileJob struct {
	calls      repository.CallRepository
	publisher  queue.Publisher
	staleAfter time.Duration
	now        func() time.Time
	logger     *logrus.Entry
}

func NewReconcileJob(calls repository.CallRepository, publisher queue.Publisher, staleAfter time.Duration) *ReconcileJob {
	return &ReconcileJob{
		calls:      calls,
		publisher:  publisher,
		staleAfter: staleAfter,
		now:        time.Now,
		logger:     logrus.WithField("component", "reconcile_unbilled_calls"),
	}
}

// Run returns the number of events that were confirmed by the broker.
func (job *ReconcileJob) Run(ctx context.Context) (int, error) {
	before := job.now().Add(-job.staleAfter)
	records, err := job.calls.ListUnbilledCompletedCalls(ctx, before)
	if err != nil {
		job.logger.WithError(err).Error("could not list unbilled calls")
		return 0, err
	}

	count := 0
	for _, record := range records {
		log := job.logger.WithFields(logrus.Fields{
			"account_id":     record.AccountId,
			"call_reference": record.CallReference,
		})
		// the stored duration is used when none is reported
		body, err := json.Marshal(models.CallStatusEvent{
			CallReference: record.CallReference,
			Status:        models.CallStatusCompleted,
		})
		if err != nil {
			log.WithError(err).Error("could not encode call status event")
			continue
		}
		if err := job.publisher.Publish(ctx, queue.CallStatusEvents, body); err != nil {
			log.WithError(err).Error("could not republish call status event")
			continue
		}
		count++
	}

	job.logger.WithFields(logrus.Fields{
		"found":     len(records),
		"published": count,
	}).Info("reconcile pass finished")
	return count, nil
}
