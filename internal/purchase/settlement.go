// Package purchase settles phone number acquisitions against the ledger.
package purchase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/ledger"
	"lineblocs.com/ledger/internal/queue"
	"lineblocs.com/ledger/models"
)

type NumberCharger interface {
	ChargeForNumberPurchase(ctx context.Context, accountID int, subscriptionID int, isFree bool) (*ledger.NumberSettlement, error)
}

// TokenGuard claims a purchase settlement token. A claimed token only marks a
// probable duplicate; the subscription's settled_at column decides.
type TokenGuard interface {
	Acquire(ctx context.Context, token string) (bool, error)
	Release(ctx context.Context, token string) error
}

type Settlement struct {
	ledger NumberCharger
	guard  TokenGuard
	logger *logrus.Entry
}

// NewSettlement builds a purchase settlement. guard may be nil.
func NewSettlement(charger NumberCharger, guard TokenGuard) *Settlement {
	return &Settlement{
		ledger: charger,
		guard:  guard,
		logger: logrus.WithField("component", "purchase_settlement"),
	}
}

// SettleNumberPurchase trusts RequestedAsFree as decided by the caller. The ledger
// is always consulted, so a token left behind by an interrupted attempt never
// hides an unsettled subscription.
func (s *Settlement) SettleNumberPurchase(ctx context.Context, task models.PurchaseTask) (*ledger.NumberSettlement, error) {
	log := s.logger.WithFields(logrus.Fields{
		"account_id":      task.AccountID,
		"subscription_id": task.SubscriptionID,
		"free":            task.RequestedAsFree,
	})

	guarded := s.guard != nil && task.SettlementToken != ""
	if guarded {
		acquired, err := s.guard.Acquire(ctx, task.SettlementToken)
		switch {
		case err != nil:
			log.WithError(err).Warn("could not claim settlement token")
		case !acquired:
			log.WithField("token", task.SettlementToken).Info("settlement token already claimed, checking subscription")
		}
	}

	result, err := s.ledger.ChargeForNumberPurchase(ctx, task.AccountID, task.SubscriptionID, task.RequestedAsFree)
	if err != nil {
		log.WithError(err).Error("could not settle number purchase")
		if guarded {
			// ctx may already be cancelled on shutdown
			if relErr := s.guard.Release(context.WithoutCancel(ctx), task.SettlementToken); relErr != nil {
				log.WithError(relErr).Warn("could not release settlement token")
			}
		}
		return nil, err
	}
	if result.AlreadySettled {
		log.Info("duplicate purchase request, already settled")
	}
	return result, nil
}

// HandleMessage is the number_purchases queue handler.
func (s *Settlement) HandleMessage(ctx context.Context, body []byte) error {
	var task models.PurchaseTask
	if err := queue.Decode(body, &task); err != nil {
		return err
	}
	_, err := s.SettleNumberPurchase(ctx, task)
	if errors.Is(err, ledger.ErrAccountNotFound) || errors.Is(err, ledger.ErrSubscriptionNotFound) {
		return errors.Join(queue.ErrMalformedMessage, err)
	}
	return err
}
