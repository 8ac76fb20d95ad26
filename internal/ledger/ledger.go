// Package ledger applies call settlements, number purchases and funds credits to
// an account's balance and free-minute allowance. Every entry point runs inside
// the account row lock and applies the monthly allowance reset first.
package ledger

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"lineblocs.com/ledger/internal/allowance"
	"lineblocs.com/ledger/models"
	"lineblocs.com/ledger/repository"
)

type BillingLedger struct {
	accounts repository.AccountRepository
	config   Config
	clock    *allowance.Clock
	logger   *logrus.Entry
}

type Option func(*BillingLedger)

// WithNow replaces the time source used for resets, renewals and entry timestamps.
func WithNow(now func() time.Time) Option {
	return func(l *BillingLedger) {
		l.clock = allowance.NewClock(l.config.MonthlyFreeMinutes, now)
	}
}

func WithLogger(logger *logrus.Entry) Option {
	return func(l *BillingLedger) {
		l.logger = logger
	}
}

func NewBillingLedger(accounts repository.AccountRepository, config Config, opts ...Option) *BillingLedger {
	l := &BillingLedger{
		accounts: accounts,
		config:   config,
		clock:    allowance.NewClock(config.MonthlyFreeMinutes, time.Now),
		logger:   logrus.WithField("component", "billing_ledger"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type CallSettlement struct {
	Record              models.CallBillingRecord
	FreeMinutesConsumed int
	AlreadyBilled       bool
}

type NumberSettlement struct {
	Subscription   models.NumberSubscription
	AlreadySettled bool
}

// withAccount locks the account and applies the lazy monthly reset before fn runs.
// The reset is saved even when fn itself does not touch the account.
func (l *BillingLedger) withAccount(ctx context.Context, accountID int, fn func(tx repository.AccountTx, account *models.Account) error) error {
	return l.accounts.WithAccountLock(ctx, accountID, func(tx repository.AccountTx) error {
		account := tx.Account()
		if l.clock.EnsureMonthlyReset(account) {
			l.logger.WithField("account_id", accountID).Info("monthly free minutes reset")
			if err := tx.SaveAccount(); err != nil {
				return err
			}
		}
		return fn(tx, account)
	})
}

func (l *BillingLedger) newEntry(source models.LedgerSource, account *models.Account, moduleID int, reference string, cents decimal.Decimal, before decimal.Decimal) *models.LedgerEntry {
	return &models.LedgerEntry{
		Id:            uuid.NewString(),
		Source:        source,
		ModuleId:      moduleID,
		Reference:     reference,
		AccountId:     account.Id,
		Cents:         cents,
		BalanceBefore: before,
		BalanceAfter:  account.Balance,
		CreatedAt:     l.clock.Now(),
	}
}

// AssertMinimumBalance returns ErrInsufficientBalance when the balance is below the
// configured floor. Free minutes are the caller's separate check.
func (l *BillingLedger) AssertMinimumBalance(ctx context.Context, accountID int) error {
	insufficient := false
	err := l.withAccount(ctx, accountID, func(_ repository.AccountTx, account *models.Account) error {
		insufficient = account.Balance.LessThan(l.config.MinRequiredBalance)
		return nil
	})
	if err != nil {
		return err
	}
	if insufficient {
		return ErrInsufficientBalance
	}
	return nil
}

func (l *BillingLedger) GetAccountState(ctx context.Context, accountID int) (*models.AccountState, error) {
	var state models.AccountState
	err := l.withAccount(ctx, accountID, func(_ repository.AccountTx, account *models.Account) error {
		state = models.AccountState{
			AccountId:            account.Id,
			Balance:              account.Balance,
			FreeMinutesRemaining: account.FreeMinutesRemaining,
			HasClaimedFreeNumber: account.HasClaimedFreeNumber,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// ChargeForCompletedCall settles a call exactly once. A record that is already
// billed is returned untouched. reportedDuration, when set, replaces the stored
// duration before the charge is computed. The balance may go negative.
func (l *BillingLedger) ChargeForCompletedCall(ctx context.Context, accountID int, callReference string, reportedDuration *int) (*CallSettlement, error) {
	var result CallSettlement
	err := l.withAccount(ctx, accountID, func(tx repository.AccountTx, account *models.Account) error {
		record, err := tx.LockCallRecord(callReference)
		if err != nil {
			return err
		}
		if record.IsBilled {
			result = CallSettlement{Record: *record, AlreadyBilled: true}
			return nil
		}
		if reportedDuration != nil {
			record.DurationSeconds = *reportedDuration
		}

		charge := ComputeCallCharge(record.DurationSeconds, account.FreeMinutesRemaining, l.config.RatePerMinute)
		before := account.Balance
		account.FreeMinutesRemaining -= charge.FreeMinutes
		account.Balance = account.Balance.Sub(charge.Amount)

		billedAt := l.clock.Now()
		record.Status = models.CallStatusCompleted
		record.IsBilled = true
		record.BilledMinutes = charge.BillableMinutes
		record.BilledAmount = charge.Amount
		record.BilledAt = &billedAt

		if err := tx.SaveAccount(); err != nil {
			return err
		}
		if err := tx.SaveCallRecord(record); err != nil {
			return err
		}
		entry := l.newEntry(models.LedgerSourceCall, account, record.Id, record.CallReference, charge.Amount, before)
		if err := tx.InsertLedgerEntry(entry); err != nil {
			return err
		}

		result = CallSettlement{Record: *record, FreeMinutesConsumed: charge.FreeMinutes}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"account_id":     accountID,
		"call_reference": callReference,
	}
	if result.AlreadyBilled {
		l.logger.WithFields(fields).Info("call already settled, skipping")
	} else {
		fields["free_minutes"] = result.FreeMinutesConsumed
		fields["billed_minutes"] = result.Record.BilledMinutes
		fields["billed_amount"] = result.Record.BilledAmount.StringFixed(centsPlaces)
		l.logger.WithFields(fields).Info("call settled")
	}
	return &result, nil
}

// ChargeForNumberPurchase grants the free-number entitlement or debits the monthly
// number price. Eligibility for isFree is decided by the caller. A subscription
// that was already settled is returned untouched.
func (l *BillingLedger) ChargeForNumberPurchase(ctx context.Context, accountID int, subscriptionID int, isFree bool) (*NumberSettlement, error) {
	var result NumberSettlement
	err := l.withAccount(ctx, accountID, func(tx repository.AccountTx, account *models.Account) error {
		sub, err := tx.LockSubscription(subscriptionID)
		if err != nil {
			return err
		}
		if sub.SettledAt != nil {
			result = NumberSettlement{Subscription: *sub, AlreadySettled: true}
			return nil
		}

		now := l.clock.Now()
		before := account.Balance
		price := decimal.Zero
		if isFree {
			sub.IsFree = true
			sub.NextRenewalAt = nil
			account.HasClaimedFreeNumber = true
		} else {
			price = l.config.NumberMonthlyPrice
			account.Balance = account.Balance.Sub(price)
			renewal := now.Add(l.config.RenewalPeriod)
			sub.IsFree = false
			sub.NextRenewalAt = &renewal
		}
		sub.SettledAt = &now

		if err := tx.SaveAccount(); err != nil {
			return err
		}
		if err := tx.SaveSubscription(sub); err != nil {
			return err
		}
		reference := "purchase:" + strconv.Itoa(sub.Id)
		if err := tx.InsertLedgerEntry(l.newEntry(models.LedgerSourceNumberRental, account, sub.Id, reference, price, before)); err != nil {
			return err
		}

		result = NumberSettlement{Subscription: *sub}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.WithFields(logrus.Fields{
		"account_id":      accountID,
		"subscription_id": subscriptionID,
		"is_free":         result.Subscription.IsFree,
		"already_settled": result.AlreadySettled,
	}).Info("number purchase settled")
	return &result, nil
}

// AddFunds credits a payment to the balance once per payment reference. Returns
// false when the reference was already credited.
func (l *BillingLedger) AddFunds(ctx context.Context, accountID int, amount decimal.Decimal, reference string) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}

	credited := false
	err := l.withAccount(ctx, accountID, func(tx repository.AccountTx, account *models.Account) error {
		exists, err := tx.HasLedgerEntry(models.LedgerSourceFunds, reference)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		before := account.Balance
		account.Balance = account.Balance.Add(amount)
		if err := tx.SaveAccount(); err != nil {
			return err
		}
		if err := tx.InsertLedgerEntry(l.newEntry(models.LedgerSourceFunds, account, 0, reference, amount.Neg(), before)); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		return false, err
	}

	l.logger.WithFields(logrus.Fields{
		"account_id": accountID,
		"reference":  reference,
		"amount":     amount.StringFixed(centsPlaces),
		"credited":   credited,
	}).Info("funds event applied")
	return credited, nil
}
