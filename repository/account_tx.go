package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"lineblocs.com/ledger/models"
)

type mysqlAccountTx struct {
	ctx     context.Context
	tx      *sql.Tx
	account *models.Account
}

func (t *mysqlAccountTx) Account() *models.Account {
	return t.account
}

func (t *mysqlAccountTx) SaveAccount() error {
	a := t.account
	_, err := t.tx.ExecContext(t.ctx, "UPDATE users SET balance = ?, free_minutes_remaining = ?, free_minutes_last_reset = ?, has_claimed_free_number = ? WHERE id = ?",
		a.Balance, a.FreeMinutesRemaining, timeOrNil(a.FreeMinutesLastReset), a.HasClaimedFreeNumber, a.Id)
	if err != nil {
		return errors.Wrapf(err, "could not update account %d", a.Id)
	}
	return nil
}

func (t *mysqlAccountTx) LockCallRecord(callReference string) (*models.CallBillingRecord, error) {
	row := t.tx.QueryRowContext(t.ctx, "SELECT "+callColumns+" FROM calls WHERE call_reference = ? AND user_id = ? FOR UPDATE", callReference, t.account.Id)
	record, err := scanCallRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not lock call %s", callReference)
	}
	return record, nil
}

func (t *mysqlAccountTx) SaveCallRecord(record *models.CallBillingRecord) error {
	_, err := t.tx.ExecContext(t.ctx, "UPDATE calls SET status = ?, duration_seconds = ?, is_billed = ?, billed_minutes = ?, billed_amount = ?, billed_at = ? WHERE id = ?",
		record.Status, record.DurationSeconds, record.IsBilled, record.BilledMinutes, record.BilledAmount, timeOrNil(record.BilledAt), record.Id)
	if err != nil {
		return errors.Wrapf(err, "could not update call %s", record.CallReference)
	}
	return nil
}

func (t *mysqlAccountTx) LockSubscription(subscriptionID int) (*models.NumberSubscription, error) {
	row := t.tx.QueryRowContext(t.ctx, "SELECT id, user_id, is_free, monthly_cost, next_renewal_at, settled_at FROM did_numbers WHERE id = ? AND user_id = ? FOR UPDATE", subscriptionID, t.account.Id)

	var sub models.NumberSubscription
	var nextRenewal, settled sql.NullTime
	err := row.Scan(&sub.Id, &sub.AccountId, &sub.IsFree, &sub.MonthlyCost, &nextRenewal, &settled)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not lock number %d", subscriptionID)
	}
	sub.NextRenewalAt = nullTimePtr(nextRenewal)
	sub.SettledAt = nullTimePtr(settled)
	return &sub, nil
}

func (t *mysqlAccountTx) SaveSubscription(sub *models.NumberSubscription) error {
	_, err := t.tx.ExecContext(t.ctx, "UPDATE did_numbers SET is_free = ?, next_renewal_at = ?, settled_at = ? WHERE id = ?",
		sub.IsFree, timeOrNil(sub.NextRenewalAt), timeOrNil(sub.SettledAt), sub.Id)
	if err != nil {
		return errors.Wrapf(err, "could not update number %d", sub.Id)
	}
	return nil
}

func (t *mysqlAccountTx) HasLedgerEntry(source models.LedgerSource, reference string) (bool, error) {
	var count int
	row := t.tx.QueryRowContext(t.ctx, "SELECT COUNT(*) FROM users_debits WHERE source = ? AND reference = ?", string(source), reference)
	if err := row.Scan(&count); err != nil {
		return false, errors.Wrap(err, "could not count ledger entries")
	}
	return count > 0, nil
}

func (t *mysqlAccountTx) InsertLedgerEntry(entry *models.LedgerEntry) error {
	_, err := t.tx.ExecContext(t.ctx, "INSERT INTO users_debits (`id`, `source`, `status`, `cents`, `module_id`, `reference`, `user_id`, `balance_before`, `balance_after`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		entry.Id, string(entry.Source), "COMPLETE", entry.Cents, entry.ModuleId, entry.Reference, entry.AccountId, entry.BalanceBefore, entry.BalanceAfter, entry.CreatedAt)
	if err != nil {
		return errors.Wrapf(err, "could not insert %s ledger entry", entry.Source)
	}
	return nil
}
