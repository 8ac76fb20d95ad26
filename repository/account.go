package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"lineblocs.com/ledger/models"
)

var (
	ErrAccountNotFound      = stderrors.New("account not found")
	ErrRecordNotFound       = stderrors.New("call billing record not found")
	ErrSubscriptionNotFound = stderrors.New("number subscription not found")
)

// AccountTx is the unit of work handed out by WithAccountLock. The account row
// is already locked; child rows are locked on read.
type AccountTx interface {
	Account() *models.Account
	SaveAccount() error
	LockCallRecord(callReference string) (*models.CallBillingRecord, error)
	SaveCallRecord(record *models.CallBillingRecord) error
	LockSubscription(subscriptionID int) (*models.NumberSubscription, error)
	SaveSubscription(subscription *models.NumberSubscription) error
	HasLedgerEntry(source models.LedgerSource, reference string) (bool, error)
	InsertLedgerEntry(entry *models.LedgerEntry) error
}

type AccountRepository interface {
	// WithAccountLock runs fn inside one transaction holding an exclusive lock on
	// the account row. Any error from fn rolls the whole transaction back.
	WithAccountLock(ctx context.Context, accountID int, fn func(tx AccountTx) error) error
}

type AccountService struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return NewAccountService(db)
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{
		db: db,
	}
}

func (as *AccountService) WithAccountLock(ctx context.Context, accountID int, fn func(tx AccountTx) error) (err error) {
	sqlTx, err := as.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "could not begin account transaction")
	}
	defer func() {
		if err != nil {
			_ = sqlTx.Rollback()
		}
	}()

	account, err := lockAccount(ctx, sqlTx, accountID)
	if err != nil {
		return err
	}

	tx := &mysqlAccountTx{
		ctx:     ctx,
		tx:      sqlTx,
		account: account,
	}
	if err = fn(tx); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return errors.Wrap(err, "could not commit account transaction")
	}
	return nil
}

func lockAccount(ctx context.Context, tx *sql.Tx, accountID int) (*models.Account, error) {
	row := tx.QueryRowContext(ctx, "SELECT id, balance, free_minutes_remaining, free_minutes_last_reset, has_claimed_free_number FROM users WHERE id = ? FOR UPDATE", accountID)

	var account models.Account
	var lastReset sql.NullTime
	err := row.Scan(&account.Id, &account.Balance, &account.FreeMinutesRemaining, &lastReset, &account.HasClaimedFreeNumber)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not lock account %d", accountID)
	}
	account.FreeMinutesLastReset = nullTimePtr(lastReset)
	return &account, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func decimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
