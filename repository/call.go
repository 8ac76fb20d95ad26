package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"lineblocs.com/ledger/models"
)

const callColumns = "id, call_reference, user_id, status, duration_seconds, is_billed, billed_minutes, billed_amount, billed_at"

type CallRepository interface {
	GetCallRecord(ctx context.Context, callReference string) (*models.CallBillingRecord, error)
	// ListUnbilledCompletedCalls returns completed calls that are still unsettled
	// and were last touched before the given time.
	ListUnbilledCompletedCalls(ctx context.Context, before time.Time) ([]models.CallBillingRecord, error)
}

type CallService struct {
	db *sql.DB
}

func NewCallRepository(db *sql.DB) CallRepository {
	return NewCallService(db)
}

func NewCallService(db *sql.DB) *CallService {
	return &CallService{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCallRecord(row rowScanner) (*models.CallBillingRecord, error) {
	var record models.CallBillingRecord
	var status sql.NullString
	var duration, billedMinutes sql.NullInt64
	var billedAmount decimal.NullDecimal
	var billedAt sql.NullTime

	err := row.Scan(&record.Id, &record.CallReference, &record.AccountId, &status, &duration, &record.IsBilled, &billedMinutes, &billedAmount, &billedAt)
	if err != nil {
		return nil, err
	}
	record.Status = status.String
	record.DurationSeconds = int(duration.Int64)
	record.BilledMinutes = int(billedMinutes.Int64)
	record.BilledAmount = decimalOrZero(billedAmount)
	record.BilledAt = nullTimePtr(billedAt)
	return &record, nil
}

func (cs *CallService) GetCallRecord(ctx context.Context, callReference string) (*models.CallBillingRecord, error) {
	row := cs.db.QueryRowContext(ctx, "SELECT "+callColumns+" FROM calls WHERE call_reference = ?", callReference)
	record, err := scanCallRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not get call %s", callReference)
	}
	return record, nil
}

func (cs *CallService) ListUnbilledCompletedCalls(ctx context.Context, before time.Time) ([]models.CallBillingRecord, error) {
	results, err := cs.db.QueryContext(ctx, "SELECT "+callColumns+" FROM calls WHERE status = ? AND is_billed = 0 AND updated_at <= ?", models.CallStatusCompleted, before.UTC())
	if err != nil {
		return nil, errors.Wrap(err, "could not list unbilled calls")
	}
	defer results.Close()

	var records []models.CallBillingRecord
	for results.Next() {
		record, err := scanCallRecord(results)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan unbilled call")
		}
		records = append(records, *record)
	}
	if err := results.Err(); err != nil {
		return nil, errors.Wrap(err, "could not iterate unbilled calls")
	}
	return records, nil
}
