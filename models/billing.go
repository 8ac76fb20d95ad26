package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents the ledger state of a single user
type Account struct {
	Id                   int
	Balance              decimal.Decimal
	FreeMinutesRemaining int
	FreeMinutesLastReset *time.Time
	HasClaimedFreeNumber bool
}

// AccountState is the read-only view used by upstream gating logic
type AccountState struct {
	AccountId            int             `json:"account_id"`
	Balance              decimal.Decimal `json:"balance"`
	FreeMinutesRemaining int             `json:"free_minutes_remaining"`
	HasClaimedFreeNumber bool            `json:"has_claimed_free_number"`
}

// CallBillingRecord holds the billing side of a call logged by the call handler
type CallBillingRecord struct {
	Id              int
	CallReference   string
	AccountId       int
	Status          string
	DurationSeconds int
	IsBilled        bool
	BilledMinutes   int
	BilledAmount    decimal.Decimal
	BilledAt        *time.Time
}

// NumberSubscription represents the billing state of an owned phone number
type NumberSubscription struct {
	Id            int
	AccountId     int
	IsFree        bool
	MonthlyCost   decimal.Decimal
	NextRenewalAt *time.Time
	SettledAt     *time.Time
}

type LedgerSource string

const (
	LedgerSourceCall         LedgerSource = "CALL"
	LedgerSourceNumberRental LedgerSource = "NUMBER_RENTAL"
	LedgerSourceFunds        LedgerSource = "FUNDS"
)

// LedgerEntry is the audit row written with every balance mutation.
// Cents is positive for debits and negative for credits.
type LedgerEntry struct {
	Id            string
	Source        LedgerSource
	ModuleId      int
	Reference     string
	AccountId     int
	Cents         decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	CreatedAt     time.Time
}
