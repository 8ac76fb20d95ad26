package ledger

import (
	"errors"

	"lineblocs.com/ledger/repository"
)

var (
	// ErrInsufficientBalance is returned by the minimum-balance gate only. Settlement
	// never fails on balance.
	ErrInsufficientBalance = errors.New("ledger: insufficient balance, add funds to continue")
	ErrInvalidAmount       = errors.New("ledger: amount must be positive")

	ErrAccountNotFound      = repository.ErrAccountNotFound
	ErrRecordNotFound       = repository.ErrRecordNotFound
	ErrSubscriptionNotFound = repository.ErrSubscriptionNotFound
)
