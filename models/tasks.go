package models

import "github.com/shopspring/decimal"

const CallStatusCompleted = "completed"

// CallStatusEvent is the call-lifecycle signal published by the call handler
type CallStatusEvent struct {
	CallReference   string `json:"call_reference"`
	Status          string `json:"status"`
	DurationSeconds *int   `json:"duration_seconds"`
}

type PurchaseTask struct {
	AccountID       int    `json:"account_id"`
	SubscriptionID  int    `json:"subscription_id"`
	RequestedAsFree bool   `json:"requested_as_free"`
	SettlementToken string `json:"settlement_token"`
}

// PaymentEventTask carries a raw payment processor webhook forwarded by the API
type PaymentEventTask struct {
	Payload   []byte `json:"payload"`
	Signature string `json:"signature"`
}

// FundsEvent is a verified "funds added" notification
type FundsEvent struct {
	AccountID int
	Amount    decimal.Decimal
	Reference string
}
