package billing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"

	models "lineblocs.com/ledger/models"
)

const (
	eventPaymentSucceeded = "payment_intent.succeeded"
	metadataUserID        = "user_id"
)

type StripeFundsHandler struct {
	WebhookSecret string
}

func NewStripeFundsHandler(webhookSecret string) *StripeFundsHandler {
	return &StripeFundsHandler{
		WebhookSecret: webhookSecret,
	}
}

// ParseFundsEvent verifies the Stripe-Signature header and extracts the credited
// account and amount from a succeeded payment intent. The payment intent id is
// the idempotency reference.
func (hndl *StripeFundsHandler) ParseFundsEvent(payload []byte, signature string) (*models.FundsEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, hndl.WebhookSecret)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEvent, err.Error())
	}
	if event.Type != eventPaymentSucceeded {
		return nil, nil
	}
	if event.Data == nil {
		return nil, errors.Wrap(ErrInvalidEvent, "event has no data")
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errors.Wrap(ErrInvalidEvent, err.Error())
	}
	if !strings.EqualFold(string(intent.Currency), string(stripe.CurrencyUSD)) {
		return nil, errors.Wrapf(ErrInvalidEvent, "unsupported currency %q", intent.Currency)
	}
	if intent.Amount <= 0 {
		return nil, errors.Wrap(ErrInvalidEvent, "non-positive amount")
	}

	accountID, err := strconv.Atoi(intent.Metadata[metadataUserID])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEvent, "missing user_id metadata")
	}

	return &models.FundsEvent{
		AccountID: accountID,
		Amount:    decimal.New(intent.Amount, -2),
		Reference: intent.ID,
	}, nil
}
