package billing

import (
	"errors"

	models "lineblocs.com/ledger/models"
)

var ErrInvalidEvent = errors.New("invalid funds event")

// FundsEventHandler turns a payment processor webhook into a funds credit. A nil
// event with a nil error means the payload is valid but not a funds event.
type FundsEventHandler interface {
	ParseFundsEvent(payload []byte, signature string) (*models.FundsEvent, error)
}
