package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
)

const testSecret = "whsec_test_123"

func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts, payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func intentEvent(eventType, currency, userID string, amount int64) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {
			"object": {
				"id": "pi_123",
				"object": "payment_intent",
				"amount": %d,
				"currency": %q,
				"metadata": {"user_id": %q}
			}
		}
	}`, stripe.APIVersion, eventType, amount, currency, userID))
}

func TestParseFundsEvent(t *testing.T) {
	t.Parallel()

	handler := NewStripeFundsHandler(testSecret)

	t.Run("Should convert a succeeded payment intent into a funds event", func(t *testing.T) {
		t.Parallel()

		payload := intentEvent("payment_intent.succeeded", "usd", "42", 2550)
		event, err := handler.ParseFundsEvent(payload, signPayload(payload, testSecret))
		require.NoError(t, err)
		require.NotNil(t, event)

		assert.Equal(t, 42, event.AccountID)
		assert.Equal(t, "25.50", event.Amount.StringFixed(2))
		assert.Equal(t, "pi_123", event.Reference)
	})

	t.Run("Should ignore other event types", func(t *testing.T) {
		t.Parallel()

		payload := intentEvent("payment_intent.created", "usd", "42", 2550)
		event, err := handler.ParseFundsEvent(payload, signPayload(payload, testSecret))
		assert.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("Should reject a bad signature", func(t *testing.T) {
		t.Parallel()

		payload := intentEvent("payment_intent.succeeded", "usd", "42", 2550)
		_, err := handler.ParseFundsEvent(payload, signPayload(payload, "whsec_other"))
		assert.True(t, errors.Is(err, ErrInvalidEvent))
	})

	t.Run("Should reject a non USD payment", func(t *testing.T) {
		t.Parallel()

		payload := intentEvent("payment_intent.succeeded", "eur", "42", 2550)
		_, err := handler.ParseFundsEvent(payload, signPayload(payload, testSecret))
		assert.True(t, errors.Is(err, ErrInvalidEvent))
	})

	t.Run("Should reject a payment without an account", func(t *testing.T) {
		t.Parallel()

		payload := intentEvent("payment_intent.succeeded", "usd", "", 2550)
		_, err := handler.ParseFundsEvent(payload, signPayload(payload, testSecret))
		assert.True(t, errors.Is(err, ErrInvalidEvent))
	})
}
