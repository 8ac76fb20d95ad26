// Package queue wraps the RabbitMQ topology used by the ledger workers.
package queue

import (
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CallStatusEvents = "call_status_events"
	NumberPurchases  = "number_purchases"
	PaymentEvents    = "payment_events"
)

// ErrMalformedMessage marks a delivery that can never succeed. It is acked and dropped.
var ErrMalformedMessage = errors.New("malformed message")

// Decode unmarshals a JSON body, reporting failures as ErrMalformedMessage.
func Decode(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Join(ErrMalformedMessage, err)
	}
	return nil
}

// Declare creates the durable queue if it does not already exist.
func Declare(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(name, true, false, false, false, nil)
}
