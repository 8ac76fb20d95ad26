package queue

import (
	"context"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestAwaitConfirm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newPublisher := func() *ConfirmPublisher {
		return &ConfirmPublisher{
			confirms: make(chan amqp.Confirmation, 2),
			declared: make(map[string]bool),
			timeout:  50 * time.Millisecond,
		}
	}

	t.Run("Should skip a late confirm from an earlier publish", func(t *testing.T) {
		t.Parallel()

		p := newPublisher()
		p.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		p.confirms <- amqp.Confirmation{DeliveryTag: 2, Ack: false}

		err := p.awaitConfirm(ctx, CallStatusEvents, 2)
		assert.EqualError(t, err, "broker nacked delivery 2")
	})

	t.Run("Should accept the matching ack", func(t *testing.T) {
		t.Parallel()

		p := newPublisher()
		p.confirms <- amqp.Confirmation{DeliveryTag: 3, Ack: true}

		assert.NoError(t, p.awaitConfirm(ctx, CallStatusEvents, 3))
	})

	t.Run("Should time out when only stale confirms arrive", func(t *testing.T) {
		t.Parallel()

		p := newPublisher()
		p.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}

		err := p.awaitConfirm(ctx, CallStatusEvents, 2)
		assert.EqualError(t, err, "timed out waiting for broker confirm on call_status_events")
	})
}
