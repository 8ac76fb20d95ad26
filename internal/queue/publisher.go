package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultConfirmTimeout = 5 * time.Second

type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// ConfirmPublisher publishes persistent JSON messages and waits for the broker ack.
type ConfirmPublisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	confirms chan amqp.Confirmation
	declared map[string]bool
	timeout  time.Duration
}

func NewConfirmPublisher(ch *amqp.Channel) (*ConfirmPublisher, error) {
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("could not enable publisher confirms: %w", err)
	}
	return &ConfirmPublisher{
		ch:       ch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		declared: make(map[string]bool),
		timeout:  DefaultConfirmTimeout,
	}, nil
}

func (p *ConfirmPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[queue] {
		if _, err := Declare(p.ch, queue); err != nil {
			return err
		}
		p.declared[queue] = true
	}

	seq := p.ch.GetNextPublishSeqNo()
	err := p.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return err
	}
	return p.awaitConfirm(ctx, queue, seq)
}

// awaitConfirm discards late confirms left over from publishes that timed out.
func (p *ConfirmPublisher) awaitConfirm(ctx context.Context, queue string, seq uint64) error {
	timeout := time.After(p.timeout)
	for {
		select {
		case confirmed, ok := <-p.confirms:
			if !ok {
				return amqp.ErrClosed
			}
			if confirmed.DeliveryTag < seq {
				continue
			}
			if !confirmed.Ack {
				return fmt.Errorf("broker nacked delivery %d", confirmed.DeliveryTag)
			}
			return nil
		case <-timeout:
			return fmt.Errorf("timed out waiting for broker confirm on %s", queue)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
