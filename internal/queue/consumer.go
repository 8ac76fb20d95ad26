package queue

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

type HandlerFunc func(ctx context.Context, body []byte) error

type Consumer struct {
	ch      *amqp.Channel
	queue   string
	handler HandlerFunc
	logger  *logrus.Entry
}

func NewConsumer(ch *amqp.Channel, queue string, handler HandlerFunc) *Consumer {
	return &Consumer{
		ch:      ch,
		queue:   queue,
		handler: handler,
		logger:  logrus.WithField("queue", queue),
	}
}

// Run consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if _, err := Declare(c.ch, c.queue); err != nil {
		return err
	}
	// one unacked delivery at a time per worker
	if err := c.ch.Qos(1, 0, false); err != nil {
		return err
	}
	msgs, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	c.logger.Info("worker ready, waiting for tasks")
	return Serve(ctx, msgs, c.handler, c.logger)
}

// Serve dispatches every delivery to handler and settles it with HandleDelivery.
func Serve(ctx context.Context, msgs <-chan amqp.Delivery, handler HandlerFunc, logger *logrus.Entry) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := HandleDelivery(ctx, d, handler, logger); err != nil {
				logger.WithError(err).Error("could not settle delivery")
			}
		}
	}
}

// HandleDelivery acks on success or malformed input and requeues anything else.
func HandleDelivery(ctx context.Context, d amqp.Delivery, handler HandlerFunc, logger *logrus.Entry) error {
	err := handler(ctx, d.Body)
	switch {
	case err == nil:
		return d.Ack(false)
	case errors.Is(err, ErrMalformedMessage):
		logger.WithError(err).Warn("dropping malformed message")
		return d.Ack(false)
	default:
		logger.WithError(err).Error("task failed, requeueing")
		return d.Nack(false, true)
	}
}
