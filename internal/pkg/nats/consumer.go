package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/ojekdriver/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer is a queue-group subscription on a shared client connection
type Consumer struct {
	subject      string
	queueGroup   string
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject. With a queue group, each
// message goes to one member of the group.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	if client == nil || client.conn == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", msg.Subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.conn.QueueSubscribe(subject, queueGroup, cb)
	} else {
		sub, err = client.conn.Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	return &Consumer{subject: subject, queueGroup: queueGroup, subscription: sub}, nil
}

// Subject returns the subscribed subject
func (c *Consumer) Subject() string {
	return c.subject
}

// IsActive returns true while the subscription is valid
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop unsubscribes; the client connection stays open
func (c *Consumer) Stop() {
	if c.subscription == nil {
		return
	}
	if err := c.subscription.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", logger.String("subject", c.subject), logger.Err(err))
	}
	c.subscription = nil
}
