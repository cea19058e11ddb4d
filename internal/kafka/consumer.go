package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded entity event. A non-nil error stops the
// consume loop.
type EventHandler func(ctx context.Context, event EntityEvent) error

type Consumer struct {
	reader *kafka.Reader
	log    zerolog.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads entity events until ctx is cancelled or the handler fails.
// A message that does not decode as an EntityEvent is logged and skipped,
// not retried forever.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := c.handleMessage(ctx, msg, handler); err != nil {
			return err
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message, handler EventHandler) error {
	var event EntityEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.log.Warn().Err(err).
			Str("topic", msg.Topic).
			Int64("offset", msg.Offset).
			Msg("skip undecodable event")
		return nil
	}
	return handler(ctx, event)
}
