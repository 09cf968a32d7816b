// Package kafka publishes order lifecycle events to a Kafka topic.
// Downstream consumers (notification senders, analytics) read the topic;
// this service only ever writes to it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundrytrack/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes OrderStatusChangedEvent messages to Kafka.
// Messages are keyed by order ID so all events of one order land in the same
// partition and stay ordered.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
//
// Example:
//
//	publisher := kafka.NewOrderEventPublisher([]string{"localhost:9092"}, "order-status-changes")
//	defer publisher.Close()
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishStatusChanged emits a status change event.
// Blocks until the broker acknowledges the write or the context expires.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	message, err := buildMessage(event)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish status change for order %s: %w", event.OrderID, err)
	}

	return nil
}

// Close releases the underlying Kafka connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func buildMessage(event ports.OrderStatusChangedEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal status change event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	}, nil
}
