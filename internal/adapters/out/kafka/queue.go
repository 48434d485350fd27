// Package kafka implements the message queue port on top of Kafka using
// segmentio/kafka-go. Deliveries map onto consumer-group offsets: a delivery
// is acknowledged by committing its offset, and an uncommitted offset is
// redelivered after the consumer restarts or the group rebalances.
// Dead-lettered messages are forwarded to a separate topic before their
// offset is committed.
package kafka

import (
	"context"
	"errors"

	"ordertrack/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	headerCorrelationID    = "correlation_id"
	headerEventType        = "event_type"
	headerDeadLetterReason = "dead_letter_reason"
)

// errInvalidReceipt is returned when a delivery carries a receipt that did
// not come from this queue.
var errInvalidReceipt = errors.New("delivery receipt does not belong to this queue")

// Config holds the connection settings for the Kafka-backed queue.
type Config struct {
	Brokers         []string
	Topic           string
	DeadLetterTopic string
	GroupID         string
}

// Queue is a Kafka implementation of ports.MessageQueue.
//
// Receive, Ack and DeadLetter must be called from a single consumer
// goroutine; Publish is safe for concurrent use.
type Queue struct {
	writer    *kafka.Writer
	dlqWriter *kafka.Writer
	reader    *kafka.Reader
}

// NewQueue creates a queue bound to the configured topics and consumer group.
func NewQueue(cfg Config) *Queue {
	return &Queue{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		dlqWriter: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.DeadLetterTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
			GroupID: cfg.GroupID,
		}),
	}
}

// Publish writes the message to the main topic. The correlation id doubles
// as the partition key, so retries of the same event land on one partition.
func (q *Queue) Publish(ctx context.Context, msg ports.Message) error {
	return q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.CorrelationID),
		Value: msg.Body,
		Headers: []kafka.Header{
			{Key: headerCorrelationID, Value: []byte(msg.CorrelationID)},
			{Key: headerEventType, Value: []byte(msg.EventType)},
		},
	})
}

// Receive fetches the next message without committing its offset.
func (q *Queue) Receive(ctx context.Context) (*ports.Delivery, error) {
	fetched, err := q.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	correlationID := headerValue(fetched.Headers, headerCorrelationID)
	if correlationID == "" {
		correlationID = string(fetched.Key)
	}

	return &ports.Delivery{
		Message: ports.Message{
			Body:          fetched.Value,
			CorrelationID: correlationID,
			EventType:     headerValue(fetched.Headers, headerEventType),
		},
		Receipt: fetched,
	}, nil
}

// Ack commits the delivery's offset.
func (q *Queue) Ack(ctx context.Context, delivery *ports.Delivery) error {
	fetched, ok := delivery.Receipt.(kafka.Message)
	if !ok {
		return errInvalidReceipt
	}

	return q.reader.CommitMessages(ctx, fetched)
}

// DeadLetter forwards the message to the dead-letter topic and commits its
// offset on the main topic. The forward happens first: if it fails, the
// offset stays uncommitted and the message is redelivered.
func (q *Queue) DeadLetter(ctx context.Context, delivery *ports.Delivery, reason string) error {
	fetched, ok := delivery.Receipt.(kafka.Message)
	if !ok {
		return errInvalidReceipt
	}

	err := q.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   fetched.Key,
		Value: fetched.Value,
		Headers: append(fetched.Headers, kafka.Header{
			Key:   headerDeadLetterReason,
			Value: []byte(reason),
		}),
	})
	if err != nil {
		return err
	}

	return q.reader.CommitMessages(ctx, fetched)
}

// Close releases the underlying writers and reader.
func (q *Queue) Close() error {
	return errors.Join(
		q.writer.Close(),
		q.dlqWriter.Close(),
		q.reader.Close(),
	)
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}
	return ""
}
