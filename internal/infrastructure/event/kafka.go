package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Olpagroup25/insa/internal/domain/shared"
	"github.com/Olpagroup25/insa/internal/infrastructure/config"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer is the subset of kafka.Writer the forwarder needs
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the message value written to the topic
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaForwarder is an event handler that copies domain events to a Kafka topic.
// Messages are keyed by aggregate ID so events of one picking stay ordered.
type KafkaForwarder struct {
	writer     Writer
	eventTypes []string
	logger     *zap.Logger
}

// NewKafkaWriter builds a writer for the configured brokers and topic
func NewKafkaWriter(cfg config.EventConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewKafkaForwarder creates a forwarder for eventTypes; none means every event
func NewKafkaForwarder(writer Writer, logger *zap.Logger, eventTypes ...string) *KafkaForwarder {
	return &KafkaForwarder{writer: writer, eventTypes: eventTypes, logger: logger}
}

// EventTypes returns the forwarded event types
func (f *KafkaForwarder) EventTypes() []string {
	return f.eventTypes
}

// Handle writes the event to Kafka
func (f *KafkaForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	msg, err := toMessage(event)
	if err != nil {
		return err
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s to kafka: %w", event.EventType(), err)
	}
	f.logger.Debug("Event forwarded to kafka",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
	)
	return nil
}

// Close flushes and closes the writer
func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}

func toMessage(event shared.DomainEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s: %w", event.EventType(), err)
	}
	value, err := json.Marshal(Envelope{
		EventID:       event.EventID().String(),
		EventType:     event.EventType(),
		AggregateType: event.AggregateType(),
		AggregateID:   event.AggregateID().String(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.AggregateID().String()),
		Value: value,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType())},
		},
	}, nil
}

var _ shared.EventHandler = (*KafkaForwarder)(nil)
