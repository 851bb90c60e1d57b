package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/config"
	"github.com/candra1525/DEKAT-APPS-CENTRAL/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces deletion audit events to a Kafka topic.
// It implements repository.AuditPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured audit topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAuditTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishDeletion serializes and publishes one deletion event, keyed by the
// record id so events for the same record stay on one partition.
func (w *Writer) PublishDeletion(ctx context.Context, event domain.DeletionEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish deletion event: %w", err)
	}
	w.logger.Debug("deletion event published", "id", event.ID, "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a DeletionEvent into a Kafka message.
func serializeToMessage(event domain.DeletionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize deletion event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte("cuaca.deleted")},
			{Key: "deleted_at", Value: []byte(event.DeletedAt.Format(time.RFC3339))},
		},
	}, nil
}
