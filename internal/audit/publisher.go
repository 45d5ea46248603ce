// Package audit публикует события финансовых действий операторов в Kafka.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc/sheetmusic-backoffice/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer - имя сервиса в конверте события
const Producer = "sheetmusic-backoffice"

// messageWriter - часть *kafka.Writer, которую использует публикатор
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher реализует domain.AuditPublisher
type KafkaPublisher struct {
	w      messageWriter
	logger *zap.Logger
	now    func() time.Time
}

// NewKafkaWriter создает writer для топика аудита
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// NewKafkaPublisher создает новый KafkaPublisher
func NewKafkaPublisher(w messageWriter, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{w: w, logger: logger, now: time.Now}
}

// Publish дополняет конверт и синхронно пишет его в топик
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.AuditEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.EventVersion == 0 {
		event.EventVersion = domain.AuditEventVersion
	}
	if event.Producer == "" {
		event.Producer = Producer
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("audit: failed to encode event %s: %w", event.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit: failed to publish event %s: %w", event.EventType, err)
	}

	p.logger.Debug("audit event published",
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
	)
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher используется, когда брокеры не настроены
type NopPublisher struct{}

// Publish ничего не делает
func (NopPublisher) Publish(context.Context, domain.AuditEvent) error { return nil }
