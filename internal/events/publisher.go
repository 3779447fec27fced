// Package events publishes cart activity to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const EventTypeCartItemAdded = "CartItemAdded"

type CartItemAddedEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   CartItemPayload `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type CartItemPayload struct {
	SessionID string          `json:"session_id"`
	ProductID int64           `json:"product_id"`
	Category  string          `json:"category"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Publisher interface {
	PublishCartItemAdded(ctx context.Context, sessionID string, line model.LineItem) error
	Close() error
}

type Config struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaPublisher(cfg *Config) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	})
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, now: time.Now}
}

// PublishCartItemAdded writes one event keyed by session id so a session's
// events stay ordered within a partition.
func (p *KafkaPublisher) PublishCartItemAdded(ctx context.Context, sessionID string, line model.LineItem) error {
	event := CartItemAddedEvent{
		EventID:   uuid.New().String(),
		EventType: EventTypeCartItemAdded,
		Payload: CartItemPayload{
			SessionID: sessionID,
			ProductID: line.Product.ID,
			Category:  line.Product.Category,
			Qty:       line.Qty,
			UnitPrice: line.Product.Price,
		},
		Timestamp: p.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType, err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sessionID),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishCartItemAdded(context.Context, string, model.LineItem) error { return nil }
func (NopPublisher) Close() error                                                      { return nil }
