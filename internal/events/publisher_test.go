package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishCartItemAdded(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	line := model.LineItem{
		Product: model.Product{ID: 3, Title: "Pulse Pro Smartwatch", Category: "Electronics", Price: decimal.NewFromInt(219)},
		Qty:     2,
	}
	require.NoError(t, p.PublishCartItemAdded(context.Background(), "session-1", line))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "session-1", string(msg.Key))

	var event CartItemAddedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventTypeCartItemAdded, event.EventType)
	assert.Equal(t, int64(3), event.Payload.ProductID)
	assert.Equal(t, "Electronics", event.Payload.Category)
	assert.Equal(t, 2, event.Payload.Qty)
	assert.True(t, event.Payload.UnitPrice.Equal(decimal.NewFromInt(219)))
	assert.True(t, event.Timestamp.Equal(fixed))
}

func TestPublishPropagatesWriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w)

	err := p.PublishCartItemAdded(context.Background(), "s", model.LineItem{Qty: 1})
	assert.EqualError(t, err, "broker down")
}

func TestClose(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, newKafkaPublisher(w).Close())
	assert.True(t, w.closed)

	assert.NoError(t, NopPublisher{}.Close())
}
