package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_HandleMessage_DecodesEvent(t *testing.T) {
	c := &Consumer{log: zerolog.Nop()}

	want := EntityEvent{
		ID:         "a2e1a1cc-0c05-4f0e-9a0e-2c9a4f4a8d11",
		Type:       "created",
		Entity:     "booking",
		EntityID:   7,
		Email:      "jane.doe@example.com",
		OccurredAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	var got EntityEvent
	err = c.handleMessage(context.Background(), kafkaGo.Message{Value: payload},
		func(_ context.Context, event EntityEvent) error {
			got = event
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConsumer_HandleMessage_SkipsUndecodable(t *testing.T) {
	c := &Consumer{log: zerolog.Nop()}

	called := false
	err := c.handleMessage(context.Background(), kafkaGo.Message{Value: []byte("{not json")},
		func(context.Context, EntityEvent) error {
			called = true
			return nil
		})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestConsumer_HandleMessage_PropagatesHandlerError(t *testing.T) {
	c := &Consumer{log: zerolog.Nop()}

	wantErr := errors.New("sender down")
	err := c.handleMessage(context.Background(), kafkaGo.Message{Value: []byte(`{"entity":"customer"}`)},
		func(context.Context, EntityEvent) error {
			return wantErr
		})

	assert.ErrorIs(t, err, wantErr)
}
