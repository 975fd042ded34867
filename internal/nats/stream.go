package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// StreamName is the JetStream stream holding submitted orders.
const StreamName = "macroplate_orders"

// Order event types
const (
	EventSubmitted = "submitted"
)

// SubjectForOrder returns the subject an order event is published on.
// Example: "macroplate.orders.94107.submitted"
func SubjectForOrder(zip, event string) string {
	if zip == "" {
		zip = "unknown"
	}
	return fmt.Sprintf("macroplate.orders.%s.%s", zip, event)
}

// SetupStream creates or updates the order stream. Orders are kept in
// memory only and expire after a day.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{"macroplate.orders.>"},
		Storage:  jetstream.MemoryStorage,
		MaxAge:   24 * time.Hour,
	})
}

// ReadAll fetches every message currently in the stream, oldest first.
func ReadAll(ctx context.Context, stream jetstream.Stream) ([]jetstream.Msg, error) {
	info, err := stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("stream info: %w", err)
	}
	n := int(info.State.Msgs)
	if n == 0 {
		return nil, nil
	}

	cons, err := stream.OrderedConsumer(ctx, jetstream.OrderedConsumerConfig{
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("creating consumer: %w", err)
	}

	batch, err := cons.Fetch(n, jetstream.FetchMaxWait(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	msgs := make([]jetstream.Msg, 0, n)
	for msg := range batch.Messages() {
		msgs = append(msgs, msg)
	}
	if err := batch.Error(); err != nil {
		return msgs, fmt.Errorf("reading batch: %w", err)
	}
	return msgs, nil
}
