package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/nats"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/nats-io/nats.go/jetstream"
)

// BusSubmitter publishes orders to the JetStream order stream.
type BusSubmitter struct {
	js     jetstream.JetStream
	stream jetstream.Stream
	rules  signup.RecommendationRules
	now    func() time.Time
}

// NewBusSubmitter ensures the order stream exists and returns a submitter
// publishing to it.
func NewBusSubmitter(ctx context.Context, js jetstream.JetStream, rules signup.RecommendationRules) (*BusSubmitter, error) {
	stream, err := nats.SetupStream(ctx, js)
	if err != nil {
		return nil, fmt.Errorf("setting up order stream: %w", err)
	}
	return &BusSubmitter{js: js, stream: stream, rules: rules, now: time.Now}, nil
}

// Submit publishes the draft as a SubmittedOrder and waits for the stream
// acknowledgement.
func (s *BusSubmitter) Submit(ctx context.Context, draft signup.OrderDraft) (*Receipt, error) {
	order := NewSubmittedOrder(draft, s.rules.Recommend(draft), s.now())
	data, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshaling order: %w", err)
	}

	subject := nats.SubjectForOrder(draft.ZipCode, nats.EventSubmitted)
	if _, err := s.js.Publish(ctx, subject, data, jetstream.WithMsgID(order.OrderID)); err != nil {
		busLog().Error("Failed to publish order %s: %v", order.OrderID, err)
		return nil, fmt.Errorf("publishing order: %w", err)
	}
	busLog().Info("Order %s published to %s", order.Reference, subject)
	return order.Receipt(subject), nil
}

// Orders returns every order currently held by the stream, oldest first.
func (s *BusSubmitter) Orders(ctx context.Context) ([]SubmittedOrder, error) {
	msgs, err := nats.ReadAll(ctx, s.stream)
	if err != nil {
		return nil, err
	}
	out := make([]SubmittedOrder, 0, len(msgs))
	for _, msg := range msgs {
		var o SubmittedOrder
		if err := json.Unmarshal(msg.Data(), &o); err != nil {
			busLog().Warn("Skipping malformed order on %s: %v", msg.Subject(), err)
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func busLog() *logger.Logger {
	return logger.Default.With("orders")
}
