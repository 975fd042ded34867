// Package orders hands finalized signup drafts to the order-processing side.
package orders

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/rs/xid"
)

// Submitter accepts a finalized draft for processing.
type Submitter interface {
	Submit(ctx context.Context, draft signup.OrderDraft) (*Receipt, error)
}

// Receipt is returned once an order has been accepted.
type Receipt struct {
	OrderID     string    `json:"order_id"`
	Reference   string    `json:"reference"`
	Subject     string    `json:"subject,omitempty"`
	Plan        string    `json:"plan"`
	WeeklyTotal string    `json:"weekly_total"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmittedOrder is the event published for an accepted order. Card details
// are reduced to the masked number.
type SubmittedOrder struct {
	OrderID        string            `json:"order_id"`
	Reference      string            `json:"reference"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	Recommendation string            `json:"recommendation,omitempty"`
	WeeklyTotal    string            `json:"weekly_total"`
	MaskedCard     string            `json:"masked_card,omitempty"`
	Draft          signup.OrderDraft `json:"draft"`
}

// NewSubmittedOrder builds the event for draft with a fresh order id.
func NewSubmittedOrder(draft signup.OrderDraft, recommendation string, now time.Time) SubmittedOrder {
	id := xid.New().String()
	d := draft.Clone()
	masked := d.MaskedCard()
	d.Card = nil

	return SubmittedOrder{
		OrderID:        id,
		Reference:      Reference(d, id),
		SubmittedAt:    now.UTC(),
		Recommendation: recommendation,
		WeeklyTotal:    signup.FormatPrice(signup.QuoteDraft(d).Total),
		MaskedCard:     masked,
		Draft:          d,
	}
}

// Receipt returns the receipt for the order.
func (o SubmittedOrder) Receipt(subject string) *Receipt {
	return &Receipt{
		OrderID:     o.OrderID,
		Reference:   o.Reference,
		Subject:     subject,
		Plan:        o.Draft.SelectedPlan,
		WeeklyTotal: o.WeeklyTotal,
		SubmittedAt: o.SubmittedAt,
	}
}

// Reference builds a human-friendly order reference such as
// "high-protein-lee-4f2k9a" from the plan, the addressee's last name and the
// tail of the order id.
func Reference(d signup.OrderDraft, orderID string) string {
	parts := []string{d.SelectedPlan}
	if d.Address != nil {
		parts = append(parts, d.Address.LastName)
	}
	tail := orderID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	parts = append(parts, tail)
	return slug.Make(strings.Join(parts, " "))
}
