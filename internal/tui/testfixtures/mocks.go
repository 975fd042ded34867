// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// MockSubmitter stands in for the order bus so screens that submit can be
// driven without NATS. It is safe for concurrent use.
//
// Example usage:
//
//	func TestConfirmation(t *testing.T) {
//	    sub := testfixtures.NewMockSubmitter()
//	    sub.FailTimes = 1
//
//	    // Drive the screen...
//	    require.Len(t, sub.Submitted(), 1)
//	}
package testfixtures

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
)

// ErrSubmitUnavailable is returned by MockSubmitter while FailTimes is positive.
var ErrSubmitUnavailable = errors.New("order bus unavailable")

// MockSubmitter records submitted drafts and returns canned receipts.
type MockSubmitter struct {
	mu sync.Mutex

	// FailTimes makes the next n calls fail with ErrSubmitUnavailable.
	FailTimes int
	// Now stamps receipts. Defaults to a fixed time.
	Now time.Time

	calls     int
	submitted []signup.OrderDraft
}

// NewMockSubmitter creates a submitter that always succeeds.
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{
		Now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	}
}

// Submit implements orders.Submitter.
func (m *MockSubmitter) Submit(ctx context.Context, draft signup.OrderDraft) (*orders.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FailTimes > 0 {
		m.FailTimes--
		return nil, ErrSubmitUnavailable
	}
	m.submitted = append(m.submitted, draft.Clone())
	order := orders.NewSubmittedOrder(draft, signup.RecommendPlan(draft), m.Now)
	return order.Receipt(""), nil
}

// Calls returns how many times Submit was called, failures included.
func (m *MockSubmitter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Submitted returns the drafts accepted so far.
func (m *MockSubmitter) Submitted() []signup.OrderDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]signup.OrderDraft, len(m.submitted))
	copy(out, m.submitted)
	return out
}
