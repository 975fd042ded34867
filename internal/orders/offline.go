package orders

import (
	"context"
	"time"

	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/signup"
)

// LogSubmitter accepts orders without handing them anywhere. It is used in
// offline mode.
type LogSubmitter struct {
	Rules signup.RecommendationRules
}

// Submit logs the order and returns a receipt.
func (s LogSubmitter) Submit(ctx context.Context, draft signup.OrderDraft) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	order := NewSubmittedOrder(draft, s.Rules.Recommend(draft), time.Now())
	logger.Info("Offline order %s accepted (%s, %s/week)", order.Reference, order.Draft.SelectedPlan, order.WeeklyTotal)
	return order.Receipt(""), nil
}
