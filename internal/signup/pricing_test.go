package signup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuoteDraft(t *testing.T) {
	t.Parallel()

	q := QuoteDraft(OrderDraft{
		SelectedPlan:    PlanHighProtein,
		DailyMeals:      "lunch-dinner",
		WeeklyFrequency: "weekdays",
		Addons:          Addons{Snacks: true, Smoothies: true},
	})
	require.Equal(t, 10, q.MealsPerWeek)
	require.Equal(t, "149.90", q.Meals.StringFixed(2))
	require.Equal(t, "54.90", q.Addons.StringFixed(2))
	require.Equal(t, "$204.80", FormatPrice(q.Total))
}

func TestQuoteDraft_Fallbacks(t *testing.T) {
	t.Parallel()

	q := QuoteDraft(OrderDraft{})
	require.Equal(t, PlanTraditional, q.Plan.ID)
	require.Equal(t, 2, q.MealsPerDay)
	require.Equal(t, 5, q.DaysPerWeek)
	require.Equal(t, "$129.90", FormatPrice(q.Total))
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	d, err := ParseWeekday("Sunday")
	require.NoError(t, err)
	require.Equal(t, time.Sunday, d)

	d, err = ParseWeekday("wed")
	require.NoError(t, err)
	require.Equal(t, time.Wednesday, d)

	_, err = ParseWeekday("someday")
	require.Error(t, err)
}

func TestUpcomingDeliveryDates(t *testing.T) {
	t.Parallel()

	// 2026-10-18 is a Sunday
	from := time.Date(2026, 10, 18, 15, 4, 0, 0, time.UTC)

	require.Equal(t, []string{"2026-10-25", "2026-11-01", "2026-11-08"},
		UpcomingDeliveryDates(from, time.Sunday, 3))
	require.Equal(t, []string{"2026-10-19", "2026-10-26"},
		UpcomingDeliveryDates(from, time.Monday, 2))
	require.Nil(t, UpcomingDeliveryDates(from, time.Monday, 0))
}

func TestFormatDeliveryDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Sun, Oct 25", FormatDeliveryDate("2026-10-25"))
	require.Equal(t, "Every Sunday", FormatDeliveryDate("sunday"))
	require.Equal(t, "soon", FormatDeliveryDate("soon"))
}
