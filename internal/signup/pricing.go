package signup

import "github.com/shopspring/decimal"

// Quote is the weekly cost breakdown for a draft.
type Quote struct {
	Plan         DietPlan
	MealsPerDay  int
	DaysPerWeek  int
	MealsPerWeek int
	Meals        decimal.Decimal
	Addons       decimal.Decimal
	Total        decimal.Decimal
}

const (
	fallbackMealsPerDay = 2
	fallbackDaysPerWeek = 5
)

// QuoteDraft prices the draft's plan, schedule and addons for one week.
// Unknown identifiers fall back to the traditional plan, two meals a day
// and five days a week.
func QuoteDraft(d OrderDraft) Quote {
	plan, ok := FindPlan(d.SelectedPlan)
	if !ok {
		plan, _ = FindPlan(PlanTraditional)
	}
	mealsPerDay := fallbackMealsPerDay
	if p, ok := FindDailyMealPlan(d.DailyMeals); ok {
		mealsPerDay = len(p.Meals)
	}
	daysPerWeek := fallbackDaysPerWeek
	if f, ok := FindFrequency(d.WeeklyFrequency); ok {
		daysPerWeek = len(f.Days)
	}

	days := decimal.NewFromInt(int64(daysPerWeek))
	q := Quote{
		Plan:         plan,
		MealsPerDay:  mealsPerDay,
		DaysPerWeek:  daysPerWeek,
		MealsPerWeek: mealsPerDay * daysPerWeek,
		Addons:       decimal.Zero,
	}
	q.Meals = plan.PricePerMeal.Mul(decimal.NewFromInt(int64(q.MealsPerWeek)))
	if d.Addons.Snacks {
		q.Addons = q.Addons.Add(SnacksPrice.Mul(days))
	}
	if d.Addons.Smoothies {
		q.Addons = q.Addons.Add(SmoothiesPrice.Mul(days))
	}
	q.Total = q.Meals.Add(q.Addons)
	return q
}

// FormatPrice renders an amount as dollars with two decimals.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
