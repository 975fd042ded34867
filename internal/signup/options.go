package signup

import (
	"time"

	"github.com/shopspring/decimal"
)

// Option is a selectable choice on a multi-select screen.
type Option struct {
	ID          string
	Label       string
	Description string
}

// SentinelEverything is the "no restriction" meal preference.
const SentinelEverything = "everything"

// DefaultGoalLimit caps how many goals may be selected.
const DefaultGoalLimit = 3

var (
	// GoalOptions are the goals offered on the goals screen.
	GoalOptions = []Option{
		{ID: "health", Label: "Improve my health"},
		{ID: "weight", Label: "Lose weight"},
		{ID: "muscle", Label: "Build muscle"},
		{ID: "clean", Label: "Eat cleaner"},
		{ID: "time", Label: "Save time"},
		{ID: "energy", Label: "Boost energy"},
	}

	// MealOptions are the meal styles offered on the meal preferences screen.
	MealOptions = []Option{
		{ID: SentinelEverything, Label: "I eat everything"},
		{ID: "calorie-smart", Label: "Calorie smart"},
		{ID: "keto", Label: "Keto"},
		{ID: "high-protein", Label: "High protein"},
		{ID: "low-carb", Label: "Low carb"},
		{ID: "glp1", Label: "GLP-1 support"},
		{ID: "fiber", Label: "Fiber filled"},
		{ID: "plant-based", Label: "Plant based"},
	}

	// AllergyOptions are the allergens offered on the allergies screen.
	AllergyOptions = []Option{
		{ID: "shellfish", Label: "Shellfish"},
		{ID: "nuts", Label: "Tree nuts"},
		{ID: "peanuts", Label: "Peanuts"},
		{ID: "wheat", Label: "Wheat"},
		{ID: "dairy", Label: "Dairy"},
		{ID: "eggs", Label: "Eggs"},
		{ID: "fish", Label: "Fish"},
		{ID: "soy", Label: "Soy"},
	}

	// ProteinOptions are the proteins a customer may exclude.
	ProteinOptions = []Option{
		{ID: "pork", Label: "Pork"},
		{ID: "fish", Label: "Fish"},
		{ID: "beef", Label: "Beef"},
		{ID: "chicken", Label: "Chicken"},
	}

	// PaymentOptions are the accepted payment methods. Card is the default.
	PaymentOptions = []Option{
		{ID: PaymentCard, Label: "Card"},
		{ID: "apple-pay", Label: "Apple Pay", Description: "You'll be prompted to confirm with Apple Pay when you place your order."},
		{ID: "paypal", Label: "PayPal", Description: "You'll be redirected to PayPal to complete your payment."},
	}
)

// PaymentCard is the payment method that requires card details.
const PaymentCard = "card"

// DailyMealPlan is a meals-per-day option.
type DailyMealPlan struct {
	ID          string
	Title       string
	Description string
	Meals       []string
}

// DailyMealPlans lists the meals-per-day options. lunch-dinner is the default.
var DailyMealPlans = []DailyMealPlan{
	{ID: "lunch", Title: "Just Lunch", Description: "1 meal per day", Meals: []string{"lunch"}},
	{ID: "lunch-dinner", Title: "Lunch & Dinner", Description: "2 meals per day", Meals: []string{"lunch", "dinner"}},
	{ID: "all-meals", Title: "All Three Meals", Description: "3 meals per day", Meals: []string{"breakfast", "lunch", "dinner"}},
}

// DefaultDailyMeals is preselected on the daily meals screen.
const DefaultDailyMeals = "lunch-dinner"

// Frequency is a days-per-week option.
type Frequency struct {
	ID          string
	Title       string
	Description string
	Days        []time.Weekday
}

// Frequencies lists the weekly delivery schedules. weekdays is the default.
var Frequencies = []Frequency{
	{ID: "three-days", Title: "3 Days", Description: "Perfect for trying it out", Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
	{ID: "weekdays", Title: "Weekdays", Description: "Monday through Friday", Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
	{ID: "every-day", Title: "Every Day", Description: "Full week coverage", Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}},
}

// DefaultFrequency is preselected on the weekly frequency screen.
const DefaultFrequency = "weekdays"

// DietPlan is a subscription plan with a per-meal price.
type DietPlan struct {
	ID           string
	Title        string
	Description  string
	PricePerMeal decimal.Decimal
}

// Plan identifiers produced by the recommendation.
const (
	PlanTraditional = "traditional"
	PlanHighProtein = "high-protein"
	PlanPaleo       = "paleo"
	PlanPaleoLite   = "paleo-lite"
	PlanVegetarian  = "vegetarian"
)

// DietPlans lists the plans offered on the plan selection screen.
var DietPlans = []DietPlan{
	{ID: PlanTraditional, Title: "Traditional", Description: "Balanced meals with variety", PricePerMeal: decimal.RequireFromString("12.99")},
	{ID: PlanHighProtein, Title: "High Protein", Description: "Extra protein for muscle building", PricePerMeal: decimal.RequireFromString("14.99")},
	{ID: PlanPaleo, Title: "Paleo", Description: "Whole foods, no grains or dairy", PricePerMeal: decimal.RequireFromString("15.99")},
	{ID: PlanPaleoLite, Title: "Paleo Lite", Description: "Lighter paleo portions", PricePerMeal: decimal.RequireFromString("13.99")},
	{ID: PlanVegetarian, Title: "Vegetarian", Description: "Plant-based protein meals", PricePerMeal: decimal.RequireFromString("12.99")},
}

// Addon prices per delivery day.
var (
	SnacksPrice    = decimal.RequireFromString("4.99")
	SmoothiesPrice = decimal.RequireFromString("5.99")
)

// DeliveryDayOptions are the weekdays offered for delivery. sunday is the default.
var DeliveryDayOptions = []Option{
	{ID: "sunday", Label: "Sun"},
	{ID: "monday", Label: "Mon"},
	{ID: "tuesday", Label: "Tue"},
	{ID: "wednesday", Label: "Wed"},
	{ID: "thursday", Label: "Thu"},
	{ID: "friday", Label: "Fri"},
	{ID: "saturday", Label: "Sat"},
}

// FindPlan looks up a diet plan by id.
func FindPlan(id string) (DietPlan, bool) {
	for _, p := range DietPlans {
		if p.ID == id {
			return p, true
		}
	}
	return DietPlan{}, false
}

// FindDailyMealPlan looks up a meals-per-day option by id.
func FindDailyMealPlan(id string) (DailyMealPlan, bool) {
	for _, p := range DailyMealPlans {
		if p.ID == id {
			return p, true
		}
	}
	return DailyMealPlan{}, false
}

// FindFrequency looks up a weekly frequency by id.
func FindFrequency(id string) (Frequency, bool) {
	for _, f := range Frequencies {
		if f.ID == id {
			return f, true
		}
	}
	return Frequency{}, false
}

// OptionLabel returns the label of id within options, or id itself.
func OptionLabel(options []Option, id string) string {
	for _, o := range options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}

// OptionIDs returns the identifiers of options.
func OptionIDs(options []Option) []string {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}
