package testfixtures

import (
	"time"

	"github.com/macroplate/macroplate/internal/signup"
)

// Today is the fixed clock used by screen tests. It is a Sunday.
var Today = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// Clock returns Today.
func Clock() time.Time { return Today }

// PreferencesDraft has the preference steps filled in.
func PreferencesDraft() signup.OrderDraft {
	return signup.OrderDraft{
		ZipCode:         "94107",
		Goals:           []string{"muscle", "energy"},
		MealPreferences: []string{"high-protein"},
		Allergies:       []string{"peanuts"},
		AvoidedProteins: []string{"pork"},
		DailyMeals:      "lunch-dinner",
		WeeklyFrequency: "weekdays",
	}
}

// ReviewDraft has every step up to the review filled in.
func ReviewDraft() signup.OrderDraft {
	d := PreferencesDraft()
	d.SelectedPlan = signup.PlanHighProtein
	d.Addons = signup.Addons{Snacks: true}
	d.Email = "sam@example.com"
	d.Address = &signup.Address{
		FirstName: "Sam",
		LastName:  "Lee",
		Street:    "1 Market St",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94107",
	}
	d.DeliveryDate = "2026-10-25"
	d.DeliveryInstructions = "Leave at the front desk"
	return d
}

// CompleteDraft is a finalized draft paid by card.
func CompleteDraft() signup.OrderDraft {
	d := ReviewDraft()
	d.PaymentMethod = signup.PaymentCard
	d.Card = &signup.CardDetails{
		Number: "4242 4242 4242 4242",
		Expiry: "12/29",
		CVC:    "123",
		Name:   "Sam Lee",
	}
	return d
}
