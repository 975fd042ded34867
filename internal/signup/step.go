// Package signup implements the signup wizard core: the step catalog, the
// order draft accumulated across steps, and the controller that sequences
// forward and backward navigation.
package signup

import (
	"fmt"
	"strings"
)

// Step identifies one screen in the signup flow.
type Step string

const (
	StepZipCode         Step = "zipcode"
	StepGoals           Step = "goals"
	StepMeals           Step = "meals"
	StepAllergies       Step = "allergies"
	StepProteins        Step = "proteins"
	StepDailyMeals      Step = "daily-meals"
	StepWeeklyFrequency Step = "weekly-frequency"
	StepPlanSelection   Step = "plan-selection"
	StepEmail           Step = "email"
	StepAddress         Step = "address"
	StepDeliveryDay     Step = "delivery-day"
	StepReview          Step = "review"
	StepPayment         Step = "payment"
	StepConfirmation    Step = "confirmation"
)

// knownSteps lists every step in its canonical order.
var knownSteps = []Step{
	StepZipCode,
	StepGoals,
	StepMeals,
	StepAllergies,
	StepProteins,
	StepDailyMeals,
	StepWeeklyFrequency,
	StepPlanSelection,
	StepEmail,
	StepAddress,
	StepDeliveryDay,
	StepReview,
	StepPayment,
	StepConfirmation,
}

// stepTitles holds the heading shown for each step.
var stepTitles = map[Step]string{
	StepZipCode:         "Where do you live?",
	StepGoals:           "What are your goals?",
	StepMeals:           "What meals do you prefer?",
	StepAllergies:       "Any food allergies?",
	StepProteins:        "Any proteins to avoid?",
	StepDailyMeals:      "How many meals per day?",
	StepWeeklyFrequency: "How many days per week?",
	StepPlanSelection:   "Based on your choices, we recommend",
	StepEmail:           "What's your email?",
	StepAddress:         "Delivery address",
	StepDeliveryDay:     "Best day for delivery?",
	StepReview:          "Review your order",
	StepPayment:         "Payment details",
	StepConfirmation:    "Thank you!",
}

// Title returns the human-readable heading for the step.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return string(s)
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	_, ok := stepTitles[s]
	return ok
}

// ParseStep converts a step identifier into a Step.
func ParseStep(id string) (Step, error) {
	s := Step(strings.TrimSpace(strings.ToLower(id)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown step %q", id)
	}
	return s, nil
}

// Catalog is the ordered list of steps a wizard walks through.
// Order defines the only valid forward and backward adjacency.
type Catalog []Step

// DefaultCatalog returns the full signup flow.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(knownSteps))
	copy(c, knownSteps)
	return c
}

// ParseCatalog builds a catalog from step identifiers and validates it.
func ParseCatalog(ids []string) (Catalog, error) {
	c := make(Catalog, 0, len(ids))
	for _, id := range ids {
		s, err := ParseStep(id)
		if err != nil {
			return nil, err
		}
		c = append(c, s)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the catalog is non-empty, has no duplicates, contains
// only known steps and ends with the confirmation step.
func (c Catalog) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("catalog needs at least two steps, got %d", len(c))
	}
	seen := make(map[Step]bool, len(c))
	for i, s := range c {
		if !s.Valid() {
			return fmt.Errorf("catalog entry %d: unknown step %q", i, s)
		}
		if seen[s] {
			return fmt.Errorf("catalog entry %d: duplicate step %q", i, s)
		}
		seen[s] = true
		if s == StepConfirmation && i != len(c)-1 {
			return fmt.Errorf("catalog entry %d: %s must be the last step", i, StepConfirmation)
		}
	}
	if c[len(c)-1] != StepConfirmation {
		return fmt.Errorf("catalog must end with %s", StepConfirmation)
	}
	return nil
}

// Index returns the position of s in the catalog, or -1.
func (c Catalog) Index(s Step) int {
	for i, step := range c {
		if step == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s is part of the catalog.
func (c Catalog) Contains(s Step) bool {
	return c.Index(s) >= 0
}

// Strings returns the catalog as identifiers.
func (c Catalog) Strings() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = string(s)
	}
	return out
}
