package signup

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeZip strips non-digits and truncates to five characters.
func NormalizeZip(s string) string {
	d := digitsOnly(s)
	if len(d) > 5 {
		d = d[:5]
	}
	return d
}

// ValidateZip requires a five digit ZIP code.
func ValidateZip(zip string) error {
	if len(zip) != 5 || digitsOnly(zip) != zip {
		return errors.New("Please enter a valid 5-digit ZIP code")
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

// ValidateGoals requires at least one goal and at most limit.
func ValidateGoals(goals []string, limit int) error {
	if len(goals) == 0 {
		return errors.New("Select at least one goal")
	}
	if limit > 0 && len(goals) > limit {
		return fmt.Errorf("Select up to %d goals", limit)
	}
	return nil
}

// Validate reports the first missing required field.
func (a Address) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"first name", a.FirstName},
		{"last name", a.LastName},
		{"street address", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"ZIP code", a.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}

// Validate checks card details as formatted by the payment screen.
func (c CardDetails) Validate() error {
	switch {
	case len(digitsOnly(c.Number)) < 15:
		return errors.New("card number is too short")
	case len(c.Expiry) < 5:
		return errors.New("expiry must be MM/YY")
	case len(c.CVC) < 3:
		return errors.New("CVC must be at least 3 digits")
	case strings.TrimSpace(c.Name) == "":
		return errors.New("cardholder name is required")
	}
	return nil
}

// ValidatePayment requires valid card details only for card payments.
func ValidatePayment(method string, card *CardDetails) error {
	if method != PaymentCard {
		return nil
	}
	if card == nil {
		return errors.New("card details are required")
	}
	return card.Validate()
}

// ValidatePayload runs the checks a screen performs before completing its
// step. Remote callers send payloads that never passed through a screen, so
// they are checked here before reaching the controller.
func ValidatePayload(p Payload, goalLimit int) error {
	switch v := p.(type) {
	case ZipPayload:
		return ValidateZip(v.ZipCode)
	case GoalsPayload:
		if err := ValidateGoals(v.Goals, goalLimit); err != nil {
			return err
		}
		return knownOptions("goal", v.Goals, GoalOptions)
	case MealsPayload:
		if len(v.MealPreferences) == 0 {
			return errors.New("Select at least one meal preference")
		}
		if len(v.MealPreferences) > 1 && slices.Contains(v.MealPreferences, SentinelEverything) {
			return fmt.Errorf("%q cannot be combined with other preferences", SentinelEverything)
		}
		return knownOptions("meal preference", v.MealPreferences, MealOptions)
	case AllergiesPayload:
		return knownOptions("allergy", v.Allergies, AllergyOptions)
	case ProteinsPayload:
		return knownOptions("protein", v.AvoidedProteins, ProteinOptions)
	case DailyMealsPayload:
		if _, ok := FindDailyMealPlan(v.Plan); !ok {
			return fmt.Errorf("unknown daily meal plan %q", v.Plan)
		}
	case WeeklyFrequencyPayload:
		if _, ok := FindFrequency(v.Frequency); !ok {
			return fmt.Errorf("unknown weekly frequency %q", v.Frequency)
		}
	case PlanPayload:
		if _, ok := FindPlan(v.Plan); !ok {
			return fmt.Errorf("unknown plan %q", v.Plan)
		}
	case EmailPayload:
		return ValidateEmail(v.Email)
	case AddressPayload:
		if err := v.Address.Validate(); err != nil {
			return err
		}
		return ValidateZip(v.Address.ZipCode)
	case DeliveryPayload:
		if _, err := time.Parse(DateLayout, v.Date); err != nil {
			// A recurring weekday id is the other accepted form.
			if _, werr := ParseWeekday(v.Date); werr != nil {
				return fmt.Errorf("delivery date must be YYYY-MM-DD or a weekday: %w", err)
			}
		}
	case PaymentPayload:
		if !slices.Contains(OptionIDs(PaymentOptions), v.Method) {
			return fmt.Errorf("unknown payment method %q", v.Method)
		}
		return ValidatePayment(v.Method, v.Card)
	case ReviewPayload:
	case nil:
		return errors.New("payload is required")
	}
	return nil
}

// knownOptions requires every id to come from options, at most once.
func knownOptions(kind string, ids []string, options []Option) error {
	known := OptionIDs(options)
	for i, id := range ids {
		if !slices.Contains(known, id) {
			return fmt.Errorf("unknown %s %q", kind, id)
		}
		if slices.Contains(ids[:i], id) {
			return fmt.Errorf("%s %q selected more than once", kind, id)
		}
	}
	return nil
}

// FormatCardNumber keeps up to 16 digits grouped in fours.
func FormatCardNumber(s string) string {
	d := digitsOnly(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry keeps up to four digits formatted as MM/YY.
func FormatExpiry(s string) string {
	d := digitsOnly(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) > 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// FormatCVC keeps up to four digits.
func FormatCVC(s string) string {
	d := digitsOnly(s)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
