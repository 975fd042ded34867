package signup

import "slices"

// OrderDraft accumulates the answers collected so far in a signup session.
// Every step owns one field group and overwrites it as a whole.
type OrderDraft struct {
	ZipCode string `json:"zip_code,omitempty"`

	Goals           []string `json:"goals,omitempty"`
	MealPreferences []string `json:"meal_preferences,omitempty"`
	Allergies       []string `json:"allergies,omitempty"`
	AvoidedProteins []string `json:"avoided_proteins,omitempty"`

	DailyMeals      string `json:"daily_meals,omitempty"`
	WeeklyFrequency string `json:"weekly_frequency,omitempty"`

	SelectedPlan string `json:"selected_plan,omitempty"`
	Addons       Addons `json:"addons"`

	Email          string `json:"email,omitempty"`
	MarketingOptIn bool   `json:"marketing_opt_in"`

	Address *Address `json:"address,omitempty"`

	DeliveryDate         string `json:"delivery_date,omitempty"`
	DeliveryInstructions string `json:"delivery_instructions,omitempty"`

	PaymentMethod string       `json:"payment_method,omitempty"`
	Card          *CardDetails `json:"card,omitempty"`
}

// Addons are optional extras layered on top of the selected plan.
type Addons struct {
	Snacks    bool `json:"snacks"`
	Smoothies bool `json:"smoothies"`
}

// Address is a structured delivery address. Apt is the only optional field.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	Apt       string `json:"apt,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// CardDetails holds card input as typed (already formatted) by the user.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
	Name   string `json:"name"`
}

// Clone returns a deep copy of the draft.
func (d OrderDraft) Clone() OrderDraft {
	out := d
	out.Goals = slices.Clone(d.Goals)
	out.MealPreferences = slices.Clone(d.MealPreferences)
	out.Allergies = slices.Clone(d.Allergies)
	out.AvoidedProteins = slices.Clone(d.AvoidedProteins)
	if d.Address != nil {
		a := *d.Address
		out.Address = &a
	}
	if d.Card != nil {
		c := *d.Card
		out.Card = &c
	}
	return out
}

// FullName returns the addressee's name, or "" when no address is set.
func (d OrderDraft) FullName() string {
	if d.Address == nil {
		return ""
	}
	return d.Address.FirstName + " " + d.Address.LastName
}

// MaskedCard returns the card number with all but the last four digits hidden.
func (d OrderDraft) MaskedCard() string {
	if d.Card == nil {
		return ""
	}
	digits := digitsOnly(d.Card.Number)
	if len(digits) <= 4 {
		return digits
	}
	return "•••• " + digits[len(digits)-4:]
}

// Masked returns a copy of the draft safe to display or log: the card number
// is reduced to its last four digits and the CVC is hidden.
func (d OrderDraft) Masked() OrderDraft {
	out := d.Clone()
	if out.Card != nil {
		out.Card.Number = d.MaskedCard()
		out.Card.CVC = "•••"
	}
	return out
}
