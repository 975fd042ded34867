package signup

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Payload is the finalized answer a screen hands to the controller when its
// step completes. Each payload type belongs to exactly one step and writes
// only that step's fields.
type Payload interface {
	Step() Step
	apply(d *OrderDraft)
}

// ZipPayload completes the zipcode step.
type ZipPayload struct {
	ZipCode string `json:"zip_code"`
}

func (ZipPayload) Step() Step { return StepZipCode }

func (p ZipPayload) apply(d *OrderDraft) { d.ZipCode = p.ZipCode }

// GoalsPayload completes the goals step.
type GoalsPayload struct {
	Goals []string `json:"goals"`
}

func (GoalsPayload) Step() Step { return StepGoals }

func (p GoalsPayload) apply(d *OrderDraft) { d.Goals = slices.Clone(p.Goals) }

// MealsPayload completes the meal preferences step.
type MealsPayload struct {
	MealPreferences []string `json:"meal_preferences"`
}

func (MealsPayload) Step() Step { return StepMeals }

func (p MealsPayload) apply(d *OrderDraft) { d.MealPreferences = slices.Clone(p.MealPreferences) }

// AllergiesPayload completes the allergies step.
type AllergiesPayload struct {
	Allergies []string `json:"allergies"`
}

func (AllergiesPayload) Step() Step { return StepAllergies }

func (p AllergiesPayload) apply(d *OrderDraft) { d.Allergies = slices.Clone(p.Allergies) }

// ProteinsPayload completes the protein avoidance step.
type ProteinsPayload struct {
	AvoidedProteins []string `json:"avoided_proteins"`
}

func (ProteinsPayload) Step() Step { return StepProteins }

func (p ProteinsPayload) apply(d *OrderDraft) { d.AvoidedProteins = slices.Clone(p.AvoidedProteins) }

// DailyMealsPayload completes the daily meals step.
type DailyMealsPayload struct {
	Plan string `json:"plan"`
}

func (DailyMealsPayload) Step() Step { return StepDailyMeals }

func (p DailyMealsPayload) apply(d *OrderDraft) { d.DailyMeals = p.Plan }

// WeeklyFrequencyPayload completes the weekly frequency step.
type WeeklyFrequencyPayload struct {
	Frequency string `json:"frequency"`
}

func (WeeklyFrequencyPayload) Step() Step { return StepWeeklyFrequency }

func (p WeeklyFrequencyPayload) apply(d *OrderDraft) { d.WeeklyFrequency = p.Frequency }

// PlanPayload completes the plan selection step.
type PlanPayload struct {
	Plan   string `json:"plan"`
	Addons Addons `json:"addons"`
}

func (PlanPayload) Step() Step { return StepPlanSelection }

func (p PlanPayload) apply(d *OrderDraft) {
	d.SelectedPlan = p.Plan
	d.Addons = p.Addons
}

// EmailPayload completes the email step.
type EmailPayload struct {
	Email          string `json:"email"`
	MarketingOptIn bool   `json:"marketing_opt_in"`
}

func (EmailPayload) Step() Step { return StepEmail }

func (p EmailPayload) apply(d *OrderDraft) {
	d.Email = p.Email
	d.MarketingOptIn = p.MarketingOptIn
}

// AddressPayload completes the address step.
type AddressPayload struct {
	Address Address `json:"address"`
}

func (AddressPayload) Step() Step { return StepAddress }

func (p AddressPayload) apply(d *OrderDraft) {
	a := p.Address
	d.Address = &a
}

// DeliveryPayload completes the delivery day step.
type DeliveryPayload struct {
	Date         string `json:"date"`
	Instructions string `json:"instructions"`
}

func (DeliveryPayload) Step() Step { return StepDeliveryDay }

func (p DeliveryPayload) apply(d *OrderDraft) {
	d.DeliveryDate = p.Date
	d.DeliveryInstructions = p.Instructions
}

// ReviewPayload acknowledges the order review. It carries no fields.
type ReviewPayload struct{}

func (ReviewPayload) Step() Step { return StepReview }

func (ReviewPayload) apply(*OrderDraft) {}

// PaymentPayload completes the payment step. Card is nil for wallet methods.
type PaymentPayload struct {
	Method string       `json:"method"`
	Card   *CardDetails `json:"card,omitempty"`
}

func (PaymentPayload) Step() Step { return StepPayment }

func (p PaymentPayload) apply(d *OrderDraft) {
	d.PaymentMethod = p.Method
	d.Card = nil
	if p.Card != nil {
		c := *p.Card
		d.Card = &c
	}
}

// DecodePayload decodes a JSON payload for the given step.
func DecodePayload(step Step, data []byte) (Payload, error) {
	var p Payload
	switch step {
	case StepZipCode:
		p = &ZipPayload{}
	case StepGoals:
		p = &GoalsPayload{}
	case StepMeals:
		p = &MealsPayload{}
	case StepAllergies:
		p = &AllergiesPayload{}
	case StepProteins:
		p = &ProteinsPayload{}
	case StepDailyMeals:
		p = &DailyMealsPayload{}
	case StepWeeklyFrequency:
		p = &WeeklyFrequencyPayload{}
	case StepPlanSelection:
		p = &PlanPayload{}
	case StepEmail:
		p = &EmailPayload{}
	case StepAddress:
		p = &AddressPayload{}
	case StepDeliveryDay:
		p = &DeliveryPayload{}
	case StepReview:
		return ReviewPayload{}, nil
	case StepPayment:
		p = &PaymentPayload{}
	default:
		return nil, fmt.Errorf("step %q takes no payload", step)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", step, err)
		}
	}
	return deref(p), nil
}

// deref turns the pointer used for decoding back into a value payload.
func deref(p Payload) Payload {
	switch v := p.(type) {
	case *ZipPayload:
		return *v
	case *GoalsPayload:
		return *v
	case *MealsPayload:
		return *v
	case *AllergiesPayload:
		return *v
	case *ProteinsPayload:
		return *v
	case *DailyMealsPayload:
		return *v
	case *WeeklyFrequencyPayload:
		return *v
	case *PlanPayload:
		return *v
	case *EmailPayload:
		return *v
	case *AddressPayload:
		return *v
	case *DeliveryPayload:
		return *v
	case *PaymentPayload:
		return *v
	}
	return p
}
