package wizard

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
)

// Screen is the component rendering one step. A screen holds its own editing
// state and reports completion with StepCompletedMsg.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	// Hints returns key/description pairs for the hint bar.
	Hints() []string
	// Ready reports whether the local input is valid, enabling continue.
	Ready() bool
}

// textCapturer is implemented by screens that are currently capturing typed
// text, so printable global keys are left to them.
type textCapturer interface {
	Typing() bool
}

// screenEnv is what a screen gets to pre-populate its inputs.
type screenEnv struct {
	draft          signup.OrderDraft
	recommendation string
	opts           *Options
	rawReview      bool
	lastReviewed   string
}

func (e screenEnv) now() time.Time {
	if e.opts != nil && e.opts.Now != nil {
		return e.opts.Now()
	}
	return time.Now()
}

// newScreen builds the screen for step.
func newScreen(step signup.Step, env screenEnv) (Screen, error) {
	switch step {
	case signup.StepZipCode:
		return NewZipStep(env.draft.ZipCode), nil
	case signup.StepGoals:
		return NewGoalsStep(env.draft.Goals, env.opts.GoalLimit), nil
	case signup.StepMeals:
		return NewMealsStep(env.draft.MealPreferences), nil
	case signup.StepAllergies:
		return NewAllergiesStep(env.draft.Allergies), nil
	case signup.StepProteins:
		return NewProteinsStep(env.draft.AvoidedProteins), nil
	case signup.StepDailyMeals:
		return NewDailyMealsStep(env.draft.DailyMeals), nil
	case signup.StepWeeklyFrequency:
		return NewFrequencyStep(env.draft.WeeklyFrequency), nil
	case signup.StepPlanSelection:
		return NewPlanStep(env.draft, env.recommendation), nil
	case signup.StepEmail:
		return NewEmailStep(env.draft.Email, env.draft.MarketingOptIn), nil
	case signup.StepAddress:
		return NewAddressStep(env.draft.Address, env.draft.ZipCode), nil
	case signup.StepDeliveryDay:
		return NewDeliveryStep(env.draft, env.now(), env.opts.DeliveryDay, env.opts.DeliveryWeeks)
	case signup.StepReview:
		return NewReviewStep(env.draft, env.opts.SummaryTemplate, env.lastReviewed, env.rawReview), nil
	case signup.StepPayment:
		return NewPaymentStep(env.draft.PaymentMethod, env.draft.Card), nil
	case signup.StepConfirmation:
		return NewConfirmationStep(env.draft, env.opts), nil
	}
	return nil, fmt.Errorf("no screen for step %q", step)
}
