package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(DefaultCatalog(), DefaultRecommendationRules())
	require.NoError(t, err)
	return c
}

func TestNewController_StartsAtFirstStep(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.Equal(t, StepZipCode, c.Current())
	require.True(t, c.IsInitial())
	require.False(t, c.IsTerminal())
	require.Equal(t, OrderDraft{}, c.Draft())
}

func TestNewController_RejectsInvalidCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewController(Catalog{StepZipCode}, DefaultRecommendationRules())
	require.Error(t, err)

	_, err = NewController(Catalog{StepConfirmation, StepZipCode}, DefaultRecommendationRules())
	require.Error(t, err)
}

func TestAdvance_ZipCodeMovesToGoals(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))

	require.Equal(t, StepGoals, c.Current())
	require.Equal(t, "94107", c.Draft().ZipCode)
}

func TestAdvance_RejectsMismatchedStep(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	err := c.Advance(StepGoals, GoalsPayload{Goals: []string{"health"}})
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Nothing changed
	require.Equal(t, StepZipCode, c.Current())
	require.Empty(t, c.Draft().Goals)
}

func TestAdvance_RejectsForeignPayload(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	err := c.Advance(StepZipCode, GoalsPayload{Goals: []string{"health"}})
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.ErrorIs(t, c.Advance(StepZipCode, nil), ErrInvalidTransition)
	require.Equal(t, StepZipCode, c.Current())
}

func TestRetreat_AtInitialStepFails(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.ErrorIs(t, c.Retreat(), ErrInvalidTransition)
	require.Equal(t, StepZipCode, c.Current())
}

func TestRetreat_KeepsDraft(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))
	require.NoError(t, c.Advance(StepGoals, GoalsPayload{Goals: []string{"health", "muscle"}}))
	require.Equal(t, StepMeals, c.Current())

	before := c.Draft()
	require.NoError(t, c.Retreat())
	require.Equal(t, StepGoals, c.Current())
	require.Equal(t, before, c.Draft())

	// Re-completing the step overwrites its field group
	require.NoError(t, c.Advance(StepGoals, GoalsPayload{Goals: []string{"energy"}}))
	require.Equal(t, []string{"energy"}, c.Draft().Goals)
	require.Equal(t, "94107", c.Draft().ZipCode)
}

func TestAdvance_TerminalStepFails(t *testing.T) {
	t.Parallel()

	c, err := NewController(Catalog{StepZipCode, StepConfirmation}, DefaultRecommendationRules())
	require.NoError(t, err)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "10001"}))
	require.True(t, c.IsTerminal())
	require.True(t, c.Finalized())

	err = c.Advance(StepConfirmation, ReviewPayload{})
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDraft_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))
	require.NoError(t, c.Advance(StepGoals, GoalsPayload{Goals: []string{"health"}}))

	d := c.Draft()
	d.Goals[0] = "tampered"
	require.Equal(t, []string{"health"}, c.Draft().Goals)
}

func TestAdvance_PayloadSliceNotAliased(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))
	goals := []string{"health"}
	require.NoError(t, c.Advance(StepGoals, GoalsPayload{Goals: goals}))
	goals[0] = "tampered"
	require.Equal(t, []string{"health"}, c.Draft().Goals)
}

func TestObserve_ReceivesTransitions(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	var got []Transition
	c.Observe(func(tr Transition, d OrderDraft) {
		got = append(got, tr)
	})

	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))
	require.NoError(t, c.Retreat())
	require.Error(t, c.Retreat())

	require.Equal(t, []Transition{
		{From: StepZipCode, To: StepGoals, Direction: Forward},
		{From: StepGoals, To: StepZipCode, Direction: Backward},
	}, got)
}

func TestReset(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	require.NoError(t, c.Advance(StepZipCode, ZipPayload{ZipCode: "94107"}))
	c.Reset()
	require.Equal(t, StepZipCode, c.Current())
	require.Equal(t, OrderDraft{}, c.Draft())
}

// TestController_EndToEnd walks the questionnaire up to plan selection and
// checks the recommendation for an unrestricted eater.
func TestController_EndToEnd(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	steps := []Payload{
		ZipPayload{ZipCode: "94107"},
		GoalsPayload{Goals: []string{"health"}},
		MealsPayload{MealPreferences: []string{SentinelEverything}},
		AllergiesPayload{},
		ProteinsPayload{},
		DailyMealsPayload{Plan: "lunch-dinner"},
		WeeklyFrequencyPayload{Frequency: "weekdays"},
	}
	for _, p := range steps {
		require.NoError(t, c.Advance(p.Step(), p))
	}

	require.Equal(t, StepPlanSelection, c.Current())
	require.Equal(t, PlanTraditional, c.Recommendation())

	d := c.Draft()
	assert.Equal(t, "94107", d.ZipCode)
	assert.Equal(t, []string{"health"}, d.Goals)
	assert.Equal(t, []string{SentinelEverything}, d.MealPreferences)
	assert.Empty(t, d.Allergies)
	assert.Empty(t, d.AvoidedProteins)
	assert.Equal(t, "lunch-dinner", d.DailyMeals)
	assert.Equal(t, "weekdays", d.WeeklyFrequency)

	rest := []Payload{
		PlanPayload{Plan: PlanTraditional, Addons: Addons{Snacks: true}},
		EmailPayload{Email: "sam@example.com", MarketingOptIn: true},
		AddressPayload{Address: Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", City: "SF", State: "CA", ZipCode: "94107"}},
		DeliveryPayload{Date: "2026-10-25", Instructions: "Leave at door"},
		ReviewPayload{},
		PaymentPayload{Method: "paypal"},
	}
	for _, p := range rest {
		require.NoError(t, c.Advance(p.Step(), p))
	}
	require.True(t, c.Finalized())
	require.Equal(t, StepConfirmation, c.Current())
	require.Equal(t, "Sam Lee", c.Draft().FullName())
	require.Equal(t, "paypal", c.Draft().PaymentMethod)
	require.Nil(t, c.Draft().Card)
}

func checkoutPayloads() []Payload {
	return []Payload{
		ZipPayload{ZipCode: "94107"},
		GoalsPayload{Goals: []string{"muscle", "energy"}},
		MealsPayload{MealPreferences: []string{"keto"}},
		AllergiesPayload{Allergies: []string{"dairy"}},
		ProteinsPayload{AvoidedProteins: []string{"pork"}},
		DailyMealsPayload{Plan: "all-meals"},
		WeeklyFrequencyPayload{Frequency: "three-days"},
		PlanPayload{Plan: PlanHighProtein, Addons: Addons{Smoothies: true}},
		EmailPayload{Email: "sam@example.com"},
		AddressPayload{Address: Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", City: "SF", State: "CA", ZipCode: "94107"}},
		DeliveryPayload{Date: "2026-10-25"},
		ReviewPayload{},
		PaymentPayload{Method: PaymentCard, Card: &CardDetails{Number: "4242 4242 4242 4242", Expiry: "12/29", CVC: "123", Name: "Sam Lee"}},
	}
}

func TestAdvance_PointerAndDraftFollowCatalog(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	catalog := c.Catalog()
	payloads := checkoutPayloads()
	require.Len(t, payloads, len(catalog)-1)

	var want OrderDraft
	for n, p := range payloads {
		require.Equal(t, catalog[n], c.Current())
		require.Equal(t, want, c.Draft(), "draft before step %s", catalog[n])

		require.NoError(t, c.Advance(p.Step(), p))
		p.apply(&want)
		require.Equal(t, catalog[n+1], c.Current())
	}
	require.True(t, c.IsTerminal())
	require.Equal(t, want, c.Draft())
}

func TestRetreatThenAdvance_RestoresState(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	payloads := checkoutPayloads()
	for n, p := range payloads {
		require.NoError(t, c.Advance(p.Step(), p))

		pos, draft := c.Position(), c.Draft()
		require.NoError(t, c.Retreat())
		require.Equal(t, p.Step(), c.Current())
		require.NoError(t, c.Advance(p.Step(), payloads[n]))

		assert.Equal(t, pos, c.Position())
		assert.Equal(t, draft, c.Draft())
	}
}
