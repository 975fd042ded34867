package signup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommendPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft OrderDraft
		want  string
	}{
		{"empty draft", OrderDraft{}, PlanTraditional},
		{"vegetarian", OrderDraft{AvoidedProteins: []string{"pork", "beef", "chicken"}}, PlanVegetarian},
		{"partial avoidance", OrderDraft{AvoidedProteins: []string{"beef", "chicken"}}, PlanTraditional},
		{"muscle goal", OrderDraft{Goals: []string{"health", "muscle"}}, PlanHighProtein},
		{"dairy allergy", OrderDraft{Allergies: []string{"dairy"}}, PlanPaleo},
		{"vegetarian beats protein", OrderDraft{
			Goals:           []string{"muscle"},
			AvoidedProteins: []string{"beef", "chicken", "pork", "fish"},
		}, PlanVegetarian},
		{"protein beats paleo", OrderDraft{Goals: []string{"muscle"}, Allergies: []string{"dairy"}}, PlanHighProtein},
		// The weight goal the goals screen emits is "weight", which the
		// default rules do not match.
		{"weight goal with default rules", OrderDraft{Goals: []string{"weight"}}, PlanTraditional},
		{"wheat allergy with default rules", OrderDraft{Allergies: []string{"wheat"}}, PlanTraditional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, RecommendPlan(tt.draft))
		})
	}
}

func TestSynchronizedRules(t *testing.T) {
	t.Parallel()

	r := SynchronizedRecommendationRules()
	require.Equal(t, PlanPaleoLite, r.Recommend(OrderDraft{Goals: []string{"weight"}}))
	require.Equal(t, PlanPaleo, r.Recommend(OrderDraft{Allergies: []string{"wheat"}}))

	// Defaults are not mutated by the synchronized variant
	require.Equal(t, []string{"weight-loss"}, DefaultRecommendationRules().WeightGoals)
}

func TestRecommendationRules_Unreachable(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"athletic", "gluten", "weight-loss"}, DefaultRecommendationRules().Unreachable())

	r := RecommendationRules{
		VegetarianProteins: []string{"beef"},
		ProteinGoals:       []string{"muscle"},
		PaleoAllergies:     []string{"dairy"},
		WeightGoals:        []string{"weight"},
	}
	require.Empty(t, r.Unreachable())
}

func TestRecommend_EmptyVegetarianRuleNeverMatches(t *testing.T) {
	t.Parallel()

	r := RecommendationRules{}
	require.Equal(t, PlanTraditional, r.Recommend(OrderDraft{}))
}
