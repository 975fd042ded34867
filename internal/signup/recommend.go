package signup

import "slices"

// RecommendationRules holds the identifiers the plan recommendation matches
// against. They are data, not code, so the vocabulary can be kept in step
// with what the selection screens emit.
type RecommendationRules struct {
	// VegetarianProteins must all be avoided to recommend vegetarian.
	VegetarianProteins []string `mapstructure:"vegetarian_proteins" yaml:"vegetarian_proteins"`
	// ProteinGoals recommend high-protein when any is selected.
	ProteinGoals []string `mapstructure:"protein_goals" yaml:"protein_goals"`
	// PaleoAllergies recommend paleo when any is selected.
	PaleoAllergies []string `mapstructure:"paleo_allergies" yaml:"paleo_allergies"`
	// WeightGoals recommend paleo-lite when any is selected.
	WeightGoals []string `mapstructure:"weight_goals" yaml:"weight_goals"`
}

// DefaultRecommendationRules returns the rule identifiers as originally
// defined. Note that "athletic", "gluten" and "weight-loss" are not emitted by
// the default option catalogs; see Unreachable.
func DefaultRecommendationRules() RecommendationRules {
	return RecommendationRules{
		VegetarianProteins: []string{"beef", "chicken", "pork"},
		ProteinGoals:       []string{"muscle", "athletic"},
		PaleoAllergies:     []string{"gluten", "dairy"},
		WeightGoals:        []string{"weight-loss"},
	}
}

// SynchronizedRecommendationRules extends the defaults with the identifiers
// the option catalogs actually produce for the same concepts.
func SynchronizedRecommendationRules() RecommendationRules {
	r := DefaultRecommendationRules()
	r.PaleoAllergies = append(r.PaleoAllergies, "wheat")
	r.WeightGoals = append(r.WeightGoals, "weight")
	return r
}

// RecommendPlan returns the plan for draft using the default rules.
func RecommendPlan(draft OrderDraft) string {
	return DefaultRecommendationRules().Recommend(draft)
}

// Recommend picks a plan from the draft's goals, allergies and avoided
// proteins. Rules are checked in priority order and the first match wins.
func (r RecommendationRules) Recommend(draft OrderDraft) string {
	switch {
	case len(r.VegetarianProteins) > 0 && containsAll(draft.AvoidedProteins, r.VegetarianProteins):
		return PlanVegetarian
	case containsAny(draft.Goals, r.ProteinGoals):
		return PlanHighProtein
	case containsAny(draft.Allergies, r.PaleoAllergies):
		return PlanPaleo
	case containsAny(draft.Goals, r.WeightGoals):
		return PlanPaleoLite
	default:
		return PlanTraditional
	}
}

// Unreachable returns the rule identifiers that no option catalog produces.
func (r RecommendationRules) Unreachable() []string {
	var out []string
	check := func(ids []string, options []Option) {
		produced := OptionIDs(options)
		for _, id := range ids {
			if !slices.Contains(produced, id) {
				out = append(out, id)
			}
		}
	}
	check(r.VegetarianProteins, ProteinOptions)
	check(r.ProteinGoals, GoalOptions)
	check(r.PaleoAllergies, AllergyOptions)
	check(r.WeightGoals, GoalOptions)
	return out
}

func containsAll(set, want []string) bool {
	for _, w := range want {
		if !slices.Contains(set, w) {
			return false
		}
	}
	return true
}

func containsAny(set, want []string) bool {
	for _, w := range want {
		if slices.Contains(set, w) {
			return true
		}
	}
	return false
}
