package main

import (
	"fmt"
	"strings"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/spf13/cobra"
)

var recommendFlags struct {
	goals     []string
	allergies []string
	avoid     []string
	check     bool
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the plan recommended for a set of answers",
	Long: `Show the plan recommended for goals, allergies and avoided proteins.

Rules are checked in priority order: avoiding every meat protein recommends
vegetarian, a protein goal recommends high-protein, a paleo allergy recommends
paleo, a weight goal recommends paleo-lite, otherwise traditional.

Use --check to list rule identifiers that no screen can produce.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVarP(&recommendFlags.goals, "goal", "g", nil, "Goal id (repeatable), e.g. muscle")
	recommendCmd.Flags().StringSliceVarP(&recommendFlags.allergies, "allergy", "a", nil, "Allergy id (repeatable), e.g. dairy")
	recommendCmd.Flags().StringSliceVar(&recommendFlags.avoid, "avoid", nil, "Avoided protein id (repeatable), e.g. pork")
	recommendCmd.Flags().BoolVar(&recommendFlags.check, "check", false, "Report rule identifiers no option produces")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	rules := cfg.Recommendation

	if recommendFlags.check {
		ids := rules.Unreachable()
		if len(ids) == 0 {
			fmt.Println("Every recommendation rule can be triggered.")
			return nil
		}
		fmt.Printf("Unreachable rule identifiers: %s\n", strings.Join(ids, ", "))
		return nil
	}

	draft := signup.OrderDraft{
		Goals:           recommendFlags.goals,
		Allergies:       recommendFlags.allergies,
		AvoidedProteins: recommendFlags.avoid,
	}
	plan, _ := signup.FindPlan(rules.Recommend(draft))
	fmt.Printf("%s (%s), %s per meal\n", plan.Title, plan.ID, signup.FormatPrice(plan.PricePerMeal))
	fmt.Println(plan.Description)
	return nil
}
