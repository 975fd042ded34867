package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/stretchr/testify/require"
)

func testDraft() signup.OrderDraft {
	return signup.OrderDraft{
		ZipCode:              "94107",
		Goals:                []string{"health", "muscle"},
		MealPreferences:      []string{signup.SentinelEverything},
		DailyMeals:           "lunch-dinner",
		WeeklyFrequency:      "weekdays",
		SelectedPlan:         signup.PlanHighProtein,
		Addons:               signup.Addons{Snacks: true},
		Email:                "sam@example.com",
		Address:              &signup.Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", Apt: "4B", City: "San Francisco", State: "CA", ZipCode: "94107"},
		DeliveryDate:         "2026-10-25",
		DeliveryInstructions: "Leave at door\nRing twice",
		PaymentMethod:        signup.PaymentCard,
		Card:                 &signup.CardDetails{Number: "4242 4242 4242 1234", Expiry: "12/28", CVC: "123", Name: "Sam Lee"},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "Plan: {{plan}}, total {{weekly_total}}",
			vars:     Variables{Plan: "Paleo", WeeklyTotal: "$159.90"},
			want:     "Plan: Paleo, total $159.90",
		},
		{
			name:     "empty values",
			template: "{{name}}{{reference}}",
			vars:     Variables{Name: "Sam Lee"},
			want:     "Sam Lee",
		},
		{
			name:     "placeholder not replaced if variable unknown",
			template: "{{plan}} {{unknown}}",
			vars:     Variables{Plan: "Paleo"},
			want:     "Paleo {{unknown}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Render(tt.template, tt.vars))
		})
	}
}

func TestFromDraft(t *testing.T) {
	vars := FromDraft(testDraft(), "")

	require.Equal(t, "High Protein", vars.Plan)
	require.Equal(t, "10", vars.MealsPerWeek)
	require.Equal(t, "Lunch & Dinner", vars.DailyMeals)
	require.Equal(t, " + snacks", vars.Addons)
	require.Equal(t, "$174.85", vars.WeeklyTotal)
	require.Equal(t, "Improve my health, Build muscle", vars.Goals)
	require.Equal(t, "none", vars.Allergies)
	require.Equal(t, "1 Main St, 4B, San Francisco, CA 94107", vars.Address)
	require.Equal(t, "Sun, Oct 25", vars.DeliveryDate)
	require.Equal(t, "> Leave at door\n> Ring twice", vars.Instructions)
	require.Equal(t, "Card •••• 1234", vars.Payment)
	require.Empty(t, vars.Reference)
}

func TestSummary_NeverLeaksCardNumber(t *testing.T) {
	out, err := Summary(testDraft(), "high-protein-lee-abc123", "")
	require.NoError(t, err)
	require.NotContains(t, out, "4242")
	require.Contains(t, out, "Order reference: `high-protein-lee-abc123`")
	require.NotContains(t, out, "{{")
}

func TestSummary_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, os.WriteFile(path, []byte("{{email}} / {{plan}}"), 0644))

	out, err := Summary(testDraft(), "", path)
	require.NoError(t, err)
	require.Equal(t, "sam@example.com / High Protein", out)

	_, err = Summary(testDraft(), "", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}

func TestSummary_EmptyDraft(t *testing.T) {
	out, err := Summary(signup.OrderDraft{}, "", "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# Your Traditional plan"))
}
