// Package template renders the markdown order summary shown on the review
// and confirmation screens and attached to submission receipts.
package template

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/signup"
)

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Plan         string // Selected plan title
	MealsPerWeek string // Meals delivered per week
	DailyMeals   string // Daily meals plan title
	Frequency    string // Weekly frequency title
	Addons       string // Add-on list, prefixed with " + " when present
	MealsTotal   string // Weekly meals cost
	AddonsTotal  string // Weekly add-ons cost
	WeeklyTotal  string // Weekly total cost
	Goals        string
	Meals        string
	Allergies    string
	Proteins     string
	Name         string // Addressee
	Address      string // Street, apt, city, state and ZIP on one line
	DeliveryDate string // First delivery date for display
	Instructions string // Delivery instructions as a quote (empty if none)
	Email        string
	Payment      string // Payment method, with masked card when paying by card
	Reference    string // Order reference line (empty before submission)
}

// Render replaces {{variable}} placeholders in template with actual values.
// Unknown placeholders are left as they are.
func Render(template string, vars Variables) string {
	r := strings.NewReplacer(
		"{{plan}}", vars.Plan,
		"{{meals_per_week}}", vars.MealsPerWeek,
		"{{daily_meals}}", vars.DailyMeals,
		"{{frequency}}", vars.Frequency,
		"{{addons}}", vars.Addons,
		"{{meals_total}}", vars.MealsTotal,
		"{{addons_total}}", vars.AddonsTotal,
		"{{weekly_total}}", vars.WeeklyTotal,
		"{{goals}}", vars.Goals,
		"{{meals}}", vars.Meals,
		"{{allergies}}", vars.Allergies,
		"{{proteins}}", vars.Proteins,
		"{{name}}", vars.Name,
		"{{address}}", vars.Address,
		"{{delivery_date}}", vars.DeliveryDate,
		"{{instructions}}", vars.Instructions,
		"{{email}}", vars.Email,
		"{{payment}}", vars.Payment,
		"{{reference}}", vars.Reference,
	)
	return r.Replace(template)
}

// LoadFromFile loads a template from a file.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the template at customPath, or the default when
// customPath is empty.
func GetTemplate(customPath string) (string, error) {
	if customPath == "" {
		return DefaultTemplate, nil
	}
	return LoadFromFile(customPath)
}

// FromDraft formats a draft into template variables. reference may be empty.
func FromDraft(d signup.OrderDraft, reference string) Variables {
	q := signup.QuoteDraft(d)

	vars := Variables{
		Plan:         q.Plan.Title,
		MealsPerWeek: strconv.Itoa(q.MealsPerWeek),
		DailyMeals:   dailyMealsTitle(d.DailyMeals),
		Frequency:    frequencyTitle(d.WeeklyFrequency),
		MealsTotal:   signup.FormatPrice(q.Meals),
		AddonsTotal:  signup.FormatPrice(q.Addons),
		WeeklyTotal:  signup.FormatPrice(q.Total),
		Goals:        labels(signup.GoalOptions, d.Goals, "none"),
		Meals:        labels(signup.MealOptions, d.MealPreferences, "anything"),
		Allergies:    labels(signup.AllergyOptions, d.Allergies, "none"),
		Proteins:     labels(signup.ProteinOptions, d.AvoidedProteins, "nothing"),
		Name:         d.FullName(),
		Address:      formatAddress(d.Address),
		DeliveryDate: signup.FormatDeliveryDate(d.DeliveryDate),
		Email:        d.Email,
		Payment:      formatPayment(d),
	}

	var addons []string
	if d.Addons.Snacks {
		addons = append(addons, "snacks")
	}
	if d.Addons.Smoothies {
		addons = append(addons, "smoothies")
	}
	if len(addons) > 0 {
		vars.Addons = " + " + strings.Join(addons, " & ")
	}
	if d.DeliveryInstructions != "" {
		vars.Instructions = "> " + strings.ReplaceAll(d.DeliveryInstructions, "\n", "\n> ")
	}
	if reference != "" {
		vars.Reference = "\nOrder reference: `" + reference + "`"
	}
	return vars
}

// Summary renders the order summary for a draft using the template at
// customPath, or the default.
func Summary(d signup.OrderDraft, reference, customPath string) (string, error) {
	tpl, err := GetTemplate(customPath)
	if err != nil {
		logger.Error("Failed to get summary template: %v", err)
		return "", err
	}
	out := Render(tpl, FromDraft(d, reference))
	logger.Debug("Summary rendered: %d characters", len(out))
	return out, nil
}

func labels(options []signup.Option, ids []string, empty string) string {
	if len(ids) == 0 {
		return empty
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = signup.OptionLabel(options, id)
	}
	return strings.Join(out, ", ")
}

func dailyMealsTitle(id string) string {
	if p, ok := signup.FindDailyMealPlan(id); ok {
		return p.Title
	}
	return id
}

func frequencyTitle(id string) string {
	if f, ok := signup.FindFrequency(id); ok {
		return f.Title
	}
	return id
}

func formatAddress(a *signup.Address) string {
	if a == nil {
		return ""
	}
	street := a.Street
	if a.Apt != "" {
		street += ", " + a.Apt
	}
	return fmt.Sprintf("%s, %s, %s %s", street, a.City, a.State, a.ZipCode)
}

func formatPayment(d signup.OrderDraft) string {
	label := signup.OptionLabel(signup.PaymentOptions, d.PaymentMethod)
	if d.PaymentMethod == signup.PaymentCard && d.Card != nil {
		return label + " " + d.MaskedCard()
	}
	return label
}
