package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "94107", NormalizeZip("94107"))
	assert.Equal(t, "94107", NormalizeZip("94-107-1234"))
	assert.Equal(t, "123", NormalizeZip("12a3"))
	assert.Equal(t, "", NormalizeZip("abc"))
}

func TestValidateZip(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateZip("94107"))
	require.Error(t, ValidateZip("9410"))
	require.Error(t, ValidateZip("9410a"))
	require.Error(t, ValidateZip(""))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateEmail("sam@example.com"))
	require.Error(t, ValidateEmail("sam@example"))
	require.Error(t, ValidateEmail("sam example@x.com"))
	require.Error(t, ValidateEmail(""))
}

func TestValidateGoals(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateGoals(nil, DefaultGoalLimit))
	require.NoError(t, ValidateGoals([]string{"health"}, DefaultGoalLimit))
	require.Error(t, ValidateGoals([]string{"a", "b", "c", "d"}, DefaultGoalLimit))
	require.NoError(t, ValidateGoals([]string{"a", "b", "c", "d"}, 0))
}

func TestAddressValidate(t *testing.T) {
	t.Parallel()

	a := Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", City: "SF", State: "CA", ZipCode: "94107"}
	require.NoError(t, a.Validate())

	b := a
	b.City = "   "
	require.ErrorContains(t, b.Validate(), "city")
}

func TestCardFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242999"))
	assert.Equal(t, "4242 42", FormatCardNumber("4242-42"))
	assert.Equal(t, "12/28", FormatExpiry("1228"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "123", FormatCVC("1a23"))
	assert.Equal(t, "1234", FormatCVC("123456"))
}

func TestValidatePayment(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePayment("paypal", nil))
	require.Error(t, ValidatePayment(PaymentCard, nil))

	card := &CardDetails{Number: "4242 4242 4242 4242", Expiry: "12/28", CVC: "123", Name: "Sam Lee"}
	require.NoError(t, ValidatePayment(PaymentCard, card))

	short := *card
	short.Number = "4242 4242"
	require.Error(t, ValidatePayment(PaymentCard, &short))

	noName := *card
	noName.Name = ""
	require.Error(t, ValidatePayment(PaymentCard, &noName))
}

func TestMaskedCard(t *testing.T) {
	t.Parallel()

	d := OrderDraft{Card: &CardDetails{Number: "4242 4242 4242 1234"}}
	require.Equal(t, "•••• 1234", d.MaskedCard())
	require.Equal(t, "", OrderDraft{}.MaskedCard())
}

func TestMasked(t *testing.T) {
	t.Parallel()

	d := OrderDraft{Email: "sam@example.com", Card: &CardDetails{Number: "4242 4242 4242 1234", CVC: "123", Name: "Sam Lee"}}
	m := d.Masked()
	assert.Equal(t, "•••• 1234", m.Card.Number)
	assert.Equal(t, "•••", m.Card.CVC)
	assert.Equal(t, "Sam Lee", m.Card.Name)
	assert.Equal(t, "4242 4242 4242 1234", d.Card.Number, "original untouched")
	assert.Nil(t, OrderDraft{}.Masked().Card)
}

func TestValidatePayload(t *testing.T) {
	t.Parallel()

	valid := []Payload{
		ZipPayload{ZipCode: "94107"},
		GoalsPayload{Goals: []string{"health", "muscle"}},
		MealsPayload{MealPreferences: []string{SentinelEverything}},
		MealsPayload{MealPreferences: []string{"keto", "low-carb"}},
		AllergiesPayload{},
		ProteinsPayload{AvoidedProteins: []string{"pork"}},
		DailyMealsPayload{Plan: "all-meals"},
		WeeklyFrequencyPayload{Frequency: "three-days"},
		PlanPayload{Plan: PlanPaleo},
		EmailPayload{Email: "a@b.co"},
		DeliveryPayload{Date: "2026-10-25"},
		DeliveryPayload{Date: "sunday"},
		AddressPayload{Address: Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", City: "SF", State: "CA", ZipCode: "94107"}},
		ReviewPayload{},
		PaymentPayload{Method: "paypal"},
	}
	for _, p := range valid {
		assert.NoError(t, ValidatePayload(p, DefaultGoalLimit), "payload for %s", p.Step())
	}

	invalid := []Payload{
		nil,
		ZipPayload{ZipCode: "941"},
		GoalsPayload{},
		GoalsPayload{Goals: []string{"health", "muscle", "time", "energy"}},
		GoalsPayload{Goals: []string{"flying"}},
		MealsPayload{},
		MealsPayload{MealPreferences: []string{SentinelEverything, "keto"}},
		AllergiesPayload{Allergies: []string{"gluten"}},
		DailyMealsPayload{Plan: "brunch"},
		WeeklyFrequencyPayload{Frequency: "fortnightly"},
		PlanPayload{Plan: "carnivore"},
		EmailPayload{Email: "nope"},
		GoalsPayload{Goals: []string{"muscle", "muscle", "muscle"}},
		MealsPayload{MealPreferences: []string{"keto", "keto"}},
		AllergiesPayload{Allergies: []string{"dairy", "dairy"}},
		ProteinsPayload{AvoidedProteins: []string{"pork", "pork"}},
		AddressPayload{},
		AddressPayload{Address: Address{FirstName: "Sam", LastName: "Lee", Street: "1 Main St", City: "SF", State: "CA", ZipCode: "not-a-zip"}},
		DeliveryPayload{Date: "next sunday"},
		PaymentPayload{Method: "cash"},
		PaymentPayload{Method: PaymentCard},
	}
	for i, p := range invalid {
		assert.Error(t, ValidatePayload(p, DefaultGoalLimit), "invalid payload %d", i)
	}
}
