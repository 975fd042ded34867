package wizard

import (
	"testing"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipStep(t *testing.T) {
	t.Parallel()

	step := NewZipStep("")
	step.Init()

	typeInto(step.Update, "94a1")
	assert.False(t, step.Ready())
	assert.Nil(t, step.Update(keyEnter))
	assert.Contains(t, testfixtures.Plain(t, step.View()), "valid 5-digit ZIP")

	typeInto(step.Update, "07")
	require.True(t, step.Ready())
	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.ZipPayload{ZipCode: "94107"}, payload)
}

func TestEmailStep(t *testing.T) {
	t.Parallel()

	step := NewEmailStep("", false)
	step.Init()
	assert.True(t, step.Typing())

	typeInto(step.Update, "sam@example")
	assert.Nil(t, step.Update(keyEnter))
	assert.Contains(t, testfixtures.Plain(t, step.View()), "valid email")

	typeInto(step.Update, ".com")
	step.Update(keyTab)
	assert.False(t, step.Typing())
	step.Update(keySpace)
	assert.Contains(t, testfixtures.Plain(t, step.View()), "[x] Send me menus")

	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.EmailPayload{Email: "sam@example.com", MarketingOptIn: true}, payload)
}

func TestAddressStep_PrefillsZip(t *testing.T) {
	t.Parallel()

	step := NewAddressStep(nil, "94107")
	assert.Equal(t, "94107", step.Address().ZipCode)
	assert.False(t, step.Ready())
}

func TestAddressStep_ValidatesRequiredFields(t *testing.T) {
	t.Parallel()

	step := NewAddressStep(nil, "94107")
	step.Init()

	typeInto(step.Update, "Sam")
	step.Update(keyTab)
	typeInto(step.Update, "Lee")
	assert.Nil(t, step.Update(keyEnter))
	assert.Contains(t, testfixtures.Plain(t, step.View()), "street address is required")

	step.Update(keyTab)
	typeInto(step.Update, "1 Market St")
	step.Update(keyTab) // apt stays empty
	step.Update(keyTab)
	typeInto(step.Update, "San Francisco")
	step.Update(keyTab)
	typeInto(step.Update, "ca")

	require.True(t, step.Ready())
	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.AddressPayload{Address: signup.Address{
		FirstName: "Sam",
		LastName:  "Lee",
		Street:    "1 Market St",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94107",
	}}, payload)
}

func TestAddressStep_ShiftTabWraps(t *testing.T) {
	t.Parallel()

	step := NewAddressStep(nil, "")
	step.Init()
	step.Update(keyShiftTab)
	typeInto(step.Update, "10001")
	assert.Equal(t, "10001", step.Address().ZipCode)
}

func TestDeliveryStep_OffersUpcomingDates(t *testing.T) {
	t.Parallel()

	step, err := NewDeliveryStep(signup.OrderDraft{}, testfixtures.Today, "sunday", 4)
	require.NoError(t, err)

	view := testfixtures.Plain(t, step.View())
	assert.Contains(t, view, "Sun, Oct 25")
	assert.Contains(t, view, "Sun, Nov 15")
	assert.NotContains(t, view, "Oct 18", "today is never offered")

	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.DeliveryPayload{Date: "2026-10-25"}, payload)
}

func TestDeliveryStep_Instructions(t *testing.T) {
	t.Parallel()

	draft := signup.OrderDraft{DeliveryDate: "2026-11-01"}
	step, err := NewDeliveryStep(draft, testfixtures.Today, "", 0)
	require.NoError(t, err)

	step.Update(keyTab)
	require.True(t, step.Typing())
	typeInto(step.Update, "Ring twice")
	step.Update(keyTab)

	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.DeliveryPayload{Date: "2026-11-01", Instructions: "Ring twice"}, payload)

	step.Update(InstructionsEditedMsg{Content: "Leave with the doorman\n"})
	assert.Equal(t, "Leave with the doorman", step.Instructions())
}

func TestDeliveryStep_InvalidDay(t *testing.T) {
	t.Parallel()

	_, err := NewDeliveryStep(signup.OrderDraft{}, testfixtures.Today, "someday", 4)
	require.Error(t, err)
}

func TestPaymentStep_Card(t *testing.T) {
	t.Parallel()

	step := NewPaymentStep("", nil)
	assert.False(t, step.Ready())

	step.Update(keyTab)
	typeInto(step.Update, "4242424242424242")
	step.Update(keyTab)
	typeInto(step.Update, "1229")
	step.Update(keyTab)
	typeInto(step.Update, "123")
	assert.Nil(t, step.Update(keyEnter))
	assert.Contains(t, testfixtures.Plain(t, step.View()), "cardholder name is required")

	step.Update(keyTab)
	typeInto(step.Update, "Sam Lee")

	require.True(t, step.Ready())
	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.PaymentPayload{
		Method: signup.PaymentCard,
		Card: &signup.CardDetails{
			Number: "4242 4242 4242 4242",
			Expiry: "12/29",
			CVC:    "123",
			Name:   "Sam Lee",
		},
	}, payload)
}

func TestPaymentStep_Wallet(t *testing.T) {
	t.Parallel()

	step := NewPaymentStep("", nil)
	step.Update(keyDown)
	assert.True(t, step.Ready())
	assert.Contains(t, testfixtures.Plain(t, step.View()), "Apple Pay")

	// Tab does not enter card fields for wallets.
	step.Update(keyTab)
	assert.False(t, step.Typing())

	payload := completedPayload(t, step.Update(keyEnter))
	assert.Equal(t, signup.PaymentPayload{Method: "apple-pay"}, payload)
}
