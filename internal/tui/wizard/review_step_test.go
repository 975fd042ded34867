package wizard

import (
	"testing"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftJSON_MasksCard(t *testing.T) {
	t.Parallel()

	draft := testfixtures.CompleteDraft()
	out := DraftJSON(draft)

	assert.Contains(t, out, `"number": "•••• 4242"`)
	assert.Contains(t, out, `"cvc": "•••"`)
	assert.NotContains(t, out, "4242 4242")
	assert.Equal(t, "4242 4242 4242 4242", draft.Card.Number, "input draft untouched")
}

func TestReviewStep_ShowsSummaryAndTotal(t *testing.T) {
	t.Parallel()

	step := NewReviewStep(testfixtures.ReviewDraft(), "", "", false)
	step.SetSize(testfixtures.TestTermWidth-10, 30)

	view := testfixtures.Plain(t, step.View())
	assert.Contains(t, view, "Weekly total")
	assert.Contains(t, view, signup.FormatPrice(signup.QuoteDraft(testfixtures.ReviewDraft()).Total))
	assert.False(t, step.Changed())
	assert.False(t, step.Raw())
}

func TestReviewStep_DiffAgainstLastReview(t *testing.T) {
	t.Parallel()

	before := testfixtures.ReviewDraft()
	after := before.Clone()
	after.DeliveryDate = "2026-11-01"

	step := NewReviewStep(after, "", DraftJSON(before), false)
	step.SetSize(testfixtures.TestTermWidth-10, 30)
	require.True(t, step.Changed())

	view := testfixtures.Plain(t, step.View())
	assert.Contains(t, view, "Changed since your last review")
	assert.Contains(t, view, `-  "delivery_date": "2026-10-25",`)
	assert.Contains(t, view, `+  "delivery_date": "2026-11-01",`)

	same := NewReviewStep(before, "", DraftJSON(before), false)
	assert.False(t, same.Changed())
}

func TestReviewStep_ToggleRaw(t *testing.T) {
	t.Parallel()

	step := NewReviewStep(testfixtures.ReviewDraft(), "", "", false)
	step.SetSize(testfixtures.TestTermWidth-10, 30)

	cmd := step.Update(keyRune('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, ReviewModeMsg{Raw: true}, cmd())
	assert.True(t, step.Raw())
	assert.Contains(t, testfixtures.Plain(t, step.View()), `"zip_code": "94107"`)

	cmd = step.Update(keyRune('r'))
	assert.Equal(t, ReviewModeMsg{Raw: false}, cmd())
}

func TestReviewStep_EnterCompletes(t *testing.T) {
	t.Parallel()

	step := NewReviewStep(testfixtures.ReviewDraft(), "", "", true)
	assert.True(t, step.Raw())
	assert.Equal(t, signup.ReviewPayload{}, completedPayload(t, step.Update(keyEnter)))
}
