package wizard

import (
	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
)

// StepCompletedMsg is sent by a screen exactly once, when its input is valid
// and the user confirms it.
type StepCompletedMsg struct {
	Payload signup.Payload
}

// BackMsg is sent by a screen to return to the previous step.
type BackMsg struct{}

// SubmittedMsg is sent when the order was accepted.
type SubmittedMsg struct {
	Receipt    *orders.Receipt
	HookOutput string
}

// SubmitFailedMsg is sent when the order could not be submitted.
type SubmitFailedMsg struct {
	Err error
}

// FinishedMsg is sent by the confirmation screen to close the wizard.
type FinishedMsg struct{}

// InstructionsEditedMsg is sent when the external editor returns with new
// delivery instructions.
type InstructionsEditedMsg struct {
	Content string
}

// ReviewModeMsg is sent when the review screen switches between the summary
// and the raw JSON view.
type ReviewModeMsg struct {
	Raw bool
}

// emit wraps msg in a command.
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
