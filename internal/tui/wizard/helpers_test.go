package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

var (
	keyEnter    = testfixtures.Key(tea.KeyEnter)
	keyEsc      = testfixtures.Key(tea.KeyEscape)
	keyTab      = testfixtures.Key(tea.KeyTab)
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyUp       = testfixtures.Key(tea.KeyUp)
	keyDown     = testfixtures.Key(tea.KeyDown)
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

func keyRune(r rune) tea.KeyPressMsg {
	return testfixtures.Type(string(r))[0]
}

// typeInto sends one key press per rune to update.
func typeInto(update func(tea.Msg) tea.Cmd, text string) {
	for _, msg := range testfixtures.Type(text) {
		update(msg)
	}
}

// completedPayload runs cmd and returns the payload it completes the step with.
func completedPayload(t *testing.T, cmd tea.Cmd) signup.Payload {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	msg := cmd()
	completed, ok := msg.(StepCompletedMsg)
	require.True(t, ok, "expected StepCompletedMsg, got %T", msg)
	return completed.Payload
}
