package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// ZipStep asks for the delivery ZIP code.
type ZipStep struct {
	input textinput.Model
	err   string
	width int
}

// NewZipStep creates the ZIP code screen, pre-filled with zip.
func NewZipStep(zip string) *ZipStep {
	in := newTextInput("Enter ZIP code", 5)
	in.SetValue(zip)
	in.SetWidth(12)
	return &ZipStep{input: in, width: 60}
}

// Init focuses the input.
func (z *ZipStep) Init() tea.Cmd {
	return z.input.Focus()
}

// SetSize updates the dimensions for the screen.
func (z *ZipStep) SetSize(width, height int) {
	z.width = width
}

// Typing is always true; the screen is a single text field.
func (z *ZipStep) Typing() bool { return true }

// Ready reports whether a full ZIP code was entered.
func (z *ZipStep) Ready() bool {
	return signup.ValidateZip(z.input.Value()) == nil
}

// Hints returns the key hints for the screen.
func (z *ZipStep) Hints() []string {
	return []string{"0-9", "type", "enter", "continue", "esc", "quit"}
}

// Update handles messages for the ZIP code screen.
func (z *ZipStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "enter" {
		zip := z.input.Value()
		if err := signup.ValidateZip(zip); err != nil {
			z.err = err.Error()
			return nil
		}
		return emit(StepCompletedMsg{Payload: signup.ZipPayload{ZipCode: zip}})
	}

	var cmd tea.Cmd
	z.input, cmd = z.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		// Only digits are kept; anything else typed is dropped.
		if normalized := signup.NormalizeZip(z.input.Value()); normalized != z.input.Value() {
			z.input.SetValue(normalized)
		}
		z.err = ""
	}
	return cmd
}

// View renders the ZIP code screen.
func (z *ZipStep) View() string {
	var b strings.Builder
	b.WriteString(theme.Current().S().Subtitle.Render("We'll check that we deliver to your area."))
	b.WriteString("\n\n")
	b.WriteString(renderLabel("ZIP code", true))
	b.WriteString("\n")
	b.WriteString(z.input.View())
	if z.err != "" {
		b.WriteString("\n")
		b.WriteString(renderError(z.err))
	}
	return b.String()
}
