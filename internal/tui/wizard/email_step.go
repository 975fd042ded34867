package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// EmailStep asks for the account email and the marketing opt-in.
type EmailStep struct {
	input      textinput.Model
	optIn      bool
	focusIndex int // 0=email, 1=opt-in
	err        string
	width      int
}

// NewEmailStep creates the email screen.
func NewEmailStep(email string, optIn bool) *EmailStep {
	in := newTextInput("you@example.com", 254)
	in.SetValue(email)
	return &EmailStep{input: in, optIn: optIn, width: 60}
}

// Init focuses the email input.
func (e *EmailStep) Init() tea.Cmd {
	e.focusIndex = 0
	return e.input.Focus()
}

// SetSize updates the dimensions for the screen.
func (e *EmailStep) SetSize(width, height int) {
	e.width = width
	e.input.SetWidth(min(width-4, 50))
}

// Typing reports whether the email input has focus.
func (e *EmailStep) Typing() bool { return e.focusIndex == 0 }

// Ready reports whether the email is well formed.
func (e *EmailStep) Ready() bool {
	return signup.ValidateEmail(strings.TrimSpace(e.input.Value())) == nil
}

// Hints returns the key hints for the screen.
func (e *EmailStep) Hints() []string {
	if e.focusIndex == 1 {
		return []string{"space", "toggle", "tab", "email", "enter", "continue", "esc", "back"}
	}
	return []string{"tab", "updates", "enter", "continue", "esc", "back"}
}

// Update handles messages for the screen.
func (e *EmailStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab":
			if e.focusIndex == 0 {
				e.focusIndex = 1
				e.input.Blur()
				return nil
			}
			e.focusIndex = 0
			return e.input.Focus()
		case "enter":
			email := strings.TrimSpace(e.input.Value())
			if err := signup.ValidateEmail(email); err != nil {
				e.err = err.Error()
				return nil
			}
			return emit(StepCompletedMsg{Payload: signup.EmailPayload{Email: email, MarketingOptIn: e.optIn}})
		case "space":
			if e.focusIndex == 1 {
				e.optIn = !e.optIn
				return nil
			}
		}
	}

	if e.focusIndex != 0 {
		return nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		e.err = ""
	}
	return cmd
}

// View renders the screen.
func (e *EmailStep) View() string {
	s := theme.Current().S()
	var b strings.Builder
	b.WriteString(s.Subtitle.Render("We'll send your order updates here."))
	b.WriteString("\n\n")
	b.WriteString(renderLabel("Email", e.focusIndex == 0))
	b.WriteString("\n")
	b.WriteString(e.input.View())
	b.WriteString("\n")
	if e.err != "" {
		b.WriteString(renderError(e.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	box := "[ ]"
	if e.optIn {
		box = s.Selected.Render("[x]")
	}
	pointer := "  "
	if e.focusIndex == 1 {
		pointer = s.Cursor.Render("› ")
	}
	b.WriteString(pointer + box + " " + s.Base.Render("Send me menus and offers"))
	return b.String()
}
