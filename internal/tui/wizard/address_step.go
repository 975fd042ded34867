package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// Address field order. Tab follows this order.
const (
	fieldFirstName = iota
	fieldLastName
	fieldStreet
	fieldApt
	fieldCity
	fieldState
	fieldZip
	addressFieldCount
)

var addressLabels = [addressFieldCount]string{
	"First name", "Last name", "Street address", "Apt / Suite (optional)", "City", "State", "ZIP code",
}

// AddressStep collects the structured delivery address.
type AddressStep struct {
	inputs     [addressFieldCount]textinput.Model
	focusIndex int
	err        string
	width      int
}

// NewAddressStep creates the address screen. Without a saved address the ZIP
// field is pre-filled from the first step.
func NewAddressStep(addr *signup.Address, zip string) *AddressStep {
	a := &AddressStep{width: 60}
	placeholders := [addressFieldCount]string{"Sam", "Lee", "1 Market St", "", "San Francisco", "CA", "94107"}
	for i := range a.inputs {
		limit := 80
		switch i {
		case fieldState:
			limit = 2
		case fieldZip:
			limit = 5
		}
		a.inputs[i] = newTextInput(placeholders[i], limit)
	}

	if addr != nil {
		a.inputs[fieldFirstName].SetValue(addr.FirstName)
		a.inputs[fieldLastName].SetValue(addr.LastName)
		a.inputs[fieldStreet].SetValue(addr.Street)
		a.inputs[fieldApt].SetValue(addr.Apt)
		a.inputs[fieldCity].SetValue(addr.City)
		a.inputs[fieldState].SetValue(addr.State)
		a.inputs[fieldZip].SetValue(addr.ZipCode)
	} else {
		a.inputs[fieldZip].SetValue(zip)
	}
	return a
}

// Init focuses the first field.
func (a *AddressStep) Init() tea.Cmd {
	return a.focus(0)
}

// SetSize updates the dimensions for the screen.
func (a *AddressStep) SetSize(width, height int) {
	a.width = width
	for i := range a.inputs {
		a.inputs[i].SetWidth(min(width-4, 50))
	}
}

// Typing is always true; every field is a text input.
func (a *AddressStep) Typing() bool { return true }

// Ready reports whether every required field is filled.
func (a *AddressStep) Ready() bool {
	return a.Address().Validate() == nil
}

// Hints returns the key hints for the screen.
func (a *AddressStep) Hints() []string {
	return []string{"tab/shift+tab", "field", "enter", "continue", "esc", "back"}
}

// Address returns the address as currently typed, trimmed.
func (a *AddressStep) Address() signup.Address {
	v := func(i int) string { return strings.TrimSpace(a.inputs[i].Value()) }
	return signup.Address{
		FirstName: v(fieldFirstName),
		LastName:  v(fieldLastName),
		Street:    v(fieldStreet),
		Apt:       v(fieldApt),
		City:      v(fieldCity),
		State:     strings.ToUpper(v(fieldState)),
		ZipCode:   signup.NormalizeZip(v(fieldZip)),
	}
}

func (a *AddressStep) focus(i int) tea.Cmd {
	a.focusIndex = (i + addressFieldCount) % addressFieldCount
	for j := range a.inputs {
		if j != a.focusIndex {
			a.inputs[j].Blur()
		}
	}
	return a.inputs[a.focusIndex].Focus()
}

// Update handles messages for the screen.
func (a *AddressStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return a.focus(a.focusIndex + 1)
		case "shift+tab", "up":
			return a.focus(a.focusIndex - 1)
		case "enter":
			addr := a.Address()
			if err := addr.Validate(); err != nil {
				a.err = err.Error()
				return nil
			}
			if err := signup.ValidateZip(addr.ZipCode); err != nil {
				a.err = err.Error()
				return a.focus(fieldZip)
			}
			return emit(StepCompletedMsg{Payload: signup.AddressPayload{Address: addr}})
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focusIndex], cmd = a.inputs[a.focusIndex].Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		a.err = ""
	}
	return cmd
}

// View renders the screen.
func (a *AddressStep) View() string {
	var b strings.Builder
	b.WriteString(theme.Current().S().Subtitle.Render("Where should we deliver?"))
	b.WriteString("\n\n")
	for i := range a.inputs {
		b.WriteString(renderLabel(addressLabels[i], i == a.focusIndex))
		b.WriteString("\n")
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n")
	}
	if a.err != "" {
		b.WriteString("\n")
		b.WriteString(renderError(a.err))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
