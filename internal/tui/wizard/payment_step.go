package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// Card field order after the method list.
const (
	cardNumber = iota
	cardExpiry
	cardCVC
	cardName
	cardFieldCount
)

var cardLabels = [cardFieldCount]string{"Card number", "Expiry (MM/YY)", "CVC", "Name on card"}

// PaymentStep picks the payment method and collects card details when the
// method is card.
type PaymentStep struct {
	methods    *ChoiceList
	method     string
	inputs     [cardFieldCount]textinput.Model
	focusIndex int // -1 = method list, otherwise a card field
	err        string
	width      int
}

// NewPaymentStep creates the payment screen. Card is preselected.
func NewPaymentStep(method string, card *signup.CardDetails) *PaymentStep {
	if method == "" {
		method = signup.PaymentCard
	}
	p := &PaymentStep{
		methods:    newChoiceList(optionChoices(signup.PaymentOptions), false),
		method:     method,
		focusIndex: -1,
		width:      60,
	}
	p.methods.SetCursorTo(method)
	// Descriptions are shown below the list for the chosen method only.
	for i := range p.methods.choices {
		p.methods.choices[i].description = ""
	}

	placeholders := [cardFieldCount]string{"1234 5678 9012 3456", "MM/YY", "123", "Sam Lee"}
	limits := [cardFieldCount]int{19, 5, 4, 80}
	for i := range p.inputs {
		p.inputs[i] = newTextInput(placeholders[i], limits[i])
	}
	if card != nil {
		p.inputs[cardNumber].SetValue(card.Number)
		p.inputs[cardExpiry].SetValue(card.Expiry)
		p.inputs[cardCVC].SetValue(card.CVC)
		p.inputs[cardName].SetValue(card.Name)
	}
	return p
}

// Init initializes the screen.
func (p *PaymentStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (p *PaymentStep) SetSize(width, height int) {
	p.width = width
	for i := range p.inputs {
		p.inputs[i].SetWidth(min(width-4, 40))
	}
}

// Typing reports whether a card field has focus.
func (p *PaymentStep) Typing() bool { return p.focusIndex >= 0 }

// Ready reports whether the payment details are complete.
func (p *PaymentStep) Ready() bool {
	payload := p.payload()
	return signup.ValidatePayment(payload.Method, payload.Card) == nil
}

// Hints returns the key hints for the screen.
func (p *PaymentStep) Hints() []string {
	if p.focusIndex >= 0 {
		return []string{"tab/shift+tab", "field", "enter", "place order", "esc", "back"}
	}
	if p.method == signup.PaymentCard {
		return []string{"↑↓/j/k", "method", "tab", "card details", "enter", "place order", "esc", "back"}
	}
	return []string{"↑↓/j/k", "method", "enter", "place order", "esc", "back"}
}

func (p *PaymentStep) payload() signup.PaymentPayload {
	if p.method != signup.PaymentCard {
		return signup.PaymentPayload{Method: p.method}
	}
	return signup.PaymentPayload{
		Method: p.method,
		Card: &signup.CardDetails{
			Number: p.inputs[cardNumber].Value(),
			Expiry: p.inputs[cardExpiry].Value(),
			CVC:    p.inputs[cardCVC].Value(),
			Name:   strings.TrimSpace(p.inputs[cardName].Value()),
		},
	}
}

func (p *PaymentStep) focus(i int) tea.Cmd {
	for j := range p.inputs {
		p.inputs[j].Blur()
	}
	if p.method != signup.PaymentCard {
		p.focusIndex = -1
		return nil
	}
	// Cycle through the method list (-1) and the card fields.
	n := cardFieldCount + 1
	p.focusIndex = ((i+1)%n+n)%n - 1
	if p.focusIndex < 0 {
		return nil
	}
	return p.inputs[p.focusIndex].Focus()
}

// Update handles messages for the screen.
func (p *PaymentStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab":
			return p.focus(p.focusIndex + 1)
		case "shift+tab":
			return p.focus(p.focusIndex - 1)
		case "enter":
			payload := p.payload()
			if err := signup.ValidatePayment(payload.Method, payload.Card); err != nil {
				p.err = err.Error()
				return nil
			}
			return emit(StepCompletedMsg{Payload: payload})
		}

		if p.focusIndex < 0 {
			switch keyMsg.String() {
			case "up", "k":
				p.methods.MoveUp()
			case "down", "j":
				p.methods.MoveDown()
			}
			p.method = p.methods.Current()
			p.err = ""
			return nil
		}
	}

	if p.focusIndex < 0 {
		return nil
	}
	var cmd tea.Cmd
	in := &p.inputs[p.focusIndex]
	*in, cmd = in.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		p.err = ""
		var formatted string
		switch p.focusIndex {
		case cardNumber:
			formatted = signup.FormatCardNumber(in.Value())
		case cardExpiry:
			formatted = signup.FormatExpiry(in.Value())
		case cardCVC:
			formatted = signup.FormatCVC(in.Value())
		default:
			formatted = in.Value()
		}
		if formatted != in.Value() {
			in.SetValue(formatted)
			in.CursorEnd()
		}
	}
	return cmd
}

// View renders the screen.
func (p *PaymentStep) View() string {
	s := theme.Current().S()
	var b strings.Builder
	b.WriteString(p.methods.View([]string{p.method}, p.focusIndex < 0))
	b.WriteString("\n\n")

	if p.method != signup.PaymentCard {
		for _, o := range signup.PaymentOptions {
			if o.ID == p.method {
				b.WriteString(s.Info.Render(o.Description))
			}
		}
	} else {
		for i := range p.inputs {
			b.WriteString(renderLabel(cardLabels[i], i == p.focusIndex))
			b.WriteString("\n")
			b.WriteString(p.inputs[i].View())
			if i < cardFieldCount-1 {
				b.WriteString("\n")
			}
		}
	}
	if p.err != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(p.err))
	}
	return b.String()
}
