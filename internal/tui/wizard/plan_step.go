package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// PlanStep shows the diet plans with the recommended one preselected, the
// optional addons and a live weekly quote.
type PlanStep struct {
	draft          signup.OrderDraft
	recommendation string
	list           *ChoiceList
	addons         signup.Addons
	width          int
}

// NewPlanStep creates the plan selection screen. A previously chosen plan
// wins over the recommendation.
func NewPlanStep(draft signup.OrderDraft, recommendation string) *PlanStep {
	choices := make([]choice, len(signup.DietPlans))
	for i, p := range signup.DietPlans {
		choices[i] = choice{
			id:          p.ID,
			label:       p.Title,
			description: fmt.Sprintf("%s · %s/meal", p.Description, signup.FormatPrice(p.PricePerMeal)),
		}
	}
	list := newChoiceList(choices, false)
	list.SetTag(recommendation, "★ recommended")
	list.SetCursorTo(recommendation)
	if draft.SelectedPlan != "" {
		list.SetCursorTo(draft.SelectedPlan)
	}
	return &PlanStep{
		draft:          draft,
		recommendation: recommendation,
		list:           list,
		addons:         draft.Addons,
		width:          60,
	}
}

// Init initializes the screen.
func (p *PlanStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (p *PlanStep) SetSize(width, height int) {
	p.width = width
}

// Ready is always true; the recommendation is preselected.
func (p *PlanStep) Ready() bool { return true }

// Hints returns the key hints for the screen.
func (p *PlanStep) Hints() []string {
	return []string{"↑↓/j/k", "choose", "s", "snacks", "m", "smoothies", "enter", "continue", "esc", "back"}
}

// Quote prices the current selection.
func (p *PlanStep) Quote() signup.Quote {
	d := p.draft
	d.SelectedPlan = p.list.Current()
	d.Addons = p.addons
	return signup.QuoteDraft(d)
}

// Update handles messages for the screen.
func (p *PlanStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		p.list.MoveUp()
	case "down", "j":
		p.list.MoveDown()
	case "s":
		p.addons.Snacks = !p.addons.Snacks
	case "m":
		p.addons.Smoothies = !p.addons.Smoothies
	case "enter":
		return emit(StepCompletedMsg{Payload: signup.PlanPayload{
			Plan:   p.list.Current(),
			Addons: p.addons,
		}})
	}
	return nil
}

// View renders the screen.
func (p *PlanStep) View() string {
	s := theme.Current().S()
	var b strings.Builder

	if plan, ok := signup.FindPlan(p.recommendation); ok {
		b.WriteString(s.Selected.Render(plan.Title))
		b.WriteString(" ")
		b.WriteString(s.Subtitle.Render("fits your goals best."))
		b.WriteString("\n\n")
	}

	b.WriteString(p.list.View([]string{p.list.Current()}, true))
	b.WriteString("\n\n")

	b.WriteString(renderLabel("Add-ons (per delivery day)", false))
	b.WriteString("\n")
	b.WriteString(addonLine("s", "Snacks", signup.SnacksPrice.String(), p.addons.Snacks))
	b.WriteString("\n")
	b.WriteString(addonLine("m", "Smoothies", signup.SmoothiesPrice.String(), p.addons.Smoothies))
	b.WriteString("\n\n")

	q := p.Quote()
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d meals/week · ", q.MealsPerWeek)))
	b.WriteString(s.Price.Render(signup.FormatPrice(q.Total) + "/week"))
	return b.String()
}

func addonLine(key, label, price string, on bool) string {
	s := theme.Current().S()
	box := "[ ]"
	if on {
		box = s.Selected.Render("[x]")
	}
	return fmt.Sprintf("  %s %s %s %s", s.HintKey.Render(key), box, s.Base.Render(label), s.Muted.Render("+$"+price))
}
