package wizard

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// MultiSelectStep is a checkbox list used by the goals, meals, allergies and
// proteins screens.
type MultiSelectStep struct {
	list     *ChoiceList
	selected []string
	toggle   signup.ToggleOptions
	subtitle string
	validate func([]string) error
	payload  func([]string) signup.Payload
	err      string
	width    int
}

// NewGoalsStep creates the goals screen. At least one and at most limit goals
// may be selected.
func NewGoalsStep(goals []string, limit int) *MultiSelectStep {
	if limit <= 0 {
		limit = signup.DefaultGoalLimit
	}
	return &MultiSelectStep{
		list:     newChoiceList(optionChoices(signup.GoalOptions), true),
		selected: slices.Clone(goals),
		toggle:   signup.ToggleOptions{MaxSize: limit},
		subtitle: fmt.Sprintf("Choose up to %d.", limit),
		validate: func(ids []string) error { return signup.ValidateGoals(ids, limit) },
		payload:  func(ids []string) signup.Payload { return signup.GoalsPayload{Goals: ids} },
	}
}

// NewMealsStep creates the meal preferences screen. "I eat everything" is
// selected whenever nothing else is.
func NewMealsStep(prefs []string) *MultiSelectStep {
	selected := slices.Clone(prefs)
	if len(selected) == 0 {
		selected = []string{signup.SentinelEverything}
	}
	return &MultiSelectStep{
		list:     newChoiceList(optionChoices(signup.MealOptions), true),
		selected: selected,
		toggle:   signup.ToggleOptions{Sentinel: signup.SentinelEverything},
		subtitle: "Pick the styles you like, or keep everything.",
		payload:  func(ids []string) signup.Payload { return signup.MealsPayload{MealPreferences: ids} },
	}
}

// NewAllergiesStep creates the allergies screen. Selection is optional.
func NewAllergiesStep(allergies []string) *MultiSelectStep {
	return &MultiSelectStep{
		list:     newChoiceList(optionChoices(signup.AllergyOptions), true),
		selected: slices.Clone(allergies),
		subtitle: "We'll keep these out of your meals.",
		payload:  func(ids []string) signup.Payload { return signup.AllergiesPayload{Allergies: ids} },
	}
}

// NewProteinsStep creates the protein avoidance screen. Selection is optional.
func NewProteinsStep(avoided []string) *MultiSelectStep {
	return &MultiSelectStep{
		list:     newChoiceList(optionChoices(signup.ProteinOptions), true),
		selected: slices.Clone(avoided),
		subtitle: "Select any proteins you don't eat.",
		payload:  func(ids []string) signup.Payload { return signup.ProteinsPayload{AvoidedProteins: ids} },
	}
}

// Init initializes the screen.
func (m *MultiSelectStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (m *MultiSelectStep) SetSize(width, height int) {
	m.width = width
	m.list.SetHeight(height - 4)
}

// Ready reports whether the current selection may be submitted.
func (m *MultiSelectStep) Ready() bool {
	return m.validate == nil || m.validate(m.selected) == nil
}

// Hints returns the key hints for the screen.
func (m *MultiSelectStep) Hints() []string {
	return []string{"↑↓/j/k", "navigate", "space", "toggle", "enter", "continue", "esc", "back"}
}

// Selected returns the current selection.
func (m *MultiSelectStep) Selected() []string {
	return slices.Clone(m.selected)
}

// Update handles messages for the screen.
func (m *MultiSelectStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.list.MoveUp()
	case "down", "j":
		m.list.MoveDown()
	case "space", "x":
		before := len(m.selected)
		m.selected = signup.ToggleSetMember(m.selected, m.list.Current(), m.toggle)
		m.err = ""
		if m.toggle.MaxSize > 0 && before == m.toggle.MaxSize && len(m.selected) == before &&
			!slices.Contains(m.selected, m.list.Current()) {
			m.err = fmt.Sprintf("You can pick up to %d", m.toggle.MaxSize)
		}
	case "enter":
		if m.validate != nil {
			if err := m.validate(m.selected); err != nil {
				m.err = err.Error()
				return nil
			}
		}
		return emit(StepCompletedMsg{Payload: m.payload(slices.Clone(m.selected))})
	}
	return nil
}

// View renders the screen.
func (m *MultiSelectStep) View() string {
	var b strings.Builder
	b.WriteString(theme.Current().S().Subtitle.Render(m.subtitle))
	b.WriteString("\n\n")
	b.WriteString(m.list.View(m.selected, true))
	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.err))
	}
	return b.String()
}

// SingleSelectStep is a radio list used by the daily meals and weekly
// frequency screens. Moving the cursor moves the selection.
type SingleSelectStep struct {
	list     *ChoiceList
	subtitle string
	payload  func(string) signup.Payload
	width    int
}

// NewDailyMealsStep creates the meals-per-day screen.
func NewDailyMealsStep(current string) *SingleSelectStep {
	choices := make([]choice, len(signup.DailyMealPlans))
	for i, p := range signup.DailyMealPlans {
		choices[i] = choice{id: p.ID, label: p.Title, description: p.Description}
	}
	return newSingleSelect(choices, current, signup.DefaultDailyMeals,
		"You can change this any time.",
		func(id string) signup.Payload { return signup.DailyMealsPayload{Plan: id} })
}

// NewFrequencyStep creates the days-per-week screen.
func NewFrequencyStep(current string) *SingleSelectStep {
	choices := make([]choice, len(signup.Frequencies))
	for i, f := range signup.Frequencies {
		choices[i] = choice{id: f.ID, label: f.Title, description: f.Description}
	}
	return newSingleSelect(choices, current, signup.DefaultFrequency,
		"Meals arrive fresh for each day you pick.",
		func(id string) signup.Payload { return signup.WeeklyFrequencyPayload{Frequency: id} })
}

func newSingleSelect(choices []choice, current, fallback, subtitle string, payload func(string) signup.Payload) *SingleSelectStep {
	list := newChoiceList(choices, false)
	list.SetCursorTo(fallback)
	if current != "" {
		list.SetCursorTo(current)
	}
	return &SingleSelectStep{list: list, subtitle: subtitle, payload: payload}
}

// Init initializes the screen.
func (s *SingleSelectStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (s *SingleSelectStep) SetSize(width, height int) {
	s.width = width
	s.list.SetHeight(height - 4)
}

// Ready is always true; a default is preselected.
func (s *SingleSelectStep) Ready() bool { return true }

// Hints returns the key hints for the screen.
func (s *SingleSelectStep) Hints() []string {
	return []string{"↑↓/j/k", "choose", "enter", "continue", "esc", "back"}
}

// Selected returns the id under the cursor.
func (s *SingleSelectStep) Selected() string {
	return s.list.Current()
}

// Update handles messages for the screen.
func (s *SingleSelectStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		s.list.MoveUp()
	case "down", "j":
		s.list.MoveDown()
	case "enter", "space":
		return emit(StepCompletedMsg{Payload: s.payload(s.list.Current())})
	}
	return nil
}

// View renders the screen.
func (s *SingleSelectStep) View() string {
	var b strings.Builder
	b.WriteString(theme.Current().S().Subtitle.Render(s.subtitle))
	b.WriteString("\n\n")
	b.WriteString(s.list.View([]string{s.list.Current()}, true))
	return b.String()
}
