// Package wizard implements the interactive signup flow: one screen per step,
// driven by a signup.Controller.
package wizard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/state"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// ErrCancelled is returned by RunWizard when the user quits before the order
// is placed.
var ErrCancelled = errors.New("wizard cancelled by user")

const (
	logoText = "macroplate"
	minWidth = 60
	maxWidth = 100
)

// Options configure a wizard run.
type Options struct {
	Catalog         signup.Catalog
	Rules           signup.RecommendationRules
	GoalLimit       int
	DeliveryWeeks   int
	DeliveryDay     string
	Submitter       orders.Submitter
	Hooks           *hooks.Config
	WorkDir         string
	DataDir         string // UI state location; empty disables persistence
	SummaryTemplate string
	Now             func() time.Time
}

// WizardResult holds the outcome of a completed wizard.
type WizardResult struct {
	Draft   signup.OrderDraft
	Receipt *orders.Receipt
}

// WizardModel is the main BubbleTea model for the signup wizard.
type WizardModel struct {
	ctrl         *signup.Controller
	opts         Options
	ui           *state.UIState
	screen       Screen
	lastReviewed string // Draft JSON as of the last confirmed review
	receipt      *orders.Receipt
	cancelled    bool
	err          string
	width        int
	height       int
}

// NewWizardModel creates a wizard positioned at the first step.
func NewWizardModel(opts Options) (*WizardModel, error) {
	if len(opts.Catalog) == 0 {
		opts.Catalog = signup.DefaultCatalog()
	}
	if opts.GoalLimit <= 0 {
		opts.GoalLimit = signup.DefaultGoalLimit
	}
	if opts.Submitter == nil {
		opts.Submitter = orders.LogSubmitter{Rules: opts.Rules}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctrl, err := signup.NewController(opts.Catalog, opts.Rules)
	if err != nil {
		return nil, err
	}
	ctrl.Observe(func(t signup.Transition, _ signup.OrderDraft) {
		logger.Debug("Step %s → %s (%s)", t.From, t.To, t.Direction)
	})

	ui := state.DefaultUIState()
	if opts.DataDir != "" {
		ui = state.Load(opts.DataDir)
	}

	m := &WizardModel{
		ctrl:   ctrl,
		opts:   opts,
		ui:     ui,
		width:  80,
		height: 24,
	}
	if err := m.buildScreen(); err != nil {
		return nil, err
	}
	return m, nil
}

// RunWizard is the entry point for the signup wizard.
// It creates a standalone BubbleTea program, runs it, and returns the result.
func RunWizard(opts Options) (*WizardResult, error) {
	m, err := NewWizardModel(opts)
	if err != nil {
		return nil, err
	}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wizModel.cancelled || wizModel.receipt == nil {
		return nil, ErrCancelled
	}
	return &WizardResult{Draft: wizModel.ctrl.Draft(), Receipt: wizModel.receipt}, nil
}

// Controller exposes the underlying controller.
func (m *WizardModel) Controller() *signup.Controller { return m.ctrl }

// Screen returns the active screen.
func (m *WizardModel) Screen() Screen { return m.screen }

// Cancelled reports whether the user quit.
func (m *WizardModel) Cancelled() bool { return m.cancelled }

// Receipt returns the order receipt once submitted.
func (m *WizardModel) Receipt() *orders.Receipt { return m.receipt }

// HintsVisible reports whether the hint bar is shown.
func (m *WizardModel) HintsVisible() bool { return m.ui.Hints.Visible }

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.screen.Init()
}

// buildScreen creates the screen for the current step from the draft.
func (m *WizardModel) buildScreen() error {
	screen, err := newScreen(m.ctrl.Current(), screenEnv{
		draft:          m.ctrl.Draft(),
		recommendation: m.ctrl.Recommendation(),
		opts:           &m.opts,
		rawReview:      m.ui.Review.RawJSON,
		lastReviewed:   m.lastReviewed,
	})
	if err != nil {
		return err
	}
	m.screen = screen
	m.updateScreenSize()
	return nil
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			// Always allow Ctrl+C to quit
			m.cancelled = m.receipt == nil
			return m, tea.Quit
		case "esc":
			// The confirmation has no way back once reached.
			if m.ctrl.IsTerminal() {
				return m, nil
			}
			if m.ctrl.IsInitial() {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.retreat()
		case "?":
			if tc, ok := m.screen.(textCapturer); !ok || !tc.Typing() {
				m.toggleHints()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScreenSize()
		return m, nil

	case StepCompletedMsg:
		return m, m.advance(msg.Payload)

	case BackMsg:
		return m, m.retreat()

	case ReviewModeMsg:
		m.ui.Review.RawJSON = msg.Raw
		m.saveUIState()
		return m, nil

	case SubmittedMsg:
		m.receipt = msg.Receipt

	case FinishedMsg:
		return m, tea.Quit
	}

	return m, m.screen.Update(msg)
}

// advance commits the payload of the current step and moves to the next one.
func (m *WizardModel) advance(p signup.Payload) tea.Cmd {
	step := m.ctrl.Current()
	if _, ok := p.(signup.ReviewPayload); ok {
		m.lastReviewed = DraftJSON(m.ctrl.Draft())
	}
	if err := m.ctrl.Advance(step, p); err != nil {
		logger.Error("Advance from %s failed: %v", step, err)
		m.err = err.Error()
		return nil
	}
	m.err = ""
	if err := m.buildScreen(); err != nil {
		m.err = err.Error()
		return nil
	}
	return m.screen.Init()
}

// retreat returns to the previous step, rebuilding its screen from the draft.
func (m *WizardModel) retreat() tea.Cmd {
	if err := m.ctrl.Retreat(); err != nil {
		logger.Debug("Retreat ignored: %v", err)
		return nil
	}
	m.err = ""
	if err := m.buildScreen(); err != nil {
		m.err = err.Error()
		return nil
	}
	return m.screen.Init()
}

func (m *WizardModel) toggleHints() {
	m.ui.Hints.Visible = !m.ui.Hints.Visible
	m.saveUIState()
}

func (m *WizardModel) saveUIState() {
	if m.opts.DataDir == "" {
		return
	}
	if err := state.Save(m.opts.DataDir, m.ui); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

// modalWidth returns the width of the wizard card.
func (m *WizardModel) modalWidth() int {
	return min(max(m.width-10, minWidth), maxWidth)
}

// updateScreenSize updates the size of the active screen.
func (m *WizardModel) updateScreenSize() {
	if m.screen == nil {
		return
	}
	// Reserve space for the card border, padding, header, buttons and hints.
	contentWidth := m.modalWidth() - 6
	contentHeight := max(m.height-14, 8)
	m.screen.SetSize(contentWidth, contentHeight)
}

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = "macroplate · " + m.ctrl.Current().Title()

	current, total := m.ctrl.Progress()
	if total > 0 {
		view.ProgressBar = tea.NewProgressBar(tea.ProgressBarDefault, current*100/total)
	}

	content := m.renderModal()

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal wraps the screen in the wizard card with header, buttons and
// hint bar, centered on screen.
func (m *WizardModel) renderModal() string {
	t := theme.Current()
	s := t.S()
	width := m.modalWidth()

	sections := []string{m.renderHeader(width - 4), ""}
	sections = append(sections, s.StepTitle.Render(m.ctrl.Current().Title()), "")
	sections = append(sections, m.screen.View())
	if m.err != "" {
		sections = append(sections, "", renderError(m.err))
	}

	if !m.ctrl.IsTerminal() {
		var buttons []Button
		if m.ctrl.IsInitial() {
			buttons = CreateCancelNextButtons(m.screen.Ready(), "Continue")
		} else {
			buttons = CreateBackNextButtons(true, m.screen.Ready(), m.nextLabel())
		}
		bar := NewButtonBar(buttons)
		bar.SetWidth(width - 6)
		sections = append(sections, "", bar.Render())
	}

	if m.ui.Hints.Visible {
		if hints := m.screen.Hints(); len(hints) > 0 {
			hints = append(hints, "?", "hide keys")
			sections = append(sections, "", renderHintBar(hints...))
		}
	}

	card := s.CardFocused.Width(width).Padding(1, 2).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m *WizardModel) nextLabel() string {
	switch m.ctrl.Current() {
	case signup.StepReview:
		return "Looks good →"
	case signup.StepPayment:
		return "Place order"
	}
	return "Continue →"
}

// renderHeader renders the logo and a step progress bar.
func (m *WizardModel) renderHeader(width int) string {
	t := theme.Current()
	s := t.S()
	current, total := m.ctrl.Progress()

	logo := theme.ApplyGradient(logoText, t.Primary, t.Secondary)
	label := fmt.Sprintf("Step %d of %d", min(current+1, total), total)
	if m.ctrl.IsTerminal() {
		label = "Done"
	}

	barWidth := max(width-lipgloss.Width(logo)-lipgloss.Width(label)-4, 10)
	filled := 0
	if total > 0 {
		filled = barWidth * current / total
	}
	bar := s.Selected.Render(strings.Repeat("━", filled)) + s.Muted.Render(strings.Repeat("━", barWidth-filled))

	return logo + "  " + bar + "  " + s.Muted.Render(label)
}
