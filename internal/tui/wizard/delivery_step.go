package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// DeliveryStep picks the first delivery date and optional instructions.
type DeliveryStep struct {
	dates        *ChoiceList
	instructions textarea.Model
	focusIndex   int // 0=dates, 1=instructions
	weekday      time.Weekday
	width        int
	tmpFile      string // Path to temp file for editing
}

// NewDeliveryStep creates the delivery screen offering the next weeks dates
// on the configured weekday, counted from now.
func NewDeliveryStep(draft signup.OrderDraft, now time.Time, day string, weeks int) (*DeliveryStep, error) {
	if day == "" {
		day = signup.DefaultDeliveryDay
	}
	weekday, err := signup.ParseWeekday(day)
	if err != nil {
		return nil, fmt.Errorf("delivery day: %w", err)
	}
	if weeks <= 0 {
		weeks = 4
	}

	dates := signup.UpcomingDeliveryDates(now, weekday, weeks)
	choices := make([]choice, len(dates))
	for i, d := range dates {
		choices[i] = choice{id: d, label: signup.FormatDeliveryDate(d)}
	}
	if len(choices) > 0 {
		choices[0].tag = "earliest"
	}
	list := newChoiceList(choices, false)
	if draft.DeliveryDate != "" {
		list.SetCursorTo(draft.DeliveryDate)
	}

	ta := newTextArea("Gate code, where to leave the box…")
	ta.SetValue(draft.DeliveryInstructions)

	return &DeliveryStep{
		dates:        list,
		instructions: ta,
		weekday:      weekday,
		width:        60,
	}, nil
}

// Init initializes the screen.
func (d *DeliveryStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (d *DeliveryStep) SetSize(width, height int) {
	d.width = width
	d.instructions.SetWidth(min(width-4, 60))
}

// Typing reports whether the instructions field has focus.
func (d *DeliveryStep) Typing() bool { return d.focusIndex == 1 }

// Ready is always true; the earliest date is preselected.
func (d *DeliveryStep) Ready() bool { return d.dates.Current() != "" }

// Hints returns the key hints for the screen.
func (d *DeliveryStep) Hints() []string {
	if d.focusIndex == 1 {
		hints := []string{"tab", "dates"}
		if os.Getenv("EDITOR") != "" {
			hints = append(hints, "ctrl+e", "edit")
		}
		return append(hints, "esc", "back")
	}
	return []string{"↑↓/j/k", "date", "tab", "instructions", "enter", "continue", "esc", "back"}
}

// Update handles messages for the screen.
func (d *DeliveryStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case InstructionsEditedMsg:
		d.instructions.SetValue(strings.TrimSpace(msg.Content))
		d.cleanup()
		return nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if d.focusIndex == 0 {
				d.focusIndex = 1
				return d.instructions.Focus()
			}
			d.focusIndex = 0
			d.instructions.Blur()
			return nil
		case "ctrl+e":
			return d.openEditor()
		}

		if d.focusIndex == 0 {
			switch msg.String() {
			case "up", "k":
				d.dates.MoveUp()
			case "down", "j":
				d.dates.MoveDown()
			case "enter":
				return emit(StepCompletedMsg{Payload: signup.DeliveryPayload{
					Date:         d.dates.Current(),
					Instructions: strings.TrimSpace(d.instructions.Value()),
				}})
			}
			return nil
		}
	}

	if d.focusIndex != 1 {
		return nil
	}
	var cmd tea.Cmd
	d.instructions, cmd = d.instructions.Update(msg)
	return cmd
}

// openEditor launches the user's $EDITOR with the current instructions.
func (d *DeliveryStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "macroplate_instructions_*.txt")
	if err != nil {
		logger.Warn("Failed to create instructions temp file: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(d.instructions.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	d.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("macroplate", tmpfile.Name())
	if err != nil {
		logger.Debug("Editor unavailable: %v", err)
		d.cleanup()
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			logger.Warn("Editor exited with error: %v", err)
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return InstructionsEditedMsg{Content: string(content)}
	})
}

func (d *DeliveryStep) cleanup() {
	if d.tmpFile != "" {
		_ = os.Remove(d.tmpFile)
		d.tmpFile = ""
	}
}

// Instructions returns the instructions as typed.
func (d *DeliveryStep) Instructions() string {
	return d.instructions.Value()
}

// View renders the screen.
func (d *DeliveryStep) View() string {
	s := theme.Current().S()
	var b strings.Builder
	b.WriteString(s.Subtitle.Render(fmt.Sprintf("We deliver on %ss. Pick your first box.", d.weekday)))
	b.WriteString("\n\n")
	b.WriteString(d.dates.View([]string{d.dates.Current()}, d.focusIndex == 0))
	b.WriteString("\n\n")
	b.WriteString(renderLabel("Delivery instructions (optional)", d.focusIndex == 1))
	b.WriteString("\n")
	b.WriteString(d.instructions.View())
	return b.String()
}
