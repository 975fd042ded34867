package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}
	s := theme.Current().S()

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderError renders a validation message, or "" when msg is empty.
func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.Current().S().Error.Render("✗ " + msg)
}

// renderLabel renders a field label.
func renderLabel(label string, focused bool) string {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)).Render(label)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)).Render(label)
}

// newTextInput creates a text input styled with the theme.
func newTextInput(placeholder string, limit int) textinput.Model {
	t := theme.Current()
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = limit
	in.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	in.SetWidth(40)
	return in
}

// newTextArea creates a multi-line input styled with the theme.
func newTextArea(placeholder string) textarea.Model {
	t := theme.Current()
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = "┃ "
	ta.ShowLineNumbers = false
	ta.CharLimit = 500

	styles := textarea.DefaultDarkStyles()
	styles.Focused.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary))
	styles.Focused.Text = lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	styles.Blurred.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay))
	styles.Blurred.Text = lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	ta.SetStyles(styles)
	ta.SetWidth(50)
	ta.SetHeight(3)
	return ta
}
