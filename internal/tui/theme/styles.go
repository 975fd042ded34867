package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	StepTitle   lipgloss.Style
	Subtitle    lipgloss.Style

	Base        lipgloss.Style
	Muted       lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	Recommended lipgloss.Style
	Price       lipgloss.Style

	// Status
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Review diff
	DiffInsert lipgloss.Style
	DiffDelete lipgloss.Style
}
