package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgCrust    string
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Accent used for prices and totals
	Accent string

	// Diff colors
	DiffInsertBg string
	DiffDeleteBg string

	// Border colors
	BorderMuted   string
	BorderDefault string
	BorderFocused string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the active theme. Only catppuccin-mocha is registered.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewCatppuccinMocha()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		StepTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		Base: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgOverlay)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Tertiary)),
		Recommended: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Italic(true),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderDefault)).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocused)).
			Padding(0, 1),
		ButtonNormal: button.
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface0)),
		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.BgOverlay)).
			Background(lipgloss.Color(t.BgMantle)),
		ButtonFocused: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Tertiary)).
			Bold(true),
		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)).
			Bold(true),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface2)),
		DiffInsert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Background(lipgloss.Color(t.DiffInsertBg)),
		DiffDelete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Background(lipgloss.Color(t.DiffDeleteBg)),
	}
}
