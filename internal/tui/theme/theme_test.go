package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_IsCatppuccinMocha(t *testing.T) {
	t.Parallel()

	th := Current()
	require.NotNil(t, th)
	assert.Equal(t, "catppuccin-mocha", th.Name)
	assert.True(t, th.IsDark)
	assert.Same(t, th, Current())

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary (Mauve)", th.Primary, "#cba6f7"},
		{"Secondary (Blue)", th.Secondary, "#89b4fa"},
		{"Tertiary (Lavender)", th.Tertiary, "#b4befe"},
		{"BgBase", th.BgBase, "#1e1e2e"},
		{"FgBase (Text)", th.FgBase, "#cdd6f4"},
		{"Success (Green)", th.Success, "#a6e3a1"},
		{"Error (Red)", th.Error, "#f38ba8"},
		{"Accent (Peach)", th.Accent, "#fab387"},
		{"BorderFocused", th.BorderFocused, "#cba6f7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.got, tt.name)
	}
}

func TestStyles_Initialized(t *testing.T) {
	t.Parallel()

	s := NewCatppuccinMocha().S()
	renders := map[string]func() string{
		"StepTitle":      func() string { return s.StepTitle.Render("test") },
		"Selected":       func() string { return s.Selected.Render("test") },
		"Price":          func() string { return s.Price.Render("test") },
		"Card":           func() string { return s.Card.Render("test") },
		"ButtonFocused":  func() string { return s.ButtonFocused.Render("test") },
		"ButtonDisabled": func() string { return s.ButtonDisabled.Render("test") },
		"HintKey":        func() string { return s.HintKey.Render("test") },
		"DiffInsert":     func() string { return s.DiffInsert.Render("test") },
	}
	for name, render := range renders {
		assert.Contains(t, ansi.Strip(render()), "test", name)
	}
}

func TestInterpolateColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	r, g, b := ParseHexColor("#cba6f7")
	assert.Equal(t, []uint8{0xcb, 0xa6, 0xf7}, []uint8{r, g, b})

	r, g, b = ParseHexColor("bad")
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestApplyGradient(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ApplyGradient("", "#000000", "#ffffff"))

	out := ApplyGradient("macro", "#cba6f7", "#89b4fa")
	assert.Equal(t, "macro", ansi.Strip(out))
}
