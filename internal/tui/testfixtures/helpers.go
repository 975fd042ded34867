package testfixtures

import (
	"bytes"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent output across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 100
	TestTermHeight = 40
)

// Plain strips all styling from rendered output so assertions can match on
// text alone.
func Plain(t *testing.T, rendered string) string {
	t.Helper()
	var buf bytes.Buffer
	w := &colorprofile.Writer{Forward: &buf, Profile: colorprofile.NoTTY}
	if _, err := w.WriteString(rendered); err != nil {
		t.Fatalf("strip styles: %v", err)
	}
	return buf.String()
}

// Key builds a key press for a named key such as tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Ctrl builds a ctrl+<r> key press.
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// Type builds one key press per rune of text.
func Type(text string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// RenderCanvas draws content onto a canvas of the canonical test size and
// returns the rendered screen.
func RenderCanvas(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: TestTermWidth, Y: TestTermHeight},
	})
	return canvas.Render()
}
