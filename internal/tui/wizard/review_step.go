package wizard

import (
	"bytes"
	"encoding/json"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	udiff "github.com/aymanbagabas/go-udiff"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/template"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// ReviewStep shows the order summary before payment. It can switch to the
// draft as highlighted JSON and shows what changed since the last time the
// order was reviewed in this session.
type ReviewStep struct {
	viewport viewport.Model
	draft    signup.OrderDraft
	summary  string // Raw markdown summary
	rawJSON  string
	diff     string // Unified diff against the last review, "" if unchanged
	raw      bool
	width    int
	height   int
}

// NewReviewStep creates the review screen. lastReviewed is the JSON of the
// draft the last time it was confirmed here, or "".
func NewReviewStep(draft signup.OrderDraft, templatePath, lastReviewed string, raw bool) *ReviewStep {
	summary, err := template.Summary(draft, "", templatePath)
	if err != nil {
		logger.Warn("Falling back to default summary template: %v", err)
		summary = template.Render(template.DefaultTemplate, template.FromDraft(draft, ""))
	}

	current := DraftJSON(draft)
	var diff string
	if lastReviewed != "" && lastReviewed != current {
		diff = udiff.Unified("last review", "now", lastReviewed, current)
	}

	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	r := &ReviewStep{
		viewport: vp,
		draft:    draft,
		summary:  summary,
		rawJSON:  current,
		diff:     diff,
		raw:      raw,
		width:    60,
		height:   20,
	}
	r.refresh()
	return r
}

// DraftJSON renders the draft as indented JSON with card details masked.
func DraftJSON(d signup.OrderDraft) string {
	data, err := json.MarshalIndent(d.Masked(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Init initializes the screen.
func (r *ReviewStep) Init() tea.Cmd {
	return nil
}

// SetSize updates the dimensions for the screen.
func (r *ReviewStep) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.SetWidth(width)
	r.viewport.SetHeight(max(height-2, 5))
	r.refresh()
}

// Ready is always true.
func (r *ReviewStep) Ready() bool { return true }

// Raw reports whether the JSON view is shown.
func (r *ReviewStep) Raw() bool { return r.raw }

// Changed reports whether the draft differs from the last review.
func (r *ReviewStep) Changed() bool { return r.diff != "" }

// Hints returns the key hints for the screen.
func (r *ReviewStep) Hints() []string {
	view := "json"
	if r.raw {
		view = "summary"
	}
	return []string{"↑↓", "scroll", "r", view, "enter", "looks good", "esc", "back"}
}

// Update handles messages for the screen.
func (r *ReviewStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "r":
			r.raw = !r.raw
			r.refresh()
			return emit(ReviewModeMsg{Raw: r.raw})
		case "enter":
			return emit(StepCompletedMsg{Payload: signup.ReviewPayload{}})
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return cmd
}

func (r *ReviewStep) refresh() {
	var b strings.Builder
	if r.diff != "" {
		b.WriteString(theme.Current().S().Warning.Render("Changed since your last review:"))
		b.WriteString("\n")
		b.WriteString(renderDiff(r.diff))
		b.WriteString("\n\n")
	}
	if r.raw {
		b.WriteString(highlightJSON(r.rawJSON))
	} else {
		b.WriteString(renderMarkdown(r.summary, r.width))
	}
	r.viewport.SetContent(b.String())
}

// View renders the screen.
func (r *ReviewStep) View() string {
	q := signup.QuoteDraft(r.draft)
	s := theme.Current().S()
	total := s.Muted.Render("Weekly total ") + s.Price.Render(signup.FormatPrice(q.Total))
	return r.viewport.View() + "\n" + total
}

// renderMarkdown renders markdown content using glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// highlightJSON applies syntax highlighting to JSON for terminal display.
func highlightJSON(source string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		return source
	}
	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}

	// Match token backgrounds to the surface color so blocks don't clash.
	bg := chroma.MustParseColour(theme.Current().BgBase)
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bg
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderDiff colors added and removed lines of a unified diff, skipping the
// file headers.
func renderDiff(diff string) string {
	s := theme.Current().S()
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			continue
		case strings.HasPrefix(line, "+"):
			lines = append(lines, s.DiffInsert.Render(line))
		case strings.HasPrefix(line, "-"):
			lines = append(lines, s.DiffDelete.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
