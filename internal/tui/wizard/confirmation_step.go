package wizard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/template"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

const submitTimeout = 30 * time.Second

type submitState int

const (
	submitPending submitState = iota
	submitDone
	submitFailed
)

// ConfirmationStep hands the finalized draft to the submitter and shows the
// receipt. A failed submission can be retried.
type ConfirmationStep struct {
	draft      signup.OrderDraft
	opts       *Options
	spinner    spinner.Model
	state      submitState
	receipt    *orders.Receipt
	hookOutput string
	summary    string // Rendered once the receipt is known
	err        error
	attempts   int
	width      int
}

// NewConfirmationStep creates the confirmation screen for a finalized draft.
func NewConfirmationStep(draft signup.OrderDraft, opts *Options) *ConfirmationStep {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))
	return &ConfirmationStep{
		draft:   draft,
		opts:    opts,
		spinner: s,
		width:   60,
	}
}

// Init starts the submission.
func (c *ConfirmationStep) Init() tea.Cmd {
	return tea.Batch(c.spinner.Tick, c.submit())
}

// submit runs the submitter and the post-submit hook off the UI loop.
func (c *ConfirmationStep) submit() tea.Cmd {
	c.state = submitPending
	c.attempts++
	draft := c.draft.Clone()
	opts := c.opts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		receipt, err := opts.Submitter.Submit(ctx, draft)
		if err != nil {
			logger.Error("Order submission failed: %v", err)
			return SubmitFailedMsg{Err: err}
		}
		logger.Info("Order %s submitted (%s)", receipt.OrderID, receipt.Reference)

		var output string
		if opts.Hooks != nil {
			output, err = hooks.RunPostSubmit(ctx, opts.Hooks, opts.WorkDir, hooks.Variables{
				Order:     receipt.OrderID,
				Reference: receipt.Reference,
				Plan:      receipt.Plan,
			})
			if err != nil {
				logger.Warn("post_submit hook cancelled: %v", err)
			}
		}
		return SubmittedMsg{Receipt: receipt, HookOutput: output}
	}
}

// SetSize updates the dimensions for the screen.
func (c *ConfirmationStep) SetSize(width, height int) {
	c.width = width
	c.renderSummary()
}

func (c *ConfirmationStep) renderSummary() {
	if c.receipt == nil {
		return
	}
	summary, err := template.Summary(c.draft, c.receipt.Reference, c.opts.SummaryTemplate)
	if err != nil {
		logger.Warn("Failed to render confirmation summary: %v", err)
		c.summary = ""
		return
	}
	c.summary = renderMarkdown(summary, c.width)
}

// Ready reports whether the order went through.
func (c *ConfirmationStep) Ready() bool { return c.state == submitDone }

// Receipt returns the receipt once submitted.
func (c *ConfirmationStep) Receipt() *orders.Receipt { return c.receipt }

// Hints returns the key hints for the screen.
func (c *ConfirmationStep) Hints() []string {
	switch c.state {
	case submitDone:
		return []string{"enter/q", "done"}
	case submitFailed:
		return []string{"r", "retry", "q", "quit"}
	}
	return nil
}

// Update handles messages for the screen.
func (c *ConfirmationStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SubmittedMsg:
		c.state = submitDone
		c.receipt = msg.Receipt
		c.hookOutput = strings.TrimSpace(msg.HookOutput)
		c.renderSummary()
		return nil
	case SubmitFailedMsg:
		c.state = submitFailed
		c.err = msg.Err
		return nil
	case spinner.TickMsg:
		if c.state != submitPending {
			return nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return cmd
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter", "q":
			if c.state != submitPending {
				return emit(FinishedMsg{})
			}
		case "r":
			if c.state == submitFailed {
				c.err = nil
				return tea.Batch(c.spinner.Tick, c.submit())
			}
		}
	}
	return nil
}

// View renders the screen.
func (c *ConfirmationStep) View() string {
	s := theme.Current().S()
	var b strings.Builder

	switch c.state {
	case submitPending:
		b.WriteString(c.spinner.View())
		b.WriteString(" Placing your order...")
		return b.String()
	case submitFailed:
		b.WriteString(renderError(fmt.Sprintf("We couldn't place your order: %v", c.err)))
		b.WriteString("\n\n")
		b.WriteString(s.Muted.Render("Your answers are kept. Press r to try again."))
		return b.String()
	}

	b.WriteString(s.Success.Render("✓ Your order is confirmed"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Reference ") + s.Selected.Render(c.receipt.Reference))
	b.WriteString("\n\n")

	if c.summary != "" {
		b.WriteString(c.summary)
		b.WriteString("\n")
	}
	if c.hookOutput != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(c.hookOutput))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
