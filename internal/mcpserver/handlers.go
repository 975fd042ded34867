package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/mark3labs/mcp-go/mcp"
)

// Status is the state of a signup session as returned by every session tool.
type Status struct {
	SessionID      string            `json:"session_id"`
	Step           signup.Step       `json:"step"`
	Title          string            `json:"title"`
	Position       int               `json:"position"`
	Total          int               `json:"total"`
	Finalized      bool              `json:"finalized"`
	Recommendation string            `json:"recommendation"`
	WeeklyTotal    string            `json:"weekly_total"`
	Draft          signup.OrderDraft `json:"draft"`
	Receipt        *orders.Receipt   `json:"receipt,omitempty"`
	SubmitError    string            `json:"submit_error,omitempty"`
}

// Recommendation is the result of recommend-plan.
type Recommendation struct {
	Plan         string `json:"plan"`
	Title        string `json:"title"`
	PricePerMeal string `json:"price_per_meal"`
}

// registerTools registers the signup tools with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("signup-start",
			mcp.WithDescription("Start a signup session. Returns the session id and the first step"),
		),
		s.handleStart,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("signup-advance",
			mcp.WithDescription("Complete the current step with its answers and move to the next one. "+
				"Completing the last step before confirmation places the order"),
			mcp.WithString("session_id", mcp.Required(),
				mcp.Description("Session id returned by signup-start"),
			),
			mcp.WithString("step", mcp.Required(),
				mcp.Description("Step being completed; must be the session's current step"),
			),
			mcp.WithObject("payload",
				mcp.Description(`Answers for the step, e.g. {"zip_code": "94107"} or {"goals": ["muscle"]}`),
			),
		),
		s.handleAdvance,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("signup-retreat",
			mcp.WithDescription("Go back one step. Answers already given are kept"),
			mcp.WithString("session_id", mcp.Required(),
				mcp.Description("Session id returned by signup-start"),
			),
		),
		s.handleRetreat,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("signup-status",
			mcp.WithDescription("Show the current step, progress, draft and recommendation of a session"),
			mcp.WithString("session_id", mcp.Required(),
				mcp.Description("Session id returned by signup-start"),
			),
		),
		s.handleStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("signup-end",
			mcp.WithDescription("Discard a signup session"),
			mcp.WithString("session_id", mcp.Required(),
				mcp.Description("Session id returned by signup-start"),
			),
		),
		s.handleEnd,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("recommend-plan",
			mcp.WithDescription("Recommend a diet plan for goals, allergies and avoided proteins without starting a session"),
			mcp.WithArray("goals", mcp.WithStringItems(), mcp.Description("Goal ids, e.g. muscle")),
			mcp.WithArray("allergies", mcp.WithStringItems(), mcp.Description("Allergy ids, e.g. dairy")),
			mcp.WithArray("avoided_proteins", mcp.WithStringItems(), mcp.Description("Protein ids, e.g. pork")),
		),
		s.handleRecommend,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("signup-orders",
			mcp.WithDescription("List the orders placed so far"),
		),
		s.handleOrders,
	)
}

// handleStart creates a session positioned at the first step.
func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := s.sessions.create(s.opts.Catalog, s.opts.Rules)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start session: %v", err)), nil
	}
	logger.Info("Signup session %s started", sess.id)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return jsonResult(statusOf(sess))
}

// handleAdvance decodes, validates and applies the payload of the current step.
func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}
	sess, errResult := s.lookup(args)
	if errResult != nil {
		return errResult, nil
	}

	stepID, ok := args["step"].(string)
	if !ok || stepID == "" {
		return mcp.NewToolResultError("missing or invalid 'step' parameter"), nil
	}
	step, err := signup.ParseStep(stepID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Clients send the payload as an object; some send it JSON-encoded.
	var raw []byte
	switch p := args["payload"].(type) {
	case nil:
	case string:
		raw = []byte(p)
	default:
		raw, err = json.Marshal(p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'payload': %v", err)), nil
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ctrl.IsTerminal() {
		// Completing confirmation again retries a failed submission.
		if step == signup.StepConfirmation && sess.receipt == nil {
			s.submit(ctx, sess)
			return jsonResult(statusOf(sess))
		}
		return mcp.NewToolResultError("the order has already been placed; start a new session"), nil
	}

	payload, err := signup.DecodePayload(step, raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := signup.ValidatePayload(payload, s.opts.GoalLimit); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := sess.ctrl.Advance(step, payload); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if sess.ctrl.Finalized() {
		s.submit(ctx, sess)
	}
	return jsonResult(statusOf(sess))
}

// handleRetreat moves the session back one step.
func (s *Server) handleRetreat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := s.lookup(request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.ctrl.IsTerminal() {
		return mcp.NewToolResultError("cannot go back from confirmation"), nil
	}
	if err := sess.ctrl.Retreat(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(statusOf(sess))
}

// handleStatus reports the session state.
func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := s.lookup(request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return jsonResult(statusOf(sess))
}

// handleEnd discards a session.
func (s *Server) handleEnd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := s.lookup(request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}
	s.sessions.remove(sess.id)
	logger.Info("Signup session %s ended", sess.id)
	return mcp.NewToolResultText(fmt.Sprintf("Session %s ended", sess.id)), nil
}

// handleRecommend runs the recommendation on a throwaway draft.
func (s *Server) handleRecommend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	draft := signup.OrderDraft{
		Goals:           request.GetStringSlice("goals", nil),
		Allergies:       request.GetStringSlice("allergies", nil),
		AvoidedProteins: request.GetStringSlice("avoided_proteins", nil),
	}
	id := s.opts.Rules.Recommend(draft)
	plan, _ := signup.FindPlan(id)
	return jsonResult(Recommendation{
		Plan:         plan.ID,
		Title:        plan.Title,
		PricePerMeal: signup.FormatPrice(plan.PricePerMeal),
	})
}

// handleOrders lists the orders held by the order bus.
func (s *Server) handleOrders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.opts.Orders == nil {
		return mcp.NewToolResultError("order listing is not available in offline mode"), nil
	}
	list, err := s.opts.Orders.Orders(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list orders: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No orders"), nil
	}
	return jsonResult(list)
}

// lookup resolves the session_id argument.
func (s *Server) lookup(args map[string]any) (*session, *mcp.CallToolResult) {
	id, ok := args["session_id"].(string)
	if !ok || id == "" {
		return nil, mcp.NewToolResultError("missing or invalid 'session_id' parameter")
	}
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("unknown session %q", id))
	}
	return sess, nil
}

// submit hands the finalized draft to the submitter. Must hold sess.mu.
func (s *Server) submit(ctx context.Context, sess *session) {
	receipt, err := s.opts.Submitter.Submit(ctx, sess.ctrl.Draft())
	if err != nil {
		logger.Error("Session %s: order submission failed: %v", sess.id, err)
		sess.submitErr = err.Error()
		return
	}
	sess.receipt = receipt
	sess.submitErr = ""
	logger.Info("Session %s: order %s placed", sess.id, receipt.Reference)

	if _, err := hooks.RunPostSubmit(ctx, s.opts.Hooks, s.opts.WorkDir, hooks.Variables{
		Order:     receipt.OrderID,
		Reference: receipt.Reference,
		Plan:      receipt.Plan,
	}); err != nil {
		logger.Warn("post_submit hook cancelled: %v", err)
	}
}

// statusOf snapshots the session. Must hold sess.mu.
func statusOf(sess *session) Status {
	current, total := sess.ctrl.Progress()
	draft := sess.ctrl.Draft()
	return Status{
		SessionID:      sess.id,
		Step:           sess.ctrl.Current(),
		Title:          sess.ctrl.Current().Title(),
		Position:       current,
		Total:          total,
		Finalized:      sess.ctrl.Finalized(),
		Recommendation: sess.ctrl.Recommendation(),
		WeeklyTotal:    signup.FormatPrice(signup.QuoteDraft(draft).Total),
		Draft:          draft.Masked(),
		Receipt:        sess.receipt,
		SubmitError:    sess.submitErr,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
