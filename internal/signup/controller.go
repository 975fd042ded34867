package signup

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a navigation request would move the
// step pointer outside the catalog or does not match the current step.
var ErrInvalidTransition = errors.New("invalid transition")

// Direction of a step transition.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Transition describes one pointer move.
type Transition struct {
	From      Step
	To        Step
	Direction Direction
}

// Observer is notified after every successful transition.
type Observer func(t Transition, draft OrderDraft)

// Controller owns the step pointer and the order draft for a single signup
// session. It is not safe for concurrent use; callers that share a
// Controller across goroutines must serialize access.
type Controller struct {
	catalog   Catalog
	pos       int
	draft     OrderDraft
	rules     RecommendationRules
	observers []Observer
}

// NewController creates a controller positioned at the first catalog entry
// with an empty draft.
func NewController(catalog Catalog, rules RecommendationRules) (*Controller, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	c := make(Catalog, len(catalog))
	copy(c, catalog)
	return &Controller{
		catalog: c,
		rules:   rules,
	}, nil
}

// Observe registers an observer for transitions.
func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

// Catalog returns a copy of the step catalog.
func (c *Controller) Catalog() Catalog {
	out := make(Catalog, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// Current returns the active step.
func (c *Controller) Current() Step {
	return c.catalog[c.pos]
}

// Position returns the index of the active step in the catalog.
func (c *Controller) Position() int {
	return c.pos
}

// Progress returns the active position and the number of steps before the
// terminal one, for progress indicators.
func (c *Controller) Progress() (current, total int) {
	return c.pos, len(c.catalog) - 1
}

// IsInitial reports whether the pointer is at the first step.
func (c *Controller) IsInitial() bool {
	return c.pos == 0
}

// IsTerminal reports whether the pointer is at the last step.
func (c *Controller) IsTerminal() bool {
	return c.pos == len(c.catalog)-1
}

// Finalized reports whether the draft is complete and ready for submission.
func (c *Controller) Finalized() bool {
	return c.IsTerminal()
}

// Draft returns a copy of the accumulated draft.
func (c *Controller) Draft() OrderDraft {
	return c.draft.Clone()
}

// Rules returns the recommendation rules in effect.
func (c *Controller) Rules() RecommendationRules {
	return c.rules
}

// Recommendation returns the plan recommended for the current draft.
func (c *Controller) Recommendation() string {
	return c.rules.Recommend(c.draft)
}

// Advance merges the payload of the completed step into the draft and moves
// to the next catalog entry. The payload is trusted to be valid; only the
// navigation contract is checked.
func (c *Controller) Advance(step Step, payload Payload) error {
	if c.IsTerminal() {
		return fmt.Errorf("%w: cannot advance from terminal step %s", ErrInvalidTransition, c.Current())
	}
	if step != c.Current() {
		return fmt.Errorf("%w: completed step %s but current step is %s", ErrInvalidTransition, step, c.Current())
	}
	if payload == nil || payload.Step() != step {
		return fmt.Errorf("%w: payload does not belong to step %s", ErrInvalidTransition, step)
	}

	payload.apply(&c.draft)
	from := c.Current()
	c.pos++
	c.notify(Transition{From: from, To: c.Current(), Direction: Forward})
	return nil
}

// Retreat moves the pointer back one step. The draft is left untouched.
func (c *Controller) Retreat() error {
	if c.IsInitial() {
		return fmt.Errorf("%w: cannot retreat from initial step %s", ErrInvalidTransition, c.Current())
	}
	from := c.Current()
	c.pos--
	c.notify(Transition{From: from, To: c.Current(), Direction: Backward})
	return nil
}

// Reset returns the controller to the first step with an empty draft.
func (c *Controller) Reset() {
	c.pos = 0
	c.draft = OrderDraft{}
}

func (c *Controller) notify(t Transition) {
	if len(c.observers) == 0 {
		return
	}
	snapshot := c.draft.Clone()
	for _, o := range c.observers {
		o(t, snapshot)
	}
}
