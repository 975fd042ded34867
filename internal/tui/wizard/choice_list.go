package wizard

import (
	"slices"
	"strings"

	"github.com/macroplate/macroplate/internal/signup"
	"github.com/macroplate/macroplate/internal/tui/theme"
)

// choice is one row of a ChoiceList.
type choice struct {
	id          string
	label       string
	description string
	tag         string // Rendered after the label, e.g. "recommended" or a price
}

// ChoiceList renders selectable rows with a cursor. Selection is owned by the
// caller so multi-select screens can apply their own toggle rules.
type ChoiceList struct {
	choices []choice
	cursor  int
	offset  int
	height  int  // Visible rows, 0 for all
	multi   bool // Checkbox markers instead of radio markers
}

func newChoiceList(choices []choice, multi bool) *ChoiceList {
	return &ChoiceList{choices: choices, multi: multi}
}

// SetHeight limits the number of visible rows.
func (l *ChoiceList) SetHeight(h int) {
	l.height = h
	l.clampOffset()
}

// MoveUp moves the cursor up, wrapping to the bottom.
func (l *ChoiceList) MoveUp() {
	if len(l.choices) == 0 {
		return
	}
	l.cursor = (l.cursor - 1 + len(l.choices)) % len(l.choices)
	l.clampOffset()
}

// MoveDown moves the cursor down, wrapping to the top.
func (l *ChoiceList) MoveDown() {
	if len(l.choices) == 0 {
		return
	}
	l.cursor = (l.cursor + 1) % len(l.choices)
	l.clampOffset()
}

// SetCursorTo moves the cursor to id when present.
func (l *ChoiceList) SetCursorTo(id string) {
	for i, c := range l.choices {
		if c.id == id {
			l.cursor = i
			l.clampOffset()
			return
		}
	}
}

// Current returns the id under the cursor.
func (l *ChoiceList) Current() string {
	if l.cursor < 0 || l.cursor >= len(l.choices) {
		return ""
	}
	return l.choices[l.cursor].id
}

// SetTag updates the tag shown next to id.
func (l *ChoiceList) SetTag(id, tag string) {
	for i := range l.choices {
		if l.choices[i].id == id {
			l.choices[i].tag = tag
		}
	}
}

func (l *ChoiceList) clampOffset() {
	if l.height <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
}

// View renders the visible rows, marking ids in selected.
func (l *ChoiceList) View(selected []string, focused bool) string {
	s := theme.Current().S()

	end := len(l.choices)
	if l.height > 0 && l.offset+l.height < end {
		end = l.offset + l.height
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		c := l.choices[i]
		isSelected := slices.Contains(selected, c.id)

		pointer := "  "
		if focused && i == l.cursor {
			pointer = s.Cursor.Render("› ")
		}

		marker := l.marker(isSelected)
		label := s.Base.Render(c.label)
		if isSelected {
			marker = s.Selected.Render(marker)
			label = s.Selected.Render(c.label)
		}

		b.WriteString(pointer + marker + " " + label)
		if c.tag != "" {
			b.WriteString("  " + s.Recommended.Render(c.tag))
		}
		if c.description != "" {
			b.WriteString("  " + s.Muted.Render(c.description))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (l *ChoiceList) marker(selected bool) string {
	switch {
	case l.multi && selected:
		return "[x]"
	case l.multi:
		return "[ ]"
	case selected:
		return "(•)"
	default:
		return "( )"
	}
}

func optionChoices(options []signup.Option) []choice {
	out := make([]choice, len(options))
	for i, o := range options {
		out[i] = choice{id: o.ID, label: o.Label, description: o.Description}
	}
	return out
}
