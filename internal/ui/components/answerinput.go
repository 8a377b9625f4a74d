package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput restricted to numeric answers:
// digits, one decimal point, and a leading minus sign.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused numeric input.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the focus command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update filters non-numeric keystrokes before forwarding to the model.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key := kmsg.String(); len(key) == 1 && !a.allowed(key[0]) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) allowed(ch byte) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '.':
		return !strings.Contains(a.Model.Value(), ".")
	case ch == '-':
		return a.Model.Value() == ""
	}
	return false
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the raw text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Number parses the input as a float. The second return is false when
// the text is empty or not a number.
func (a AnswerInput) Number() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Model.Value()), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
