package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for small numeric fields such
// as the session size or plan length.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates a numeric text input with the given
// placeholder and digit limit.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return NumberInput{Model: ti}
}

// Focus gives the input keyboard focus.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes keyboard focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Update handles messages, dropping non-digit character keys.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the current input value.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// NumericValue returns the input value as an integer.
func (n NumberInput) NumericValue() (int, error) {
	return strconv.Atoi(n.Model.Value())
}
