package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for small numeric fields.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewTextInput creates a new styled text input limited to maxWidth runes.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth + 1)
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. Non-digit text is dropped in numeric mode.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if r < '0' || r > '9' {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// ClampedInt parses the value and limits it to [lo, hi]. Empty or
// non-numeric input yields lo.
func (t TextInput) ClampedInt(lo, hi int) int {
	n, err := strconv.Atoi(t.Model.Value())
	if err != nil {
		return lo
	}
	return max(lo, min(hi, n))
}
