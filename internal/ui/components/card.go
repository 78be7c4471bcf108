package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for screen cards so
// stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
