package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// NumberToggledMsg is emitted when the user toggles a number in the grid.
type NumberToggledMsg struct {
	N int
}

// NumberGrid is a grid of toggle buttons for the numbers Min..Max.
// The owner keeps Selected in sync after handling NumberToggledMsg.
type NumberGrid struct {
	Min, Max int
	Columns  int
	Selected []int
	Cursor   int
	Focused  bool
}

// NewNumberGrid creates a grid for lo..hi laid out in columns.
func NewNumberGrid(lo, hi, columns int, selected []int) NumberGrid {
	return NumberGrid{
		Min:      lo,
		Max:      hi,
		Columns:  columns,
		Selected: selected,
	}
}

// Len returns the number of cells.
func (g NumberGrid) Len() int {
	return g.Max - g.Min + 1
}

// CursorNumber returns the number under the cursor.
func (g NumberGrid) CursorNumber() int {
	return g.Min + g.Cursor
}

// Update handles navigation and toggling. Keys are ignored when unfocused.
func (g NumberGrid) Update(msg tea.Msg) (NumberGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !g.Focused {
		return g, nil
	}

	n := g.Len()
	switch kmsg.String() {
	case "left", "h":
		if g.Cursor%g.Columns > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor%g.Columns < g.Columns-1 && g.Cursor+1 < n {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-g.Columns >= 0 {
			g.Cursor -= g.Columns
		}
	case "down", "j":
		if g.Cursor+g.Columns < n {
			g.Cursor += g.Columns
		}
	case "space", "enter", "x":
		num := g.CursorNumber()
		return g, func() tea.Msg { return NumberToggledMsg{N: num} }
	}
	return g, nil
}

// View renders the grid.
func (g NumberGrid) View() string {
	var b strings.Builder
	for i := 0; i < g.Len(); i++ {
		num := g.Min + i
		cell := fmt.Sprintf(" %2d ", num)

		style := theme.ToggleOff
		if slices.Contains(g.Selected, num) {
			style = theme.ToggleOn
		}
		if g.Focused && i == g.Cursor {
			style = style.Underline(true).Foreground(theme.Accent)
			cell = fmt.Sprintf("[%2d]", num)
		}
		b.WriteString(style.Render(cell))

		if (i+1)%g.Columns == 0 {
			if i+1 < g.Len() {
				b.WriteString("\n\n")
			}
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
