package components

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// OptionGridColumns is the number of columns in the answer grid.
const OptionGridColumns = 2

// OptionChosenMsg is emitted when the user picks an enabled option.
type OptionChosenMsg struct {
	Value int
}

// OptionGrid renders answer options as a 2-column grid of buttons.
// Wrong tries stay disabled and red; once solved every option is disabled
// and the answer turns green.
type OptionGrid struct {
	Values []int
	Wrong  []int
	Solved bool
	Answer int
	Cursor int
}

// NewOptionGrid creates a grid over values with the cursor on the first one.
func NewOptionGrid(values []int, answer int) OptionGrid {
	return OptionGrid{
		Values: values,
		Answer: answer,
	}
}

// Disabled reports whether the option at index i can no longer be chosen.
func (g OptionGrid) Disabled(i int) bool {
	if i < 0 || i >= len(g.Values) {
		return true
	}
	return g.Solved || slices.Contains(g.Wrong, g.Values[i])
}

// Update handles navigation, digit shortcuts and selection.
func (g OptionGrid) Update(msg tea.Msg) (OptionGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || g.Solved {
		return g, nil
	}

	n := len(g.Values)
	switch key := kmsg.String(); key {
	case "left", "h":
		if g.Cursor%OptionGridColumns > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor%OptionGridColumns < OptionGridColumns-1 && g.Cursor+1 < n {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-OptionGridColumns >= 0 {
			g.Cursor -= OptionGridColumns
		}
	case "down", "j":
		if g.Cursor+OptionGridColumns < n {
			g.Cursor += OptionGridColumns
		}
	case "enter", "space":
		return g, g.choose(g.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < n {
				g.Cursor = i
				return g, g.choose(i)
			}
		}
	}
	return g, nil
}

func (g OptionGrid) choose(i int) tea.Cmd {
	if g.Disabled(i) {
		return nil
	}
	v := g.Values[i]
	return func() tea.Msg { return OptionChosenMsg{Value: v} }
}

// View renders the grid at the given total width.
func (g OptionGrid) View(width int) string {
	cellWidth := width/OptionGridColumns - 2
	if cellWidth < 10 {
		cellWidth = 10
	}

	var rows []string
	for start := 0; start < len(g.Values); start += OptionGridColumns {
		end := min(start+OptionGridColumns, len(g.Values))
		cells := make([]string, 0, OptionGridColumns)
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (g OptionGrid) renderCell(i, width int) string {
	v := g.Values[i]
	label := fmt.Sprintf("%d)  %d", i+1, v)

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Margin(0, 1)

	switch {
	case g.Solved && v == g.Answer:
		style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
		label += "  ✓"
	case slices.Contains(g.Wrong, v):
		style = style.BorderForeground(theme.Error).Foreground(theme.Error)
		label += "  ✗"
	case g.Solved:
		style = style.BorderForeground(theme.Border).Foreground(theme.TextDim)
	case i == g.Cursor:
		style = style.BorderForeground(theme.Primary).Foreground(theme.Primary).Bold(true)
	default:
		style = style.BorderForeground(theme.Border).Foreground(theme.Text)
	}
	return style.Render(label)
}
