package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label string
	// Shortcut activates the item directly when pressed (optional).
	Shortcut string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			return m, m.activate(m.Selected)
		}
	default:
		for i, item := range m.Items {
			if item.Shortcut != "" && item.Shortcut == key {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}

	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		suffix := ""
		if item.Shortcut != "" {
			suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" (" + item.Shortcut + ")")
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Disabled.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ "+item.Label) + suffix)
		default:
			b.WriteString(theme.Unselected.Render("    "+item.Label) + suffix)
		}
		b.WriteString("\n")
	}
	return b.String()
}
