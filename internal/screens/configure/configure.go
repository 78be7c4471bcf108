package configure

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/screen"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/training"
	"github.com/abhisek/mathtrainer/internal/ui/components"
	"github.com/abhisek/mathtrainer/internal/ui/layout"
	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// GridColumns lays the 1..15 toggles out as a 5x3 grid.
const GridColumns = 5

type focus int

const (
	focusCount focus = iota
	focusGrid
	focusStart
	numFocus
)

// ConfigureScreen edits the training configuration and starts a session.
type ConfigureScreen struct {
	ctrl   *session.Controller
	state  session.State
	count  components.TextInput
	grid   components.NumberGrid
	start  components.Button
	focus  focus
	errMsg string
}

var _ screen.Screen = (*ConfigureScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigureScreen)(nil)

// New creates a ConfigureScreen for a state in the configuring phase.
func New(ctrl *session.Controller, st session.State) *ConfigureScreen {
	count := components.NewTextInput(strconv.Itoa(training.DefaultProblemCount), true, 3)
	count.SetValue(strconv.Itoa(st.Config.ProblemCount))

	s := &ConfigureScreen{
		ctrl:  ctrl,
		state: st,
		count: count,
		grid:  components.NewNumberGrid(training.MinTable, training.MaxTable, GridColumns, st.Config.SelectedNumbers),
		start: components.NewButton("Start Training", false, nil),
	}
	s.start.OnPress = s.startCmd
	return s
}

func (s *ConfigureScreen) Init() tea.Cmd {
	return s.setFocus(focusCount)
}

func (s *ConfigureScreen) Title() string {
	return "Configure Training"
}

func (s *ConfigureScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	switch s.focus {
	case focusGrid:
		hints = append(hints,
			layout.KeyHint{Key: "←↑↓→", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Toggle"})
	case focusStart:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start"})
	default:
		hints = append(hints, layout.KeyHint{Key: "0-9", Description: "Problems"})
	}
	return append(hints,
		layout.KeyHint{Key: "S", Description: "Start"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Config returns the configuration as currently entered.
func (s *ConfigureScreen) Config() training.Configuration {
	return training.Configuration{
		ProblemCount:    s.count.ClampedInt(training.MinProblemCount, training.MaxProblemCount),
		SelectedNumbers: s.grid.Selected,
	}
}

func (s *ConfigureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.NumberToggledMsg:
		s.state.Config = s.Config().Toggle(msg.N)
		s.grid.Selected = s.state.Config.SelectedNumbers
		s.errMsg = ""
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == focusCount {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ConfigureScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % numFocus)
	case "shift+tab":
		return s, s.setFocus((s.focus + numFocus - 1) % numFocus)
	case "s", "S":
		return s, s.startCmd()
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusCount:
		if msg.String() == "enter" {
			return s, s.setFocus(focusGrid)
		}
		s.count, cmd = s.count.Update(msg)
	case focusGrid:
		s.grid, cmd = s.grid.Update(msg)
	case focusStart:
		s.start, cmd = s.start.Update(msg)
	}
	return s, cmd
}

// setFocus moves focus to f. Leaving the count field normalizes its value.
func (s *ConfigureScreen) setFocus(f focus) tea.Cmd {
	if s.focus == focusCount && f != focusCount {
		s.count.SetValue(strconv.Itoa(s.Config().ProblemCount))
	}

	s.focus = f
	s.grid.Focused = f == focusGrid
	s.start.Focused = f == focusStart
	if f == focusCount {
		return s.count.Focus()
	}
	s.count.Blur()
	return nil
}

// startCmd asks the controller to start a session with the entered config.
func (s *ConfigureScreen) startCmd() tea.Cmd {
	cfg := s.Config()
	s.count.SetValue(strconv.Itoa(cfg.ProblemCount))

	next, _, err := s.ctrl.Apply(context.Background(), s.state, session.StartEvent{Config: cfg})
	s.state = next
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			s.errMsg = verr.Message
		} else {
			s.errMsg = err.Error()
		}
		return nil
	}
	s.errMsg = ""
	return screen.ChangePhase(next)
}

func (s *ConfigureScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == focusCount {
		label = label.Foreground(theme.Primary).Bold(true)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Training Session"))
	b.WriteString("\n\n")
	b.WriteString(label.Render("Number of problems: "))
	b.WriteString(s.count.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("between 1 and 100"))
	b.WriteString("\n\n")

	gridLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focus == focusGrid {
		gridLabel = gridLabel.Foreground(theme.Primary).Bold(true)
	}
	b.WriteString(gridLabel.Render("Select numbers to practice:"))
	b.WriteString("\n\n")
	b.WriteString(s.grid.View())
	b.WriteString("\n\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString("\n")
	}
	b.WriteString(s.start.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return components.Center(components.Card(b.String(), cw), width, height)
}
