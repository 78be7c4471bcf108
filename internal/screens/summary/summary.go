package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/screen"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/ui/components"
	"github.com/abhisek/mathtrainer/internal/ui/layout"
	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

// SummaryScreen displays the statistics of a finished session.
type SummaryScreen struct {
	ctrl    *session.Controller
	state   session.State
	summary *session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a state in the complete phase.
func New(ctrl *session.Controller, st session.State) *SummaryScreen {
	s := &SummaryScreen{
		ctrl:    ctrl,
		state:   st,
		summary: session.BuildSummary(st),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start New Session", Shortcut: "n", Action: s.restart},
		{Label: "Quit", Shortcut: "q", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New session"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// restart returns to configuration with the stored configuration reloaded.
func (s *SummaryScreen) restart() tea.Cmd {
	next, _, err := s.ctrl.Apply(context.Background(), s.state, session.RestartEvent{})
	if err != nil {
		slog.Warn("restart rejected", "error", err)
		return nil
	}
	s.state = next
	return screen.ChangePhase(next)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	heading := "Session Complete!"
	if sum.Abandoned {
		heading = "Session Ended"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(heading))
	b.WriteString("\n\n")

	if sum.Abandoned {
		b.WriteString(theme.Subtitle.Width(cw).Render(
			fmt.Sprintf("Stopped after %d of %d problems", sum.TotalProblems, sum.PlannedProblems)))
		b.WriteString("\n\n")
	}

	rows := [][2]string{
		{"Total Problems:", fmt.Sprintf("%d", sum.TotalProblems)},
		{"Correct First Try:", fmt.Sprintf("%d (%d%%)", sum.CorrectFirstTry, sum.FirstTryPercent)},
		{"Longest Streak:", fmt.Sprintf("%d", sum.LongestStreak)},
		{"Total Time:", session.FormatClock(sum.TotalTime)},
		{"Average Time per Problem:", session.FormatClock(sum.AveragePerProblem)},
	}

	labelStyle := lipgloss.NewStyle().
		Width(cw/2 + 2).
		Align(lipgloss.Right).
		Foreground(theme.TextDim).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Width(cw/2 - 2).
		PaddingLeft(2).
		Foreground(theme.Text)

	for _, r := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(r[0]), valueStyle.Render(r[1])))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	return components.Center(components.Card(b.String(), cw), width, height)
}
