package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtrainer/internal/ui/components"
	"github.com/abhisek/mathtrainer/internal/ui/layout"
	"github.com/abhisek/mathtrainer/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height, s.state.Stats.TotalProblems, s.state.Config.ProblemCount)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.NewSessionProgress(
		s.state.Stats.TotalProblems, s.state.Config.ProblemCount, cw).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Streak: %d   Best: %d", s.state.Streak, s.state.Stats.LongestStreak)))
	b.WriteString("\n\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString("\n")
	}

	b.WriteString(s.renderProblem())
	b.WriteString("\n\n")
	b.WriteString(s.grid.View(cw))
	b.WriteString("\n\n")
	b.WriteString(s.renderFeedback())

	return components.Center(b.String(), width, height)
}

// renderProblem renders the equation with the unknown slot emphasized.
func (s *DrillScreen) renderProblem() string {
	var parts []string
	for _, p := range s.state.Problem.Parts() {
		if p.Unknown {
			parts = append(parts, theme.Unknown.Render(p.Text))
			continue
		}
		parts = append(parts, theme.Problem.Render(p.Text))
	}
	return strings.Join(parts, theme.Problem.Render(" "))
}

func (s *DrillScreen) renderFeedback() string {
	switch {
	case s.state.Attempt.Solved && s.lastResult.FirstTry:
		return theme.Correct.Render("Correct! First try.")
	case s.state.Attempt.Solved:
		return theme.Correct.Render("Correct!")
	case len(s.state.Attempt.Wrong) > 0:
		return theme.Incorrect.Render("Not quite. Try again.")
	default:
		return theme.Hint.Render("Select (1-4) or use arrows + Enter")
	}
}

func renderQuitConfirm(width, height, solved, total int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this session early?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d of %d problems solved. Your stats so far will be shown.", solved, total)) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("[Y] End session   [N] Keep going")
	return components.Center(theme.Card.Render(msg), width, height)
}
