package drill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtrainer/internal/screen"
	"github.com/abhisek/mathtrainer/internal/session"
	"github.com/abhisek/mathtrainer/internal/ui/components"
	"github.com/abhisek/mathtrainer/internal/ui/layout"
)

// DrillScreen serves problems of an active session.
type DrillScreen struct {
	ctrl        *session.Controller
	state       session.State
	grid        components.OptionGrid
	lastResult  session.Result
	confirmQuit bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)

// New creates a DrillScreen for a state in the active phase.
func New(ctrl *session.Controller, st session.State) *DrillScreen {
	s := &DrillScreen{ctrl: ctrl, state: st}
	s.resetGrid()
	return s
}

func (s *DrillScreen) Init() tea.Cmd {
	return nil
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

// Status shows solved versus planned problems in the header.
func (s *DrillScreen) Status() string {
	return fmt.Sprintf("Training Session: %d/%d",
		s.state.Stats.TotalProblems, s.state.Config.ProblemCount)
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.OptionChosenMsg:
		return s.handleAnswer(msg.Value)

	case advanceMsg:
		return s.handleAdvance(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s.abandon()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	var cmd tea.Cmd
	s.grid, cmd = s.grid.Update(msg)
	return s, cmd
}

func (s *DrillScreen) handleAnswer(v int) (screen.Screen, tea.Cmd) {
	next, out, err := s.ctrl.Apply(context.Background(), s.state, session.AnswerEvent{Selected: v})
	if err != nil {
		slog.Warn("answer rejected", "error", err)
		return s, nil
	}
	s.state = next
	s.lastResult = out.Result
	s.syncGrid()

	if next.Phase == session.PhaseComplete {
		return s, screen.ChangePhase(next)
	}
	if out.Next != nil {
		token := *out.Next
		return s, tea.Tick(session.FeedbackDelay, func(time.Time) tea.Msg {
			return advanceMsg{Next: token}
		})
	}
	return s, nil
}

func (s *DrillScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	prevSeq := s.state.Seq
	next, _, err := s.ctrl.Apply(context.Background(), s.state, session.AdvanceEvent{Next: msg.Next})
	if err != nil {
		slog.Warn("advance rejected", "error", err)
		return s, nil
	}
	s.state = next
	if next.Seq != prevSeq {
		s.lastResult = session.Result{}
		s.resetGrid()
	}
	return s, nil
}

func (s *DrillScreen) abandon() (screen.Screen, tea.Cmd) {
	next, _, err := s.ctrl.Apply(context.Background(), s.state, session.AbandonEvent{})
	if err != nil {
		slog.Warn("abandon rejected", "error", err)
		return s, nil
	}
	s.state = next
	return s, screen.ChangePhase(next)
}

func (s *DrillScreen) resetGrid() {
	s.grid = components.NewOptionGrid(s.state.Options, s.state.Problem.Answer)
	s.syncGrid()
}

func (s *DrillScreen) syncGrid() {
	s.grid.Wrong = s.state.Attempt.Wrong
	s.grid.Solved = s.state.Attempt.Solved
}
