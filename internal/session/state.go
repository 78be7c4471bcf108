package session

import (
	"github.com/abhisek/mathtrainer/internal/problemgen"
	"github.com/abhisek/mathtrainer/internal/training"
)

// Phase represents the current phase of the drill.
type Phase int

const (
	PhaseConfiguring Phase = iota // Editing the training configuration
	PhaseActive                   // Serving problems
	PhaseComplete                 // Showing the summary
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// State is the full drill state. The Controller never mutates a State in
// place; every transition returns a new value.
type State struct {
	// Phase is the current phase.
	Phase Phase

	// Config is the configuration being edited, or the one the active
	// session was started with.
	Config training.Configuration

	// SessionID identifies the active session. Empty while configuring.
	SessionID string

	// Seq is the 1-based index of the current problem within the session.
	Seq int

	// Problem is the problem on screen while active.
	Problem problemgen.Problem

	// Options are the answer choices for Problem.
	Options []int

	// Attempt tracks selections on Problem.
	Attempt AttemptState

	// Streak is the running count of consecutive first-try solves.
	Streak int

	// Stats accumulates results for the session.
	Stats Stats

	// AwaitingNext is set between a solved problem and the delayed
	// generation of the next one.
	AwaitingNext bool

	// Abandoned is set when the session was ended before all problems
	// were solved.
	Abandoned bool
}

// NextProblem identifies the pending problem generation scheduled after a
// solve. It is handed back through AdvanceEvent once the display delay
// elapses; a token from an older session or problem is ignored.
type NextProblem struct {
	SessionID string
	Seq       int
}

// Remaining returns how many problems are left in the session.
func (s State) Remaining() int {
	return max(0, s.Config.ProblemCount-s.Stats.TotalProblems)
}
