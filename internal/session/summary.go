package session

import (
	"fmt"
	"time"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	TotalProblems     int
	PlannedProblems   int
	CorrectFirstTry   int
	FirstTryPercent   int
	LongestStreak     int
	TotalTime         time.Duration
	AveragePerProblem time.Duration
	Abandoned         bool
}

// BuildSummary creates a Summary from a completed state.
func BuildSummary(s State) *Summary {
	return &Summary{
		TotalProblems:     s.Stats.TotalProblems,
		PlannedProblems:   s.Config.ProblemCount,
		CorrectFirstTry:   s.Stats.CorrectFirstTry,
		FirstTryPercent:   s.Stats.FirstTryPercent(),
		LongestStreak:     s.Stats.LongestStreak,
		TotalTime:         s.Stats.Elapsed(),
		AveragePerProblem: s.Stats.AveragePerProblem,
		Abandoned:         s.Abandoned,
	}
}

// FormatClock renders d as minutes:seconds with zero-padded seconds.
// Fractions of a second are truncated.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
