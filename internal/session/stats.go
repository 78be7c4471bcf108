package session

import (
	"math"
	"time"

	"github.com/abhisek/mathtrainer/internal/training"
)

// Stats aggregates per-problem outcomes for one session.
type Stats struct {
	TotalProblems   int
	CorrectFirstTry int
	LongestStreak   int
	StartTime       time.Time

	// EndTime is nil until the session is finished.
	EndTime *time.Time

	// AveragePerProblem is computed when the session finishes.
	AveragePerProblem time.Duration
}

// NewStats returns zeroed statistics starting at start.
func NewStats(start time.Time) Stats {
	return Stats{StartTime: start}
}

// RecordCompletion folds one solved problem into prev. streak is the caller's
// running first-try streak after this problem. When the configured problem
// count is reached, EndTime is stamped with now and the average computed.
func RecordCompletion(prev Stats, firstTry bool, streak int, cfg training.Configuration, now time.Time) Stats {
	next := prev
	next.TotalProblems++
	if firstTry {
		next.CorrectFirstTry++
	}
	next.LongestStreak = max(prev.LongestStreak, streak)

	if cfg.ProblemCount > 0 && next.TotalProblems >= cfg.ProblemCount && next.EndTime == nil {
		next = next.finish(now, cfg.ProblemCount)
	}
	return next
}

// finish stamps the end time and averages the elapsed time over n problems.
func (s Stats) finish(now time.Time, n int) Stats {
	end := now
	s.EndTime = &end
	if n > 0 {
		s.AveragePerProblem = end.Sub(s.StartTime) / time.Duration(n)
	}
	return s
}

// Finished reports whether EndTime has been stamped.
func (s Stats) Finished() bool {
	return s.EndTime != nil
}

// Elapsed returns the session duration, or zero while it is still running.
func (s Stats) Elapsed() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// FirstTryPercent returns the rounded share of problems solved first try.
func (s Stats) FirstTryPercent() int {
	if s.TotalProblems == 0 {
		return 0
	}
	return int(math.Round(float64(s.CorrectFirstTry) / float64(s.TotalProblems) * 100))
}
