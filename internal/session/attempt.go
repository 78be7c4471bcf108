package session

import (
	"slices"

	"github.com/abhisek/mathtrainer/internal/problemgen"
)

// AttemptState tracks the learner's selections on the current problem.
// Values are copied on write; a previous AttemptState is never modified.
type AttemptState struct {
	// Wrong holds the distinct wrong answers tried so far, in order.
	Wrong []int

	// Solved is set once the correct answer has been selected.
	Solved bool
}

// Result is the outcome of a single submission.
type Result struct {
	Correct  bool
	FirstTry bool
}

// Tried reports whether v was already submitted as a wrong answer.
func (a AttemptState) Tried(v int) bool {
	return slices.Contains(a.Wrong, v)
}

// Submit evaluates selected against p. A correct answer marks the attempt
// solved; FirstTry is true only when no wrong answer preceded it. Repeating a
// wrong answer leaves the state as it was. Once solved, further submissions
// are no-ops and return a zero Result.
func Submit(selected int, p problemgen.Problem, a AttemptState) (AttemptState, Result) {
	if a.Solved {
		return a, Result{}
	}

	if problemgen.CheckAnswer(selected, p) {
		return AttemptState{Wrong: a.Wrong, Solved: true}, Result{
			Correct:  true,
			FirstTry: len(a.Wrong) == 0,
		}
	}

	if a.Tried(selected) {
		return a, Result{}
	}
	wrong := append(slices.Clone(a.Wrong), selected)
	return AttemptState{Wrong: wrong}, Result{}
}
