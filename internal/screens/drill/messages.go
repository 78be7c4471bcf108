package drill

import "github.com/abhisek/mathtrainer/internal/session"

// advanceMsg is sent when the feedback delay after a correct answer ends.
type advanceMsg struct {
	Next session.NextProblem
}
