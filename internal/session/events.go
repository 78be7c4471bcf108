package session

import "github.com/abhisek/mathtrainer/internal/training"

// Event is an input to Controller.Apply.
type Event interface {
	event()
}

// StartEvent requests a new session with the edited configuration.
type StartEvent struct {
	Config training.Configuration
}

// AnswerEvent carries an option selected by the learner.
type AnswerEvent struct {
	Selected int
}

// AdvanceEvent fires after the display delay following a solve.
type AdvanceEvent struct {
	Next NextProblem
}

// AbandonEvent ends the active session early.
type AbandonEvent struct{}

// RestartEvent leaves the summary for a new configuration round.
type RestartEvent struct{}

func (StartEvent) event()   {}
func (AnswerEvent) event()  {}
func (AdvanceEvent) event() {}
func (AbandonEvent) event() {}
func (RestartEvent) event() {}
