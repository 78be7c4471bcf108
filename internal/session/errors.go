package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event is not accepted in the
// current phase.
var ErrInvalidTransition = errors.New("invalid session transition")

// ValidationError reports a configuration that cannot start a session.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func transitionError(from Phase, ev Event) error {
	return fmt.Errorf("%w: %T in %s", ErrInvalidTransition, ev, from)
}
