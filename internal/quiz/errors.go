package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is called outside its
// precondition. It indicates an integration bug in the caller.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError describes a rejected operation.
type TransitionError struct {
	Op     string
	Screen Screen
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s on %s screen: %s", e.Op, e.Screen, e.Reason)
}

// Is reports whether target is ErrInvalidTransition.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
