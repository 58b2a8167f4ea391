package display

import "fmt"

// InitError reports a failed driver initialization. Step names the
// phase that failed; any terminal state already applied has been
// reversed when this is returned.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("display: initialize: %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// StateError reports an operation invoked in the wrong driver state.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("display: %s: invalid in state %s", e.Op, e.State)
}
