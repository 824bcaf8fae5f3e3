package core

import "fmt"

// PersistError wraps a store failure after a state change was computed.
// The change is lost and the previously saved state is still current.
type PersistError struct {
	Operation string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: saving state: %v", e.Operation, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
