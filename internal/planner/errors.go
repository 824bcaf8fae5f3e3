package planner

import (
	"errors"
	"fmt"
)

var (
	ErrNoSubjects      = errors.New("add subjects before generating a schedule")
	ErrInvalidWindow   = errors.New("end time must be after start time")
	ErrInvalidDuration = errors.New("invalid session or break duration")
	ErrEmptySchedule   = errors.New("generated schedule is empty")
)

// WindowTooShortError reports a window that cannot hold a single study
// session (or, in balanced mode, a single round of sessions).
type WindowTooShortError struct {
	WindowMinutes int
	NeedMinutes   int
}

func (e *WindowTooShortError) Error() string {
	return fmt.Sprintf("%v: window is %d minutes, need at least %d",
		ErrEmptySchedule, e.WindowMinutes, e.NeedMinutes)
}

func (e *WindowTooShortError) Unwrap() error {
	return ErrEmptySchedule
}
