package model

import (
	"fmt"
	"strings"
)

// Mode selects the schedule generation strategy.
type Mode string

const (
	// ModeIntensive cycles subjects back-to-back until the end time.
	ModeIntensive Mode = "intensive"

	// ModeBalanced emits the same sequence but can derive the session
	// length so one pass over the subjects fills the window.
	ModeBalanced Mode = "balanced"
)

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeIntensive:
		return ModeIntensive, nil
	case ModeBalanced:
		return ModeBalanced, nil
	default:
		return "", fmt.Errorf("unknown schedule mode %q (want %s or %s)", s, ModeIntensive, ModeBalanced)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = v

	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}
