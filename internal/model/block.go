package model

import (
	"fmt"
	"time"
)

// BreakLabel is the label every break block carries.
const BreakLabel = "Break"

// BlockKind tells study sessions and breaks apart.
type BlockKind int

const (
	StudySession BlockKind = iota
	Break
)

func (k BlockKind) String() string {
	switch k {
	case StudySession:
		return "Study Session"
	case Break:
		return "Break"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// ParseBlockKind accepts the text produced by String.
func ParseBlockKind(s string) (BlockKind, error) {
	switch s {
	case "Study Session":
		return StudySession, nil
	case "Break":
		return Break, nil
	default:
		return 0, fmt.Errorf("unknown block type %q", s)
	}
}

func (k BlockKind) MarshalText() ([]byte, error) {
	if k != StudySession && k != Break {
		return nil, fmt.Errorf("unknown block kind %d", int(k))
	}

	return []byte(k.String()), nil
}

func (k *BlockKind) UnmarshalText(b []byte) error {
	v, err := ParseBlockKind(string(b))
	if err != nil {
		return err
	}

	*k = v

	return nil
}

// Block is one scheduled interval.
type Block struct {
	// Label is the subject name, or BreakLabel for breaks
	Label string `json:"subject"`

	// Kind is StudySession or Break
	Kind BlockKind `json:"type"`

	// Start is inclusive
	Start TimeOfDay `json:"start"`

	// End is exclusive
	End TimeOfDay `json:"end"`
}

// Minutes returns the block length.
func (b Block) Minutes() int {
	return int(b.End - b.Start)
}

func (b Block) String() string {
	return fmt.Sprintf("%s (%s): %s - %s", b.Label, b.Kind, b.Start, b.End)
}

// State is the persisted planner state: the subject registry plus the
// active schedule.
type State struct {
	Subjects  []string  `json:"subjects"`
	Schedule  []Block   `json:"schedule"`
	Revision  string    `json:"revision,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}

	out := *s
	out.Subjects = append([]string(nil), s.Subjects...)
	out.Schedule = append([]Block(nil), s.Schedule...)

	return &out
}
