// Package notify dispatches countdown events, such as a block starting, to
// registered senders.
package notify

import (
	"context"
	"time"

	"github.com/inovacc/studyplan/internal/model"
)

// Event types that can trigger notifications.
const (
	EventBlockStart   = "block-start"
	EventScheduleDone = "schedule-done"
)

// Event represents a notification event with all context needed for formatting.
type Event struct {
	// Type is the event type
	Type string

	// Block is the block that started. Nil for EventScheduleDone.
	Block *model.Block

	// Index is the position of Block in the schedule
	Index int

	// Total is the number of blocks in the schedule
	Total int

	// Timestamp is when the event occurred
	Timestamp time.Time
}

// Sender is the interface for notification senders.
type Sender interface {
	// Send sends a notification for the given event.
	Send(ctx context.Context, event *Event) error

	// Name returns the sender's name for logging purposes.
	Name() string
}

// NewEvent creates a new event with the given type and timestamp.
func NewEvent(eventType string, at time.Time) *Event {
	return &Event{
		Type:      eventType,
		Timestamp: at,
	}
}

// WithBlock sets the started block and its position on the event.
func (e *Event) WithBlock(b model.Block, index, total int) *Event {
	e.Block = &b
	e.Index = index
	e.Total = total

	return e
}

// Message renders the event as a single line of text.
func (e *Event) Message() string {
	switch e.Type {
	case EventScheduleDone:
		return "All blocks have started. Study plan complete."
	case EventBlockStart:
		if e.Block == nil {
			return "Block started"
		}

		if e.Block.Kind == model.Break {
			return "Break time until " + e.Block.End.String()
		}

		return "Time to study " + e.Block.Label + " until " + e.Block.End.String()
	default:
		return e.Type
	}
}
