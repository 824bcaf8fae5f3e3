package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// TerminalSender rings the terminal bell and prints the event message.
type TerminalSender struct {
	mu   sync.Mutex
	w    io.Writer
	bell bool
}

// NewTerminalSender writes notifications to w. When bell is set each
// message is preceded by the BEL character.
func NewTerminalSender(w io.Writer, bell bool) *TerminalSender {
	return &TerminalSender{w: w, bell: bell}
}

// Name returns the sender name.
func (s *TerminalSender) Name() string {
	return "terminal"
}

// Send writes the event message on its own line.
func (s *TerminalSender) Send(ctx context.Context, event *Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := ""
	if s.bell {
		prefix = "\a"
	}

	_, err := fmt.Fprintf(s.w, "%s[%s] %s\n", prefix, event.Timestamp.Format("15:04"), event.Message())

	return err
}
