package notify

import (
	"context"

	"github.com/inovacc/studyplan/internal/countdown"
	"github.com/inovacc/studyplan/internal/model"
)

// Watcher turns countdown statuses into events. When the driver moves past
// one or more blocks between two statuses, the latest block to start is
// announced. Blocks already in the past at the first status are not.
type Watcher struct {
	dispatcher *Dispatcher
	schedule   []model.Block
	last       int
	seen       bool
	done       bool
}

// NewWatcher creates a watcher over schedule that dispatches through d.
func NewWatcher(d *Dispatcher, schedule []model.Block) *Watcher {
	return &Watcher{
		dispatcher: d,
		schedule:   append([]model.Block(nil), schedule...),
	}
}

// Observe inspects one status and dispatches any resulting events. It
// returns the number of events dispatched.
func (w *Watcher) Observe(ctx context.Context, st countdown.Status) int {
	if w.done {
		return 0
	}

	if !w.seen {
		w.seen = true
		w.last = st.Index
		w.done = st.Done

		return 0
	}

	sent := 0

	if st.Index > w.last && st.Index <= len(w.schedule) {
		started := st.Index - 1
		w.dispatcher.Dispatch(ctx, NewEvent(EventBlockStart, st.At).WithBlock(w.schedule[started], started, len(w.schedule)))
		sent++
	}

	if st.Done {
		w.done = true
		w.dispatcher.Dispatch(ctx, NewEvent(EventScheduleDone, st.At))
		sent++
	}

	w.last = st.Index

	return sent
}
