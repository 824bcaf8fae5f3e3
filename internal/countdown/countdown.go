// Package countdown drives a once-per-interval poll over a schedule,
// reporting the time left until the next block starts.
package countdown

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/inovacc/studyplan/internal/model"
)

// DefaultInterval is the poll period.
const DefaultInterval = time.Second

// Status is one poll result.
type Status struct {
	// Index is the position of Next within the schedule
	Index int

	// Total is the schedule length
	Total int

	// Next is the block being counted down to
	Next model.Block

	// Active is the block in progress, if any
	Active *model.Block

	// Remaining is the time until Next starts
	Remaining time.Duration

	// Done is set once every block has started
	Done bool

	// At is the time the status was polled
	At time.Time
}

// Label describes the next block, or completion.
func (s Status) Label() string {
	if s.Done {
		return "All sessions complete."
	}

	return fmt.Sprintf("Next: %s (%s)", s.Next.Label, s.Next.Kind)
}

// Clock renders Remaining as HH:MM:SS.
func (s Status) Clock() string {
	if s.Done {
		return FormatRemaining(0)
	}

	return FormatRemaining(s.Remaining)
}

// FormatRemaining renders d as HH:MM:SS, truncating to whole seconds.
// Negative durations render as zero.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// WithInterval sets the poll period.
func WithInterval(interval time.Duration) Option {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Driver tracks the position within a schedule and owns at most one
// running poller.
type Driver struct {
	mu       sync.Mutex
	schedule []model.Block
	index    int

	now      func() time.Time
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a Driver positioned at the first block of schedule.
func New(schedule []model.Block, opts ...Option) *Driver {
	d := &Driver{
		schedule: append([]model.Block(nil), schedule...),
		now:      time.Now,
		interval: DefaultInterval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Index returns the position of the block currently counted down to.
func (d *Driver) Index() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.index
}

// Poll compares now with the start of the current block on now's calendar
// day. Blocks whose start has already passed are skipped, any number at a
// time. Once the index runs past the end the returned status is Done.
func (d *Driver) Poll(now time.Time) Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pollLocked(now)
}

func (d *Driver) pollLocked(now time.Time) Status {
	total := len(d.schedule)

	for d.index < total {
		next := d.schedule[d.index]

		remaining := next.Start.On(now).Sub(now)
		if remaining > 0 {
			st := Status{
				Index:     d.index,
				Total:     total,
				Next:      next,
				Remaining: remaining,
				At:        now,
			}

			if d.index > 0 {
				prev := d.schedule[d.index-1]
				if prev.End.On(now).After(now) {
					st.Active = &prev
				}
			}

			return st
		}

		d.index++
	}

	return Status{Index: total, Total: total, Done: true, At: now}
}

// Start launches the poller. report is called immediately and then once
// per interval until the schedule completes, ctx is cancelled or Stop is
// called. Completion is reported exactly once, after which the poller
// exits. Any poller already running is stopped first.
func (d *Driver) Start(ctx context.Context, report func(Status)) {
	d.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	d.mu.Lock()
	d.cancel = cancel
	d.done = done
	d.mu.Unlock()

	d.logger.Debug("countdown started", slog.Int("blocks", len(d.schedule)), slog.Duration("interval", d.interval))

	go d.run(ctx, done, report)
}

func (d *Driver) run(ctx context.Context, done chan struct{}, report func(Status)) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		st := d.Poll(d.now())

		if ctx.Err() != nil {
			return
		}

		report(st)

		if st.Done {
			d.logger.Debug("countdown complete", slog.Int("blocks", st.Total))
			return
		}

		select {
		case <-ctx.Done():
			d.logger.Debug("countdown cancelled", slog.Int("index", st.Index))
			return
		case <-ticker.C:
		}
	}
}

// Done returns a channel closed when the current poller exits. It is nil
// when no poller was started.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.done
}

// Stop cancels the running poller and waits for it to exit. Calling Stop
// without a running poller is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Restart stops any running poller, swaps in schedule, rewinds to its first
// block and starts polling again.
func (d *Driver) Restart(ctx context.Context, schedule []model.Block, report func(Status)) {
	d.Stop()

	d.mu.Lock()
	d.schedule = append([]model.Block(nil), schedule...)
	d.index = 0
	d.mu.Unlock()

	d.Start(ctx, report)
}
