package countdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

type recorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *recorder) report(st Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statuses = append(r.statuses, st)
}

func (r *recorder) snapshot() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Status(nil), r.statuses...)
}

func at(hhmm string, sec int) time.Time {
	t := model.MustTimeOfDay(hhmm).On(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))
	return t.Add(time.Duration(sec) * time.Second)
}

func sampleSchedule() []model.Block {
	return []model.Block{
		{Label: "Math", Kind: model.StudySession, Start: model.MustTimeOfDay("09:00"), End: model.MustTimeOfDay("09:50")},
		{Label: model.BreakLabel, Kind: model.Break, Start: model.MustTimeOfDay("09:50"), End: model.MustTimeOfDay("10:00")},
		{Label: "Physics", Kind: model.StudySession, Start: model.MustTimeOfDay("10:00"), End: model.MustTimeOfDay("10:50")},
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-time.Minute, "00:00:00"},
		{59*time.Second + 900*time.Millisecond, "00:00:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{27 * time.Hour, "27:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.in))
		})
	}
}

func TestDriver_PollBeforeFirstBlock(t *testing.T) {
	d := New(sampleSchedule())

	st := d.Poll(at("08:30", 15))

	require.False(t, st.Done)
	require.Equal(t, 0, st.Index)
	require.Equal(t, "Math", st.Next.Label)
	require.Nil(t, st.Active)
	require.Equal(t, "00:29:45", st.Clock())
	require.Equal(t, "Next: Math (Study Session)", st.Label())
}

func TestDriver_PollCascadesThroughElapsedBlocks(t *testing.T) {
	d := New(sampleSchedule())

	st := d.Poll(at("09:55", 0))

	require.Equal(t, 2, st.Index)
	require.Equal(t, "Physics", st.Next.Label)
	require.NotNil(t, st.Active)
	require.Equal(t, model.BreakLabel, st.Active.Label)
	require.Equal(t, 5*time.Minute, st.Remaining)
}

func TestDriver_PollAdvancesAtStartInstant(t *testing.T) {
	d := New(sampleSchedule())

	st := d.Poll(at("09:00", 0))

	require.Equal(t, 1, st.Index)
	require.Equal(t, "Math", st.Active.Label)
}

func TestDriver_PollAfterLastBlock(t *testing.T) {
	d := New(sampleSchedule())

	st := d.Poll(at("11:00", 0))

	require.True(t, st.Done)
	require.Equal(t, 3, d.Index())
	require.Equal(t, "All sessions complete.", st.Label())
	require.Equal(t, "00:00:00", st.Clock())

	// the index never moves backwards
	st = d.Poll(at("08:00", 0))
	require.True(t, st.Done)
}

func TestDriver_StartReportsCompletionOnce(t *testing.T) {
	clock := &fakeClock{now: at("12:00", 0)}
	rec := &recorder{}

	d := New(sampleSchedule(), WithClock(clock.Now), WithInterval(time.Millisecond))
	d.Start(context.Background(), rec.report)

	select {
	case <-d.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after completion")
	}

	time.Sleep(10 * time.Millisecond)

	got := rec.snapshot()
	require.Len(t, got, 1)
	require.True(t, got[0].Done)
}

func TestDriver_StartEmptySchedule(t *testing.T) {
	rec := &recorder{}

	d := New(nil, WithInterval(time.Millisecond))
	d.Start(context.Background(), rec.report)
	<-d.Done()

	got := rec.snapshot()
	require.Len(t, got, 1)
	require.True(t, got[0].Done)
}

func TestDriver_StartTicksUntilDone(t *testing.T) {
	clock := &fakeClock{now: at("09:49", 0)}
	rec := &recorder{}

	d := New(sampleSchedule(), WithClock(clock.Now), WithInterval(time.Millisecond))
	d.Start(context.Background(), rec.report)

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 3 }, 2*time.Second, time.Millisecond)

	clock.Set(at("10:30", 0))

	select {
	case <-d.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after completion")
	}

	got := rec.snapshot()
	require.Equal(t, 1, got[0].Index)
	require.Equal(t, time.Minute, got[0].Remaining)

	var completions int
	for _, st := range got {
		if st.Done {
			completions++
		}
	}

	require.Equal(t, 1, completions)
	require.True(t, got[len(got)-1].Done)
}

func TestDriver_StopIsIdempotent(t *testing.T) {
	clock := &fakeClock{now: at("06:00", 0)}

	d := New(sampleSchedule(), WithClock(clock.Now), WithInterval(time.Millisecond))
	d.Stop()

	d.Start(context.Background(), func(Status) {})
	d.Stop()
	d.Stop()

	select {
	case <-d.Done():
	default:
		t.Fatal("Done channel should be closed after Stop")
	}
}

func TestDriver_ContextCancelStopsPoller(t *testing.T) {
	clock := &fakeClock{now: at("06:00", 0)}
	ctx, cancel := context.WithCancel(context.Background())

	d := New(sampleSchedule(), WithClock(clock.Now), WithInterval(time.Millisecond))
	d.Start(ctx, func(Status) {})
	cancel()

	select {
	case <-d.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller ignored context cancellation")
	}
}

func TestDriver_RestartReplacesPoller(t *testing.T) {
	clock := &fakeClock{now: at("09:55", 0)}
	first := &recorder{}
	second := &recorder{}

	d := New(sampleSchedule(), WithClock(clock.Now), WithInterval(time.Millisecond))
	d.Start(context.Background(), first.report)

	require.Eventually(t, func() bool { return len(first.snapshot()) > 0 }, 2*time.Second, time.Millisecond)

	later := []model.Block{
		{Label: "History", Kind: model.StudySession, Start: model.MustTimeOfDay("18:00"), End: model.MustTimeOfDay("18:45")},
	}
	d.Restart(context.Background(), later, second.report)

	require.Eventually(t, func() bool { return len(second.snapshot()) > 0 }, 2*time.Second, time.Millisecond)

	n := len(first.snapshot())
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, n, len(first.snapshot()), "previous poller kept reporting after restart")

	st := second.snapshot()[0]
	require.Equal(t, 0, st.Index)
	require.Equal(t, "History", st.Next.Label)

	d.Stop()
}
