package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/countdown"
	"github.com/inovacc/studyplan/internal/model"
)

type statusMsg countdown.Status

// CountdownModel shows the time left until the next block. The countdown
// driver runs in its own goroutine and feeds statuses through a channel.
type CountdownModel struct {
	driver   *countdown.Driver
	updates  chan countdown.Status
	ctx      context.Context
	cancel   context.CancelFunc
	status   countdown.Status
	received bool
	progress progress.Model
	theme    Theme
	observe  func(countdown.Status)
	quitting bool
}

// NewCountdownModel prepares a countdown over blocks. The driver is started
// by Init.
func NewCountdownModel(blocks []model.Block, theme Theme, opts ...countdown.Option) CountdownModel {
	ctx, cancel := context.WithCancel(context.Background())

	return CountdownModel{
		driver:   countdown.New(blocks, opts...),
		updates:  make(chan countdown.Status, 1),
		ctx:      ctx,
		cancel:   cancel,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:    theme,
	}
}

// OnStatus registers fn to be called from the driver goroutine with every
// status, before it reaches the view.
func (m CountdownModel) OnStatus(fn func(countdown.Status)) CountdownModel {
	m.observe = fn
	return m
}

func (m CountdownModel) Init() tea.Cmd {
	return tea.Batch(m.start, m.waitForStatus)
}

func (m CountdownModel) start() tea.Msg {
	m.driver.Start(m.ctx, func(st countdown.Status) {
		if m.observe != nil {
			m.observe(st)
		}

		select {
		case m.updates <- st:
		case <-m.ctx.Done():
		}
	})

	return nil
}

func (m CountdownModel) waitForStatus() tea.Msg {
	select {
	case st := <-m.updates:
		return statusMsg(st)
	case <-m.ctx.Done():
		return nil
	}
}

func (m CountdownModel) stop() {
	m.cancel()
	m.driver.Stop()
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-8, 10), 60)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.stop()

			return m, tea.Quit
		}

	case statusMsg:
		m.status = countdown.Status(msg)
		m.received = true

		if m.status.Done {
			m.stop()

			return m, tea.Quit
		}

		return m, m.waitForStatus
	}

	return m, nil
}

func (m CountdownModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n  " + m.theme.Title.Render("Study countdown") + "\n\n")

	if !m.received {
		b.WriteString("  " + m.theme.Muted.Render("waiting for the clock...") + "\n")
		return b.String()
	}

	st := m.status

	if st.Done {
		b.WriteString("  " + m.theme.Success.Render(st.Label()) + "\n")
		b.WriteString("  " + m.theme.Timer.Render(st.Clock()) + "\n\n")

		return b.String()
	}

	if st.Active != nil {
		b.WriteString(fmt.Sprintf("  Now:  %s %s\n",
			m.theme.BlockStyle(st.Active.Kind).Render(st.Active.Label),
			m.theme.Muted.Render(fmt.Sprintf("until %s", st.Active.End))))
	}

	b.WriteString("  " + m.theme.BlockStyle(st.Next.Kind).Render(st.Label()) +
		m.theme.Muted.Render(fmt.Sprintf(" at %s", st.Next.Start)) + "\n\n")
	b.WriteString("  " + m.theme.Timer.Render(st.Clock()) + "\n\n")

	var pct float64
	if st.Total > 0 {
		pct = float64(st.Index) / float64(st.Total)
	}

	b.WriteString("  " + m.progress.ViewAs(pct) + "\n")
	b.WriteString("  " + m.theme.Muted.Render(fmt.Sprintf("block %d of %d  •  q to quit", st.Index+1, st.Total)) + "\n")

	return b.String()
}

// Status returns the last status received from the driver.
func (m CountdownModel) Status() countdown.Status {
	return m.status
}
