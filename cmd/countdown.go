package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/countdown"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/notify"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	countdownOnce   bool
	countdownPlain  bool
	countdownNotify bool
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Count down to the next block of the current schedule",
	Long: `Show the time left until the next block of the current schedule starts,
updated every second. Blocks whose start time has passed today are skipped.
The countdown ends once every block has started.

On a terminal an interactive view is shown; otherwise one line is printed
per second. With --notify a message is printed whenever a block starts,
preceded by the terminal bell when ui.bell is enabled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		st, err := svc.State()
		if err != nil {
			return err
		}

		if len(st.Schedule) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No schedule yet. Run 'studyplan generate' first.")
			return nil
		}

		if countdownOnce {
			status := countdown.New(st.Schedule).Poll(timeNow())
			printStatus(status)

			return nil
		}

		return runCountdown(st.Schedule, countdownPlain, countdownNotify)
	},
}

// runCountdown drives the countdown until the schedule completes or the
// user interrupts it.
func runCountdown(blocks []model.Block, plain, alert bool) error {
	opts := []countdown.Option{countdown.WithLogger(app.logger), countdown.WithClock(timeNow)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tui := !plain && term.IsTerminal(int(os.Stdout.Fd()))

	// Println blocks on the program's message loop, so the TUI path sends
	// asynchronously to keep the driver goroutine free.
	dispatcher := notify.NewDispatcher(tui, app.logger)
	watcher := notify.NewWatcher(dispatcher, blocks)

	observe := func(st countdown.Status) {
		watcher.Observe(ctx, st)
	}

	if tui {
		m := cli.NewCountdownModel(blocks, app.Theme(), opts...).OnStatus(observe)
		p := tea.NewProgram(m)

		if alert {
			dispatcher.Register(notify.NewTerminalSender(programWriter{p}, app.cfg.Bell))
		}

		_, err := p.Run()

		return err
	}

	if alert {
		dispatcher.Register(notify.NewTerminalSender(os.Stderr, app.cfg.Bell))
	}

	d := countdown.New(blocks, opts...)
	d.Start(ctx, func(st countdown.Status) {
		observe(st)
		printStatus(st)
	})

	<-d.Done()

	return nil
}

// programWriter prints above a running bubbletea program.
type programWriter struct {
	p *tea.Program
}

var _ io.Writer = programWriter{}

func (w programWriter) Write(b []byte) (int, error) {
	w.p.Println(strings.TrimRight(string(b), "\n"))
	return len(b), nil
}

func printStatus(st countdown.Status) {
	if st.Done {
		_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", st.Clock(), st.Label())
		return
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s %s at %s\n", st.Clock(), st.Label(), st.Next.Start)
}

func init() {
	rootCmd.AddCommand(countdownCmd)
	countdownCmd.Flags().BoolVar(&countdownOnce, "once", false, "Print the current status once and exit")
	countdownCmd.Flags().BoolVar(&countdownPlain, "plain", false, "Print one line per second even on a terminal")
	countdownCmd.Flags().BoolVarP(&countdownNotify, "notify", "n", false, "Announce each block as it starts")
}
