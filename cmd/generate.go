package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*model.Mode)(nil)
	_ pflag.Value = (*model.TimeOfDay)(nil)
)

var (
	generateMode          model.Mode
	generateStart         model.TimeOfDay
	generateEnd           model.TimeOfDay
	generateStudy         int
	generateBreak         int
	generateWithCountdown bool
	generateNotify        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a schedule from the subject list",
	Long: `Generate a schedule of alternating study sessions and breaks between the
start and end times, cycling through the subjects in order.

Modes:
  intensive   fill the window, cycling subjects until the end time
  balanced    the same sequence; with --study 0 the session length is
              chosen so one pass over the subjects fills the window

Flags not given fall back to the [schedule] settings.`,
	Example: `  studyplan generate
  studyplan generate --mode intensive --start 08:00 --end 12:00 --study 25 --break 5
  studyplan generate --mode balanced --study 0 --countdown`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		req, err := svc.DefaultRequest()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("mode") {
			req.Mode = generateMode
		}

		if flags.Changed("start") {
			req.Start = generateStart
		}

		if flags.Changed("end") {
			req.End = generateEnd
		}

		if flags.Changed("study") {
			req.StudyMinutes = generateStudy
		}

		if flags.Changed("break") {
			req.BreakMinutes = generateBreak
		}

		blocks, err := svc.Generate(req)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(os.Stdout, cli.RenderSchedule(blocks, app.Theme()))
		_, _ = fmt.Fprintf(os.Stdout, "%d blocks, %s mode, %s - %s\n", len(blocks), req.Mode, blocks[0].Start, blocks[len(blocks)-1].End)

		if generateWithCountdown {
			return runCountdown(blocks, false, generateNotify)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Var(&generateMode, "mode", "Schedule mode: intensive or balanced")
	generateCmd.Flags().Var(&generateStart, "start", "Start time (HH:MM)")
	generateCmd.Flags().Var(&generateEnd, "end", "End time (HH:MM)")
	generateCmd.Flags().IntVar(&generateStudy, "study", 0, "Study session length in minutes")
	generateCmd.Flags().IntVar(&generateBreak, "break", 0, "Break length in minutes")
	generateCmd.Flags().BoolVar(&generateWithCountdown, "countdown", false, "Start the countdown after generating")
	generateCmd.Flags().BoolVar(&generateNotify, "notify", false, "With --countdown, announce each block as it starts")
}
