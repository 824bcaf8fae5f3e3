package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the subjects and the current schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		st, err := svc.State()
		if err != nil {
			return err
		}

		theme := app.Theme()

		_, _ = fmt.Fprintln(os.Stdout, theme.Title.Render("Subjects"))

		if len(st.Subjects) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, theme.Muted.Render("  none"))
		} else {
			_, _ = fmt.Fprint(os.Stdout, cli.RenderSubjects(st.Subjects, theme))
		}

		_, _ = fmt.Fprintln(os.Stdout)
		_, _ = fmt.Fprintln(os.Stdout, theme.Title.Render("Schedule"))

		if len(st.Schedule) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, theme.Muted.Render("  none, run 'studyplan generate'"))
			return nil
		}

		_, _ = fmt.Fprintln(os.Stdout, cli.RenderSchedule(st.Schedule, theme))

		if !st.UpdatedAt.IsZero() {
			_, _ = fmt.Fprintln(os.Stdout, theme.Muted.Render("Saved "+st.UpdatedAt.Local().Format("2006-01-02 15:04")))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
