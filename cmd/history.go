package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved states",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		states, err := svc.History(historyLimit)
		if err != nil {
			return err
		}

		if len(states) == 0 {
			printEmptyResult("saved states", "studyplan subject add <name>")
			return nil
		}

		theme := app.Theme()

		for _, st := range states {
			_, _ = fmt.Fprintf(os.Stdout, "%s  %s  %d blocks  %s\n",
				theme.Muted.Render(st.UpdatedAt.Local().Format("2006-01-02 15:04:05")),
				theme.Title.Render(shortRevision(st.Revision)),
				len(st.Schedule),
				strings.Join(st.Subjects, ", "),
			)
		}

		return nil
	},
}

func shortRevision(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}

	return rev
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show (0 for all)")
}
