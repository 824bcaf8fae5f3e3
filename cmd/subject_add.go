package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add one or more subjects",
	Long: `Add subjects to the list. Names are trimmed; names already on the list
are ignored, as is "Break", which names the pause between sessions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		added, err := svc.AddSubjects(args...)
		if err != nil {
			return err
		}

		if len(added) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No new subjects added.")
			return nil
		}

		for _, s := range added {
			_, _ = fmt.Fprintf(os.Stdout, "Added: %s\n", s)
		}

		return nil
	},
}

func init() {
	subjectCmd.AddCommand(subjectAddCmd)
}
