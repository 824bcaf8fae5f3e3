package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all subjects and the current schedule",
	Long:  `Forget all subjects and the current schedule. Earlier states stay in the history.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes && !promptConfirm("Clear all subjects and the schedule? [y/N]: ") {
			_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")
			return nil
		}

		svc, err := app.Service()
		if err != nil {
			return err
		}

		if err := svc.Clear(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(os.Stdout, "Cleared.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation prompt")
}
