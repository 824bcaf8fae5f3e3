package cmd

import (
	"github.com/spf13/cobra"
)

var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"subjects"},
	Short:   "Manage the subject list",
	Long: `Commands for managing the subjects a schedule is built from.

Available Commands:
  add       Add one or more subjects
  remove    Remove a subject
  list      List subjects in insertion order`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(subjectCmd)
}
