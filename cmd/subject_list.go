package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

var subjectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List subjects in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		subjects, err := svc.Subjects()
		if err != nil {
			return err
		}

		if len(subjects) == 0 {
			printEmptyResult("subjects", "studyplan subject add <name>")
			return nil
		}

		_, _ = fmt.Fprint(os.Stdout, cli.RenderSubjects(subjects, app.Theme()))

		return nil
	},
}

func init() {
	subjectCmd.AddCommand(subjectListCmd)
}
