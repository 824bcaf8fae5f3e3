package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

var subjectRemoveCmd = &cobra.Command{
	Use:     "remove [name]",
	Aliases: []string{"rm"},
	Short:   "Remove a subject",
	Long: `Remove a subject from the list. The current schedule is not changed;
generate a new one to drop the subject's sessions.

Without a name, pick the subject from an interactive list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		if name == "" {
			subjects, err := svc.Subjects()
			if err != nil {
				return err
			}

			if len(subjects) == 0 {
				printEmptyResult("subjects", "studyplan subject add <name>")
				return nil
			}

			p := tea.NewProgram(cli.NewSubjectPicker("Remove subject", subjects, app.Theme()))

			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			name = finalModel.(cli.SubjectPickerModel).Selected()
			if name == "" {
				return nil
			}
		}

		removed, err := svc.RemoveSubject(name)
		if err != nil {
			return fmt.Errorf("failed to remove subject: %w", err)
		}

		if !removed {
			_, _ = fmt.Fprintf(os.Stdout, "Subject not found: %s\n", name)
			return nil
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed: %s\n", name)

		return nil
	},
}

func init() {
	subjectCmd.AddCommand(subjectRemoveCmd)
}
