package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the subjects and schedule with a file's contents",
	Long: `Import a .txt or .json file previously written by export. The current
subjects and schedule are replaced wholesale.

Text files are parsed line by line and malformed lines are skipped. A JSON
file that fails to parse is rejected entirely and nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		path, err := expandPath(args[0])
		if err != nil {
			return err
		}

		st, format, err := svc.Import(path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Imported %d subjects and %d blocks from %s (%s)\n",
			len(st.Subjects), len(st.Schedule), path, format)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
