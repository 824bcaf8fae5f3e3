package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/studyplan/internal/encoding"
	"github.com/inovacc/studyplan/internal/transfer"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportYes    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the subjects and schedule to a file",
	Long: `Export the current state to a file.

Formats:
  text   "Subject: <name>" lines followed by "Schedule: <subject>,<start>,<end>" lines
  json   an array of {"subject","type","start","end"} objects

Without --format the format follows the --output extension, defaulting to
text. Without --output the file is written to the current directory as
study_schedule.txt or study_schedule.json. An existing file is only
replaced after confirmation or with --yes.`,
	Example: `  studyplan export
  studyplan export --format json
  studyplan export -o ~/plans/monday.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := app.Service()
		if err != nil {
			return err
		}

		format := transfer.FormatText

		output := exportOutput
		if output != "" {
			if output, err = expandPath(output); err != nil {
				return err
			}

			if f, err := transfer.DetectFormat(output); err == nil {
				format = f
			}
		}

		if cmd.Flags().Changed("format") {
			if format, err = transfer.ParseFormat(exportFormat); err != nil {
				return err
			}
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		target := output
		if target == "" {
			target = filepath.Join(cwd, transfer.DefaultFileName(format))
		}

		if encoding.FileExists(target) && !exportYes {
			if !promptConfirm(fmt.Sprintf("%s exists. Overwrite? [y/N]: ", target)) {
				_, _ = fmt.Fprintln(os.Stdout, "Export cancelled.")
				return nil
			}
		}

		path, err := svc.Export(target, cwd, format)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Exported %s schedule to %s\n", format, path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "Export format: text or json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file")
	exportCmd.Flags().BoolVarP(&exportYes, "yes", "y", false, "Overwrite an existing file without asking")
}
