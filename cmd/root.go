package cmd

import (
	"log/slog"
	"os"

	"github.com/inovacc/studyplan/internal/application"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	logJSON    bool
	configFile string

	app *appContext
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A study schedule planner",
	Long: `Studyplan keeps a list of subjects, generates a timetable of alternating
study sessions and breaks between two clock times, counts down to the next
block and imports or exports the schedule as text or JSON.

Subjects and the current schedule are saved locally after every change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		app, err = newAppContext(configFile, newLogger())
		if err != nil && (app == nil || cmd != configResetCmd) {
			return err
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var logger *slog.Logger
	if logJSON {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	slog.SetDefault(logger)

	return logger
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: studyplan.ini in the application directory)")
}
