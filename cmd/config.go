package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/config"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage studyplan settings",
	Long: `Commands for managing the settings file.

Available Commands:
  show      Print every setting
  set       Change one setting
  reset     Restore the defaults`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _ = fmt.Fprintf(os.Stdout, "Settings file: %s\n\n", app.configPath)

		for _, key := range config.Keys() {
			v, err := config.Get(app.cfg, key)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "%-24s %s\n", key, v)
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Example: `  studyplan config set schedule.mode intensive
  studyplan config set schedule.start 08:30
  studyplan config set storage.backend sqlite
  studyplan config set ui.theme light`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.cfg
		if err := config.Set(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.Save(app.configPath, cfg); err != nil {
			return err
		}

		app.cfg = cfg

		v, _ := config.Get(cfg, args[0])
		_, _ = fmt.Fprintf(os.Stdout, "%s = %s\n", args[0], v)

		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(app.configPath, model.DefaultConfig()); err != nil {
			return err
		}

		app.cfg = model.DefaultConfig()

		_, _ = fmt.Fprintln(os.Stdout, "Settings reset to defaults.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd)
}
