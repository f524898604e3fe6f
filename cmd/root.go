package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/melisasvr/dayflow/internal/config"
	"github.com/melisasvr/dayflow/internal/optimizer"
	"github.com/melisasvr/dayflow/internal/profile"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// activeProfile holds the loaded user profile.
var activeProfile *profile.Profile

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "Rank your tasks, find your focus hours, and plan the day",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup check for the setup command itself.
		if cmd.Name() == "setup" {
			return nil
		}

		// First-run: profile missing → run setup wizard automatically.
		// Only do this when stdin is an interactive terminal.
		if !profile.Exists() {
			if term.IsTerminal(os.Stdin.Fd()) {
				fmt.Println()
				fmt.Println("  Welcome to dayflow! Looks like this is your first time.")
				if err := runSetup(true); err != nil {
					return err
				}
			}
			// Non-interactive (tests, pipes): continue with defaults, no profile required.
		}

		// Load profile if present. It may be missing in non-interactive environments.
		if profile.Exists() {
			p, err := profile.Load()
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			activeProfile = p
		}

		// Load and merge config files.
		global, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}
		project, err := config.LoadProject()
		if err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		cfg = config.Merge(global, project)

		// Profile values fill in config gaps.
		if activeProfile != nil {
			if cfg.OutputFormat == "" || cfg.OutputFormat == "text" {
				if activeProfile.DefaultFormat != "" {
					cfg.OutputFormat = activeProfile.DefaultFormat
				}
			}
			if cfg.DefaultEnergy == 0 && activeProfile.DefaultEnergy != 0 {
				cfg.DefaultEnergy = activeProfile.DefaultEnergy
			}
		}

		return nil
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

// GetProfile returns the active user profile.
func GetProfile() *profile.Profile {
	return activeProfile
}

// openOptimizer loads the optimizer from the configured snapshot store.
func openOptimizer() (*optimizer.Optimizer, error) {
	store, err := optimizer.NewSnapshotStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return optimizer.New(store, cfg.DefaultEnergy)
}
