package main

import (
	"fmt"

	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create macroplate configuration file",
	Long: `Create a macroplate configuration file with sensible defaults.

By default, creates a global config at ~/.config/macroplate/macroplate.yml.
Use --project to create a project-local config in the current directory.

The written recommendation rules include the identifiers the selection screens
actually produce ("wheat" for gluten, "weight" for weight loss).`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Default()
	cfg.Recommendation = signup.SynchronizedRecommendationRules()

	// Write config to target location
	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'macroplate signup' to get started.")
	return nil
}
