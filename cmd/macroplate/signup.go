package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var signupFlags struct {
	offline  bool
	dataDir  string
	template string
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Run the interactive signup wizard",
	Long: `Run the interactive signup wizard.

The wizard asks one question per screen, from ZIP code to payment, and places
the order once the last answer is confirmed. Esc goes back a screen without
losing answers; Esc on the first screen or Ctrl+C cancels.

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./macroplate.yml
Global config: ~/.config/macroplate/macroplate.yml`,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().BoolVar(&signupFlags.offline, "offline", false, "Log orders instead of publishing them to the order bus")
	signupCmd.Flags().StringVar(&signupFlags.dataDir, "data-dir", "", "Directory for UI state (default: from config or .macroplate)")
	signupCmd.Flags().StringVarP(&signupFlags.template, "template", "t", "", "Custom order summary template file")
}

func runSignup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(cfg *config.Config) {
		if cmd.Flags().Changed("offline") {
			cfg.Offline = signupFlags.offline
		}
		if signupFlags.dataDir != "" {
			cfg.DataDir = signupFlags.dataDir
		}
		if signupFlags.template != "" {
			cfg.SummaryTemplate = signupFlags.template
		}
	})
	if err != nil {
		return err
	}
	catalog, err := cfg.StepCatalog()
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		return err
	}

	bus, err := openOrderBus(cfg)
	if err != nil {
		return err
	}
	defer bus.close()

	result, err := wizard.RunWizard(wizard.Options{
		Catalog:         catalog,
		Rules:           cfg.Recommendation,
		GoalLimit:       cfg.GoalLimit,
		DeliveryWeeks:   cfg.DeliveryWeeks,
		DeliveryDay:     cfg.DeliveryDay,
		Submitter:       bus.submitter,
		Hooks:           hooksCfg,
		WorkDir:         workDir,
		DataDir:         cfg.DataDir,
		SummaryTemplate: cfg.SummaryTemplate,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		fmt.Println("Signup cancelled. Nothing was ordered.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Order placed: %s\n", result.Receipt.Reference)
	fmt.Printf("Plan: %s, %s/week\n", result.Receipt.Plan, result.Receipt.WeeklyTotal)
	if result.Receipt.Subject != "" {
		fmt.Printf("Published to: %s\n", result.Receipt.Subject)
	}
	return nil
}
