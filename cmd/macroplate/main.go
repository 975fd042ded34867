package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/tui/theme"
	"github.com/spf13/cobra"
)

const logoText = "▙▗▌ macroplate"

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "macroplate",
	Short: "Meal plan signup wizard",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	return theme.ApplyGradient(logoText, t.Primary, t.Secondary)
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

macroplate walks a new customer through a meal-delivery subscription signup:
goals and dietary preferences, delivery schedule, plan selection, address and
payment. Answers accumulate into a single order draft that is handed off on an
embedded NATS JetStream order bus once the customer confirms.

The same flow is available to remote clients over MCP with 'macroplate serve'.`

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(genTemplateCmd)
	rootCmd.AddCommand(doctorCmd)
}
