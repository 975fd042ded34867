package main

import (
	"fmt"
	"os"

	"github.com/macroplate/macroplate/internal/template"
	"github.com/spf13/cobra"
)

var genTemplateFlags struct {
	output string
	force  bool
}

var genTemplateCmd = &cobra.Command{
	Use:   "gen-template",
	Short: "Write the default order summary template",
	Long: `Write the default order summary template to a file for customization.

Point summary_template (or --template on signup) at the file to use it.
Available placeholders: {{plan}}, {{meals_per_week}}, {{daily_meals}},
{{frequency}}, {{addons}}, {{meals_total}}, {{addons_total}}, {{weekly_total}},
{{goals}}, {{meals}}, {{allergies}}, {{proteins}}, {{name}}, {{address}},
{{delivery_date}}, {{instructions}}, {{email}}, {{payment}}, {{reference}}.`,
	RunE: runGenTemplate,
}

func init() {
	genTemplateCmd.Flags().StringVarP(&genTemplateFlags.output, "output", "o", "summary.md", "Output file path")
	genTemplateCmd.Flags().BoolVarP(&genTemplateFlags.force, "force", "f", false, "Overwrite existing file")
}

func runGenTemplate(cmd *cobra.Command, args []string) error {
	if !genTemplateFlags.force && fileExists(genTemplateFlags.output) {
		return fmt.Errorf("%s already exists\n\nUse --force to overwrite", genTemplateFlags.output)
	}
	if err := os.WriteFile(genTemplateFlags.output, []byte(template.DefaultTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	fmt.Printf("Template written to: %s\n", genTemplateFlags.output)
	return nil
}
