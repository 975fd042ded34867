package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/template"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, hooks and templates",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	problems := 0
	report := func(ok bool, format string, a ...any) {
		mark := "✓"
		if !ok {
			mark = "✗"
			problems++
		}
		fmt.Printf("%s %s\n", mark, fmt.Sprintf(format, a...))
	}

	for _, path := range []string{config.GlobalPath(), config.ProjectPath()} {
		if fileExists(path) {
			fmt.Printf("• config: %s\n", path)
		}
	}
	if !config.Exists() {
		fmt.Println("• no config file, using defaults")
	}

	cfg, err := config.Load()
	if err != nil {
		report(false, "config: %v", err)
		return fmt.Errorf("%d problem(s) found", problems)
	}
	err = cfg.Validate()
	report(err == nil, "config valid%s", errSuffix(err))

	if ids := cfg.Recommendation.Unreachable(); len(ids) > 0 {
		fmt.Printf("• recommendation rules reference identifiers no screen produces: %s\n", strings.Join(ids, ", "))
		fmt.Println("  run 'macroplate setup --force' to write synchronized rules")
	} else {
		report(true, "recommendation rules reachable")
	}

	if _, err := template.GetTemplate(cfg.SummaryTemplate); cfg.SummaryTemplate != "" {
		report(err == nil, "summary template %s%s", cfg.SummaryTemplate, errSuffix(err))
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir)
	switch {
	case err != nil:
		report(false, "hooks: %v", err)
	case hooksCfg == nil:
		fmt.Printf("• no %s\n", hooks.ConfigFileName)
	default:
		report(true, "hooks: %d post_submit command(s)", len(hooksCfg.Hooks.PostSubmit))
	}

	if os.Getenv("EDITOR") == "" && os.Getenv("VISUAL") == "" {
		fmt.Println("• $EDITOR not set, ctrl+e on the delivery screen falls back to the default editor")
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

func errSuffix(err error) string {
	if err == nil {
		return ""
	}
	return ": " + err.Error()
}
