package main

import (
	"fmt"
	"time"

	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/spf13/cobra"
)

var datesFlags struct {
	weeks int
}

var datesCmd = &cobra.Command{
	Use:   "dates [weekday]",
	Short: "List upcoming delivery dates for a weekday",
	Long: `List the next delivery dates falling on a weekday, starting tomorrow.

The weekday defaults to the configured delivery_day.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDates,
}

func init() {
	datesCmd.Flags().IntVarP(&datesFlags.weeks, "weeks", "w", 0, "Number of dates (default: from config, 4)")
}

func runDates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(cfg *config.Config) {
		if len(args) == 1 {
			cfg.DeliveryDay = args[0]
		}
		if datesFlags.weeks > 0 {
			cfg.DeliveryWeeks = datesFlags.weeks
		}
	})
	if err != nil {
		return err
	}

	weekday, err := signup.ParseWeekday(cfg.DeliveryDay)
	if err != nil {
		return err
	}
	for _, d := range signup.UpcomingDeliveryDates(time.Now(), weekday, cfg.DeliveryWeeks) {
		fmt.Printf("%s  %s\n", d, signup.FormatDeliveryDate(d))
	}
	return nil
}
