package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/macroplate/macroplate/internal/config"
	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	addr    string
	offline bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the signup flow over MCP",
	Long: `Serve the signup flow over MCP (streamable HTTP) until interrupted.

Each client session started with signup-start gets its own order draft.
Orders are published to the embedded order bus and can be listed with the
signup-orders tool while the server runs.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "Listen address (default: from config, localhost:8765)")
	serveCmd.Flags().BoolVar(&serveFlags.offline, "offline", false, "Log orders instead of publishing them to the order bus")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(cfg *config.Config) {
		if serveFlags.addr != "" {
			cfg.MCPAddr = serveFlags.addr
		}
		if cmd.Flags().Changed("offline") {
			cfg.Offline = serveFlags.offline
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

	opts := mcpserver.Options{
		Catalog:   catalog,
		Rules:     cfg.Recommendation,
		GoalLimit: cfg.GoalLimit,
		Submitter: bus.submitter,
		Hooks:     hooksCfg,
		WorkDir:   workDir,
		Orders:    bus.lister,
	}
	srv := mcpserver.New(opts)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := srv.Start(ctx, cfg.MCPAddr); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	fmt.Printf("Serving signup tools at %s\n", srv.URL())

	<-ctx.Done()
	fmt.Println("\nShutting down gracefully...")
	return srv.Stop()
}
