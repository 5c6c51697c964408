package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-seeder/core/config"
	"inventory-seeder/core/database"
	"inventory-seeder/core/loader"
	"inventory-seeder/core/logger"
	"inventory-seeder/core/server"
	"inventory-seeder/feature/sandbox"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sandboxOpts struct {
	host  string
	port  string
	token string
}

// sandboxCmd serves a local inventory API.
var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run a local inventory API for rehearsals",
	Long: `Starts an HTTP server implementing the inventory collections used by
reconcile. Records live in the configured database (in-memory sqlite by
default), so a rehearsal starts empty unless DATABASE_NAME points at a file.

Point reconcile at it with --url http://127.0.0.1:8000.`,
	RunE: runSandbox,
}

func init() {
	f := sandboxCmd.Flags()
	f.StringVar(&sandboxOpts.host, "host", "", "Bind address (overrides SANDBOX_HOST)")
	f.StringVar(&sandboxOpts.port, "port", "", "Listen port (overrides SANDBOX_PORT)")
	f.StringVar(&sandboxOpts.token, "token", "", "Required API token (overrides SANDBOX_TOKEN)")
	RootCmd.AddCommand(sandboxCmd)
}

func runSandbox(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("host") {
		cfg.Sandbox.Host = sandboxOpts.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Sandbox.Port = sandboxOpts.port
	}
	if cmd.Flags().Changed("token") {
		cfg.Sandbox.Token = sandboxOpts.token
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	l.Info("Connected to sandbox store",
		zap.String("driver", cfg.Database.Driver),
		zap.String("name", cfg.Database.Name),
	)

	mgr := loader.NewManager(l)
	mgr.Register(sandbox.NewFeature(db, l))

	app, err := server.New(cfg.Sandbox, l, mgr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Starting sandbox", zap.String("address", cfg.Sandbox.Address()), zap.String("url", cfg.Sandbox.BaseURL()))
		errCh <- app.Listen(cfg.Sandbox.Address())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("sandbox server failed: %w", err)
	case <-sig:
	}

	l.Info("Shutting down sandbox...")
	return app.Shutdown()
}
