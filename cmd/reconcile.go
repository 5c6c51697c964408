package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"inventory-seeder/core/config"
	"inventory-seeder/core/inventory"
	"inventory-seeder/core/logger"
	"inventory-seeder/core/reconcile"
	"inventory-seeder/core/report"
	"inventory-seeder/core/resolve"
	"inventory-seeder/core/scheduler"
	"inventory-seeder/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrUnresolved is returned when a run ends with Skipped or Failed entities.
var ErrUnresolved = errors.New("some entities did not resolve")

var reconcileOpts struct {
	catalog  catalogFlags
	url      string
	token    string
	insecure bool
	schedule string
	output   string
}

// reconcileCmd applies the catalog to the inventory.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Ensure every catalog entity exists in the inventory",
	Long: `Resolve the catalog into dependency order, then look up every entity by
natural key and create it when missing. Drifted mutable relationships are
corrected with a single patch.

The command exits non-zero when any entity is skipped or failed; the failing
keys are listed on stderr.

Examples:
  # All builtin tables against the configured endpoint
  reconcile

  # Only the region hierarchy, self-signed endpoint
  reconcile --tables regions --url https://netbox.internal --insecure

  # Builtin tables plus a catalog file, every hour
  reconcile --catalog extra.yaml --schedule "@every 1h"`,
	RunE: runReconcile,
}

func init() {
	f := reconcileCmd.Flags()
	reconcileOpts.catalog.register(reconcileCmd)
	f.StringVar(&reconcileOpts.url, "url", "", "Inventory API base URL (overrides INVENTORY_URL)")
	f.StringVar(&reconcileOpts.token, "token", "", "Inventory API token (overrides INVENTORY_TOKEN)")
	f.BoolVar(&reconcileOpts.insecure, "insecure", false, "Skip TLS certificate verification")
	f.StringVar(&reconcileOpts.schedule, "schedule", "", `Repeat on a cron schedule, e.g. "@every 1h" (overrides SCHEDULE)`)
	f.StringVarP(&reconcileOpts.output, "output", "o", "table", "Report format: table or json")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyReconcileFlags(cmd, cfg)

	if reconcileOpts.output != "table" && reconcileOpts.output != "json" {
		return fmt.Errorf("unsupported output %q", reconcileOpts.output)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	// Cycles abort before any request
	plan, err := resolve.Resolve(cat)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog: %w", err)
	}

	client, err := inventory.NewClient(cfg.Inventory)
	if err != nil {
		return fmt.Errorf("failed to create inventory client: %w", err)
	}

	var archive *report.Archive
	if cfg.Storage.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		archive = report.NewArchive(store, cfg.Storage.Bucket, cfg.Storage.Prefix, l)
	}

	pass := func(ctx context.Context) *reconcile.Run {
		rep := newReporter(cmd.OutOrStdout(), reconcileOpts.output, l, archive)
		run := reconcile.New(client, l, rep).Apply(ctx, plan)
		if err := rep.Finish(ctx, run); err != nil {
			l.Warn("Failed to write report", zap.String("run_id", run.ID), zap.Error(err))
		}
		if err := report.WriteFailures(cmd.ErrOrStderr(), run); err != nil {
			l.Warn("Failed to list unresolved entities", zap.String("run_id", run.ID), zap.Error(err))
		}
		return run
	}

	if cfg.Schedule == "" {
		run := pass(cmd.Context())
		if !run.OK() {
			return fmt.Errorf("%w: %d of %d", ErrUnresolved, run.Summary.Skipped+run.Summary.Failed, run.Summary.Total)
		}
		return nil
	}

	// A scheduled daemon exits 0 on shutdown; each pass reports its own failures
	var passes, unresolved atomic.Int32
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = scheduler.New(l).Run(ctx, cfg.Schedule, func(ctx context.Context) {
		passes.Add(1)
		if !pass(ctx).OK() {
			unresolved.Add(1)
		}
	})
	if n := unresolved.Load(); n > 0 {
		l.Warn("Scheduled passes left entities unresolved",
			zap.Int32("passes", passes.Load()),
			zap.Int32("unresolved_passes", n),
		)
	}
	return err
}

func applyReconcileFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	reconcileOpts.catalog.apply(cmd, &cfg.Catalog)
	if flags.Changed("url") {
		cfg.Inventory.URL = reconcileOpts.url
	}
	if flags.Changed("token") {
		cfg.Inventory.Token = reconcileOpts.token
	}
	if flags.Changed("insecure") {
		cfg.Inventory.InsecureSkipVerify = reconcileOpts.insecure
	}
	if flags.Changed("schedule") {
		cfg.Schedule = reconcileOpts.schedule
	}
}

// newReporter assembles the sinks of one run.
func newReporter(out io.Writer, format string, l *zap.Logger, archive *report.Archive) report.Multi {
	sinks := report.Multi{report.NewLog(l)}
	if format == "json" {
		sinks = append(sinks, report.NewJSON(out))
	} else {
		sinks = append(sinks, report.NewConsole(out))
	}
	if archive != nil {
		sinks = append(sinks, archive)
	}
	return sinks
}
