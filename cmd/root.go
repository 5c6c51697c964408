package cmd

import (
	"fmt"
	"os"

	"inventory-seeder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventory-seeder",
	Short: "Idempotent inventory provisioning",
	Long: `Inventory Seeder provisions regions, tenants, site groups, sites, locations,
racks, manufacturers, platforms and device roles into a NetBox-style inventory.

Entities are ordered so every parent exists before its children, looked up
by natural key and created only when missing. Re-running is always safe.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level for ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
