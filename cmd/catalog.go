package cmd

import (
	"fmt"

	"inventory-seeder/core/catalog"
	"inventory-seeder/feature/seeds"

	"github.com/spf13/cobra"
)

// catalogFlags selects the entity sources shared by reconcile and plan.
type catalogFlags struct {
	files     []string
	tables    []string
	noBuiltin bool
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.files, "catalog", nil, "Catalog file (.yaml, .yml, .toml); repeatable")
	cmd.Flags().StringSliceVar(&f.tables, "tables", nil, "Builtin tables to include (default all, see 'tables')")
	cmd.Flags().BoolVar(&f.noBuiltin, "no-builtin", false, "Use catalog files only")
}

// apply overrides cfg with the flags that were set.
func (f *catalogFlags) apply(cmd *cobra.Command, cfg *catalog.Config) {
	if cmd.Flags().Changed("catalog") {
		cfg.Files = f.files
	}
	if cmd.Flags().Changed("tables") {
		cfg.Tables = f.tables
	}
	if f.noBuiltin {
		cfg.Builtin = false
	}
}

// buildCatalog merges the selected builtin tables and catalog files.
func buildCatalog(cfg catalog.Config) (*catalog.Catalog, error) {
	var parts []*catalog.Catalog
	if cfg.Builtin {
		builtin, err := seeds.Catalog(cfg.Tables...)
		if err != nil {
			return nil, err
		}
		parts = append(parts, builtin)
	} else if len(cfg.Tables) > 0 {
		return nil, fmt.Errorf("--tables cannot be combined with --no-builtin")
	}

	for _, path := range cfg.Files {
		c, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
	}

	merged, err := catalog.Merge(parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to merge catalogs: %w", err)
	}
	return merged, nil
}
