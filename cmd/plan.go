package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"inventory-seeder/core/config"
	"inventory-seeder/core/resolve"

	"github.com/spf13/cobra"
)

var planOpts struct {
	catalog catalogFlags
}

// planCmd prints the resolved order without contacting the inventory.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the dependency order of the catalog",
	Long: `Resolve the catalog and print every entity with its dependency depth.
Parents that are not part of the catalog are listed as external; they must
already exist in the inventory. No requests are made.`,
	RunE: runPlan,
}

func init() {
	planOpts.catalog.register(planCmd)
	RootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	planOpts.catalog.apply(cmd, &cfg.Catalog)

	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	plan, err := resolve.Resolve(cat)
	if err != nil {
		return fmt.Errorf("failed to resolve catalog: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEPTH\tKIND\tKEY\tPARENTS")
	for _, e := range plan.Order {
		parents := make([]string, 0, len(e.Parents))
		for _, p := range e.Parents {
			label := p.Field + "=" + p.Key
			if plan.IsExternal(p.Ref()) {
				label += " (external)"
			}
			parents = append(parents, label)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", plan.Depth[e.Ref()], e.Kind, e.QualifiedKey(), strings.Join(parents, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%d entities\n", len(plan.Order))
	if len(plan.External) > 0 {
		fmt.Fprintf(out, "%d external parents must already exist:\n", len(plan.External))
		for _, ref := range plan.External {
			fmt.Fprintf(out, "  %s\n", ref)
		}
	}
	return nil
}
