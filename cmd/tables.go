package cmd

import (
	"fmt"
	"text/tabwriter"

	"inventory-seeder/feature/seeds"

	"github.com/spf13/cobra"
)

// tablesCmd lists the builtin tables.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the builtin entity tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tENTITIES\tDESCRIPTION")
		for _, t := range seeds.Tables() {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Name, len(t.Entities()), t.Description)
		}
		return tw.Flush()
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
