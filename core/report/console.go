package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"inventory-seeder/core/reconcile"
)

// Console renders an aligned outcome table.
type Console struct {
	tw     *tabwriter.Writer
	out    io.Writer
	header bool
}

// NewConsole writes the table to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		tw:  tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
		out: w,
	}
}

// Observe adds one row.
func (c *Console) Observe(r reconcile.Result) {
	if !c.header {
		fmt.Fprintln(c.tw, "STATUS\tKIND\tKEY\tID\tDETAIL")
		c.header = true
	}
	id := "-"
	if r.ID != 0 {
		id = strconv.Itoa(r.ID)
	}
	fmt.Fprintf(c.tw, "%s\t%s\t%s\t%s\t%s\n", r.Status, r.Kind, r.Key, id, r.Detail)
}

// Finish flushes the table and prints the summary line.
func (c *Console) Finish(_ context.Context, run *reconcile.Run) error {
	if err := c.tw.Flush(); err != nil {
		return err
	}
	s := run.Summary
	_, err := fmt.Fprintf(c.out, "\n%d entities: %d created, %d already existed, %d updated, %d skipped, %d failed\n",
		s.Total, s.Created, s.AlreadyExists, s.Updated, s.Skipped, s.Failed)
	return err
}
