package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"inventory-seeder/core/reconcile"
)

// Reporter observes results as they are produced and the finished run.
type Reporter interface {
	reconcile.Observer
	// Finish is called once with the completed run.
	Finish(ctx context.Context, run *reconcile.Run) error
}

// Multi fans out to several reporters in order.
type Multi []Reporter

// Observe forwards r to every reporter.
func (m Multi) Observe(r reconcile.Result) {
	for _, rep := range m {
		rep.Observe(r)
	}
}

// Finish calls Finish on every reporter and joins their errors.
func (m Multi) Finish(ctx context.Context, run *reconcile.Run) error {
	var errs []error
	for _, rep := range m {
		if err := rep.Finish(ctx, run); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteFailures lists every Skipped or Failed entity, one per line.
func WriteFailures(w io.Writer, run *reconcile.Run) error {
	failures := run.Failures()
	if len(failures) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%d entities did not resolve:\n", len(failures)); err != nil {
		return err
	}
	for _, res := range failures {
		if _, err := fmt.Fprintf(w, "  %s %s:%s: %s\n", res.Status, res.Kind, res.Key, res.Detail); err != nil {
			return err
		}
	}
	return nil
}
