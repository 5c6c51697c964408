package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"inventory-seeder/core/reconcile"
)

// JSON writes the finished run as an indented JSON document.
type JSON struct {
	w io.Writer
}

// NewJSON writes to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Observe is a no-op; the document is written once the run is complete.
func (j *JSON) Observe(reconcile.Result) {}

// Finish encodes run.
func (j *JSON) Finish(_ context.Context, run *reconcile.Run) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
