package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"inventory-seeder/core/reconcile"
	"inventory-seeder/core/storage"

	"go.uber.org/zap"
)

// Archive uploads the JSON report of every run to object storage.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewArchive stores reports as <prefix>/<run id>.json in bucket.
func NewArchive(client storage.Client, bucket, prefix string, l *zap.Logger) *Archive {
	if l == nil {
		l = zap.NewNop()
	}
	return &Archive{client: client, bucket: bucket, prefix: prefix, logger: l}
}

// Observe is a no-op.
func (a *Archive) Observe(reconcile.Result) {}

// ObjectName returns the object key of a run's report.
func (a *Archive) ObjectName(run *reconcile.Run) string {
	return path.Join(a.prefix, run.ID+".json")
}

// Finish uploads the report.
func (a *Archive) Finish(ctx context.Context, run *reconcile.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	object := a.ObjectName(run)
	if err := storage.Upload(ctx, a.client, a.bucket, object, "application/json", data); err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	a.logger.Info("Archived run report", zap.String("bucket", a.bucket), zap.String("object", object))
	return nil
}
