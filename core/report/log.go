package report

import (
	"context"

	"inventory-seeder/core/reconcile"

	"go.uber.org/zap"
)

// Log writes the run summary as a structured log entry.
type Log struct {
	logger *zap.Logger
}

// NewLog logs to l.
func NewLog(l *zap.Logger) *Log {
	if l == nil {
		l = zap.NewNop()
	}
	return &Log{logger: l}
}

// Observe is a no-op; the reconciler already logs each outcome.
func (g *Log) Observe(reconcile.Result) {}

// Finish logs the summary at info, or warn when the run did not succeed.
func (g *Log) Finish(_ context.Context, run *reconcile.Run) error {
	s := run.Summary
	fields := []zap.Field{
		zap.String("run_id", run.ID),
		zap.Int("total", s.Total),
		zap.Int("created", s.Created),
		zap.Int("already_exists", s.AlreadyExists),
		zap.Int("updated", s.Updated),
		zap.Int("skipped", s.Skipped),
		zap.Int("failed", s.Failed),
		zap.Duration("elapsed", run.Finished.Sub(run.Started)),
	}
	if run.OK() {
		g.logger.Info("Reconciliation finished", fields...)
		return nil
	}
	g.logger.Warn("Reconciliation finished with failures", fields...)
	return nil
}
