package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled unit of work.
type Job func(ctx context.Context)

// Scheduler runs a single job on a cron schedule.
type Scheduler struct {
	logger *zap.Logger

	// Immediate runs the job once at start, before the first tick.
	Immediate bool
}

// New creates a scheduler logging to l.
func New(l *zap.Logger) *Scheduler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Scheduler{logger: l, Immediate: true}
}

// Validate checks a schedule expression.
func Validate(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Run executes job on spec until ctx is done, then waits for a running job
// to finish before returning. Jobs receive a context that is not cancelled
// by stopping the scheduler, so a pass always runs to completion.
func (s *Scheduler) Run(ctx context.Context, spec string, job Job) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	jobCtx := context.WithoutCancel(ctx)
	cronLogger := cron.PrintfLogger(zap.NewStdLog(s.logger.Named("cron")))
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	id := c.Schedule(schedule, cron.FuncJob(func() { job(jobCtx) }))

	s.logger.Info("Scheduler started", zap.String("schedule", spec))
	c.Start()

	var immediate sync.WaitGroup
	if s.Immediate {
		// The wrapped job shares the overlap guard with scheduled ticks.
		wrapped := c.Entry(id).WrappedJob
		immediate.Add(1)
		go func() {
			defer immediate.Done()
			wrapped.Run()
		}()
	}

	<-ctx.Done()
	s.logger.Info("Stopping scheduler, waiting for running job")
	<-c.Stop().Done()
	immediate.Wait()
	s.logger.Info("Scheduler stopped")
	return nil
}
