// Package jobs runs background maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pruner removes search history past its retention window.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// Scheduler owns the cron runner for retention jobs.
type Scheduler struct {
	cron      *cron.Cron
	pruner    Pruner
	pruneSpec string
	onPruned  func(n int64)
	logger    *zap.Logger
}

// NewScheduler builds a UTC scheduler. onPruned may be nil.
func NewScheduler(pruner Pruner, pruneSpec string, onPruned func(n int64), logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cl := cronLogger{logger.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		pruner:    pruner,
		pruneSpec: pruneSpec,
		onPruned:  onPruned,
		logger:    logger,
	}
}

// Start registers the jobs and starts the runner. ctx is handed to every run
// and should outlive the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.pruneSpec, func() { s.prune(ctx) }); err != nil {
		return fmt.Errorf("schedule search history prune %q: %w", s.pruneSpec, err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("prune_spec", s.pruneSpec))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) prune(ctx context.Context) {
	n, err := s.pruner.Prune(ctx)
	if err != nil {
		s.logger.Error("search history prune failed", zap.Error(err))
		return
	}
	if s.onPruned != nil {
		s.onPruned(n)
	}
}

// cronLogger routes cron's internal logging through zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
