// Package scheduler runs settlement sweeps on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/pick-settler/internal/service"
)

const defaultRunTimeout = 10 * time.Minute

// Runner performs one settlement sweep
type Runner interface {
	Run(ctx context.Context) (*service.RunStats, error)
}

// Scheduler manages the scheduled settlement job. A tick that fires while
// the previous run is still in progress is skipped.
type Scheduler struct {
	cron       *cron.Cron
	runner     Runner
	logger     *logrus.Entry
	runTimeout time.Duration

	mu        sync.RWMutex
	isRunning bool
	jobID     cron.EntryID
	lastRun   time.Time
	lastErr   error
	lastStats *service.RunStats
}

// NewScheduler creates a new scheduler
func NewScheduler(runner Runner, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	entry := logger.WithField("component", "scheduler")
	cronLog := cronLogger{entry}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		runner:     runner,
		logger:     entry,
		runTimeout: defaultRunTimeout,
	}
}

// ScheduleSettlement registers the settlement job
func (s *Scheduler) ScheduleSettlement(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}
	if s.jobID != 0 {
		return fmt.Errorf("settlement job already scheduled")
	}

	entryID, err := s.cron.AddFunc(cronExpression, func() { s.RunNow(context.Background()) })
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobID = entryID
	s.logger.WithField("schedule", cronExpression).Info("Scheduled settlement job")
	return nil
}

// RunNow performs one run synchronously and records its outcome
func (s *Scheduler) RunNow(ctx context.Context) {
	s.mu.RLock()
	timeout := s.runTimeout
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stats, err := s.runner.Run(ctx)

	s.mu.Lock()
	s.lastRun = time.Now()
	s.lastErr = err
	s.lastStats = stats
	s.mu.Unlock()

	if err != nil {
		s.logger.WithError(err).Error("Settlement run failed")
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	if s.jobID == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("next_run", s.cron.Entry(s.jobID).Next).Info("Scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the time of the next scheduled run
func (s *Scheduler) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || s.jobID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.jobID).Next
}

// LastRun returns when the last run finished and its error
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun, s.lastErr
}

// LastStats returns the stats of the last run, or nil
func (s *Scheduler) LastStats() *service.RunStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastStats
}

// cronLogger adapts a logrus entry to cron.Logger
type cronLogger struct {
	entry *logrus.Entry
}

func (l cronLogger) fields(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return l.entry.WithFields(fields)
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).WithError(err).Error(msg)
}
