package infra

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper removes idle sessions
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
	Len() int
}

// Scheduler runs the periodic session sweep
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	spec    string
	maxIdle time.Duration
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler.
// spec defaults to "@every 5m" if empty.
func NewScheduler(sweeper Sweeper, spec string, maxIdle time.Duration, logger *zap.Logger) *Scheduler {
	if spec == "" {
		spec = "@every 5m"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		spec:    spec,
		maxIdle: maxIdle,
		logger:  logger,
	}
}

// Start registers the sweep job and starts the cron scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler",
		zap.String("sweep", s.spec),
		zap.Duration("max_idle", s.maxIdle),
	)

	if _, err := s.cron.AddFunc(s.spec, func() { s.RunNow() }); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// RunNow performs one sweep immediately
func (s *Scheduler) RunNow() int {
	removed := s.sweeper.Sweep(s.maxIdle)
	if removed > 0 {
		s.logger.Info("swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", s.sweeper.Len()),
		)
	}
	return removed
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}
