package scheduler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Refresher is triggered on every tick.
type Refresher interface {
	AutoRefresh()
}

// Scheduler periodically refreshes the cuaca list.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Refresher
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a Scheduler that calls target.AutoRefresh every interval.
func New(target Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		target:    target,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job. The first run happens one interval after
// Start; the initial load is the screen's own.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		return errors.New("scheduler: interval must be positive")
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(func() {
		s.logger.Debug("auto refresh")
		s.target.AutoRefresh()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("auto refresh scheduled", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
