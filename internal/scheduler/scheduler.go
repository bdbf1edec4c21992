// Package scheduler runs the periodic session staleness sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Sweeper is the cleanup entry point. Satisfied by session.Lifecycle.
type Sweeper interface {
	CleanupStale(ctx context.Context) (int, error)
}

// Scheduler owns the gocron instance driving the sweep.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
	log       *zap.Logger
}

// New creates a scheduler sweeping at the given interval.
func New(sweeper Sweeper, interval time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sweeper:   sweeper,
		interval:  interval,
		log:       log,
	}
}

// Start begins the periodic sweep in the background.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.sweep); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled sweep.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.sweeper.CleanupStale(ctx); err != nil {
		s.log.Error("staleness sweep failed", zap.Error(err))
	}
}
