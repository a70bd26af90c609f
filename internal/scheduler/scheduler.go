package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/i474232898/wethr/internal/weather"
)

// Runner is the pipeline the scheduler drives.
type Runner interface {
	Run(ctx context.Context, location string) (weather.Update, error)
}

// Scheduler periodically runs the pipeline for configured locations.
// Runs are sequential so that history appends never overlap.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	locations []string
	interval  time.Duration
	timeout   time.Duration
	onUpdate  func(weather.Update)
}

// New creates a new Scheduler. onUpdate, if non-nil, receives every
// successful update.
func New(locations []string, interval time.Duration, runner Runner, onUpdate func(weather.Update)) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		runner:    runner,
		locations: locations,
		interval:  interval,
		timeout:   30 * time.Second,
		onUpdate:  onUpdate,
	}
}

// Start schedules the periodic job, runs it once immediately and starts the
// underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		return errors.New("scheduler: no locations configured")
	}
	if s.interval <= 0 {
		return errors.New("scheduler: interval must be positive")
	}

	_, err := s.scheduler.Every(s.interval).Do(s.runOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runOnce() {
	log.Debug("scheduler: running weather update job")

	for _, loc := range s.locations {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		update, err := s.runner.Run(ctx, loc)
		cancel()
		if err != nil {
			log.WithField("location", loc).WithError(err).Error("scheduler: update failed")
			continue
		}
		if s.onUpdate != nil {
			s.onUpdate(update)
		}
	}

	log.Debug("scheduler: completed weather update job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
