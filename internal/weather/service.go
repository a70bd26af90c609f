package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidLocation is returned when a run is requested for a blank location.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrCollect is returned when no source produced a reading.
	ErrCollect = errors.New("weather data collection failed")
	// ErrPersist is returned when the reading could not be written to history.
	ErrPersist = errors.New("weather history write failed")
)

// Service runs the collection, forecast, alert, history and trend stages
// for one location at a time.
type Service struct {
	store      Store
	sources    []Source
	forecaster *Forecaster
	alerts     *AlertEvaluator
	analyzer   *TrendAnalyzer

	now func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, sources []Source, forecaster *Forecaster, alerts *AlertEvaluator, analyzer *TrendAnalyzer) *Service {
	return &Service{
		store:      store,
		sources:    sources,
		forecaster: forecaster,
		alerts:     alerts,
		analyzer:   analyzer,
		now:        time.Now,
	}
}

// Alerts exposes the evaluator so callers can compare against its sentinel.
func (s *Service) Alerts() *AlertEvaluator {
	return s.alerts
}

// Run produces a complete update for location, or an error and no update.
func (s *Service) Run(ctx context.Context, location string) (Update, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Update{}, fmt.Errorf("%w: location must not be empty", ErrInvalidLocation)
	}

	current, err := s.collect(ctx, location)
	if err != nil {
		return Update{}, err
	}

	forecast := s.forecaster.Forecast(current)
	alert := s.alerts.Evaluate(current)

	if err := s.store.Append(location, current); err != nil {
		return Update{}, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	trend := s.analyzer.Analyze(location)

	return Update{
		ID:        uuid.NewString(),
		Location:  location,
		Timestamp: s.now().UTC(),
		Current:   current,
		Forecast:  forecast,
		Alert:     alert,
		Trend:     trend,
	}, nil
}

// collect fetches from all sources concurrently and aggregates the successful
// readings. Individual source failures are logged; the stage fails only when
// every source failed.
func (s *Service) collect(ctx context.Context, location string) (Reading, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []Reading
		errs     []error
	)

	if len(s.sources) == 0 {
		return Reading{}, fmt.Errorf("%w: no weather sources configured", ErrCollect)
	}

	for _, src := range s.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := src.Collect(ctx, location)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WithFields(log.Fields{
					"service":  "collector",
					"source":   src.Name(),
					"location": location,
				}).WithError(err).Warn("source failed")
				errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
				return
			}
			readings = append(readings, r)
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Reading{}, fmt.Errorf("%w: %v", ErrCollect, err)
	}
	if len(readings) == 0 {
		return Reading{}, fmt.Errorf("%w: %v", ErrCollect, errors.Join(errs...))
	}

	return AggregateReadings(location, readings), nil
}
