package weather

import (
	"context"
	"math/rand/v2"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Ranges of the simulated values.
const (
	MinTemperature = -10.0
	MaxTemperature = 40.0
	MinHumidity    = 20
	MaxHumidity    = 90
	MaxWindSpeed   = 20.0
)

// RandomSource simulates a weather API by drawing uniform random values.
type RandomSource struct {
	name string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource drawing from rng.
func NewRandomSource(name string, rng *rand.Rand) *RandomSource {
	return &RandomSource{
		name: name,
		rng:  rng,
	}
}

func (s *RandomSource) Name() string {
	return s.name
}

// Collect never fails.
func (s *RandomSource) Collect(_ context.Context, location string) (Reading, error) {
	s.mu.Lock()
	r := Reading{
		Location:    location,
		Temperature: MinTemperature + s.rng.Float64()*(MaxTemperature-MinTemperature),
		Humidity:    MinHumidity + s.rng.IntN(MaxHumidity-MinHumidity+1),
		WindSpeed:   s.rng.Float64() * MaxWindSpeed,
		Condition:   GeneratedConditions[s.rng.IntN(len(GeneratedConditions))],
	}
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"service":     "collector",
		"source":      s.name,
		"location":    location,
		"temperature": r.Temperature,
		"humidity":    r.Humidity,
		"wind_speed":  r.WindSpeed,
		"condition":   r.Condition,
	}).Debug("data collected")

	return r, nil
}
