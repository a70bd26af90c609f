package weather

import (
	"math/rand/v2"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Horizon vocabularies.
var (
	WeekAheadOutlooks = []string{"Mostly Sunny", "Scattered Showers", "Stormy"}
	LongTermOutlooks  = []string{"Warming Trend", "Cooling Trend", "Stable"}
)

// tomorrowThreshold is the temperature above which tomorrow is forecast sunny.
const tomorrowThreshold = 20.0

// Forecaster derives a forecast from a current reading. Tomorrow follows
// the temperature rule; the week-ahead and long-term labels are sampled.
type Forecaster struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewForecaster(rng *rand.Rand) *Forecaster {
	return &Forecaster{rng: rng}
}

func (f *Forecaster) Forecast(current Reading) Forecast {
	tomorrow := "Cloudy"
	if current.Temperature > tomorrowThreshold {
		tomorrow = "Sunny"
	}

	f.mu.Lock()
	fc := Forecast{
		Tomorrow:  tomorrow,
		WeekAhead: WeekAheadOutlooks[f.rng.IntN(len(WeekAheadOutlooks))],
		LongTerm:  LongTermOutlooks[f.rng.IntN(len(LongTermOutlooks))],
	}
	f.mu.Unlock()

	log.WithFields(log.Fields{
		"service":    "forecaster",
		"location":   current.Location,
		"tomorrow":   fc.Tomorrow,
		"week_ahead": fc.WeekAhead,
		"long_term":  fc.LongTerm,
	}).Debug("forecast generated")

	return fc
}
