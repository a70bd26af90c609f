package weather

import (
	"math/rand/v2"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Confidence bounds of the placeholder trend analysis.
const (
	MinConfidence = 0.70
	MaxConfidence = 0.99
)

var trends = []Trend{TrendWarming, TrendCooling, TrendStable}

// TrendAnalyzer summarizes a location's history. The trend and confidence
// are sampled and do not depend on the stored values; only Datapoints does.
type TrendAnalyzer struct {
	store Store

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTrendAnalyzer(store Store, rng *rand.Rand) *TrendAnalyzer {
	return &TrendAnalyzer{
		store: store,
		rng:   rng,
	}
}

func (a *TrendAnalyzer) Analyze(location string) TrendReport {
	history := a.store.HistoryFor(location)

	a.mu.Lock()
	report := TrendReport{
		Trend:      trends[a.rng.IntN(len(trends))],
		Confidence: MinConfidence + a.rng.Float64()*(MaxConfidence-MinConfidence),
		Datapoints: len(history),
	}
	a.mu.Unlock()

	log.WithFields(log.Fields{
		"service":    "analytics",
		"location":   location,
		"trend":      report.Trend,
		"datapoints": report.Datapoints,
	}).Debug("climate trend analysis")

	return report
}
