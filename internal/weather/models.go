package weather

import (
	"time"
)

// Condition is the high-level sky condition attached to a reading.
type Condition string

const (
	ConditionSunny  Condition = "Sunny"
	ConditionRainy  Condition = "Rainy"
	ConditionCloudy Condition = "Cloudy"
	ConditionSnowy  Condition = "Snowy"
	ConditionWindy  Condition = "Windy"

	// ConditionStormy is checked by the alert predicate but never produced
	// by RandomSource.
	ConditionStormy Condition = "Stormy"
)

// GeneratedConditions is the vocabulary RandomSource draws from.
var GeneratedConditions = []Condition{
	ConditionSunny,
	ConditionRainy,
	ConditionCloudy,
	ConditionSnowy,
	ConditionWindy,
}

// Reading is one synthesized snapshot of current weather for a location.
// Location is not serialized; the history file keys readings by location.
type Reading struct {
	Location    string    `json:"-"`
	Temperature float64   `json:"temperature"` // °C
	Humidity    int       `json:"humidity"`    // percent
	WindSpeed   float64   `json:"wind_speed"`  // m/s
	Condition   Condition `json:"condition"`
}

// Forecast holds short, medium and long horizon labels derived from a reading.
type Forecast struct {
	Tomorrow  string `json:"tomorrow"`
	WeekAhead string `json:"week_ahead"`
	LongTerm  string `json:"long_term"`
}

// Alert is the severity verdict for a reading. The zero-severity value is
// the localized sentinel returned by AlertEvaluator.NoAlerts, compare with ==.
type Alert struct {
	Severe  bool   `json:"severe"`
	Message string `json:"message"`
}

// Trend is the label reported by TrendAnalyzer.
type Trend string

const (
	TrendWarming Trend = "Warming"
	TrendCooling Trend = "Cooling"
	TrendStable  Trend = "Stable"
)

// TrendReport summarizes the stored history of one location.
type TrendReport struct {
	Trend      Trend   `json:"trend"`
	Confidence float64 `json:"confidence"`
	Datapoints int     `json:"datapoints"`
}

// Update is the aggregate returned by one pipeline run.
type Update struct {
	ID        string      `json:"id"`
	Location  string      `json:"location"`
	Timestamp time.Time   `json:"timestamp"` // always UTC
	Current   Reading     `json:"current_weather"`
	Forecast  Forecast    `json:"forecast"`
	Alert     Alert       `json:"alerts"`
	Trend     TrendReport `json:"climate_trends"`
}
