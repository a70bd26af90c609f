package weather

import "math"

// AggregateReadings combines readings from several sources into one.
// Numeric fields are averaged (humidity rounded to the nearest percent);
// the condition is selected by majority, ties going to the earliest reading.
func AggregateReadings(location string, readings []Reading) Reading {
	switch len(readings) {
	case 0:
		return Reading{Location: location}
	case 1:
		r := readings[0]
		r.Location = location
		return r
	}

	var (
		sumTemp     float64
		sumHumidity int
		sumWind     float64
	)

	conditionCounts := make(map[Condition]int)
	order := make([]Condition, 0, len(readings))

	for _, r := range readings {
		sumTemp += r.Temperature
		sumHumidity += r.Humidity
		sumWind += r.WindSpeed

		if _, seen := conditionCounts[r.Condition]; !seen {
			order = append(order, r.Condition)
		}
		conditionCounts[r.Condition]++
	}

	n := float64(len(readings))

	// Pick majority condition.
	var bestCond Condition
	bestCount := 0
	for _, cond := range order {
		if count := conditionCounts[cond]; count > bestCount {
			bestCount = count
			bestCond = cond
		}
	}

	return Reading{
		Location:    location,
		Temperature: sumTemp / n,
		Humidity:    int(math.Round(float64(sumHumidity) / n)),
		WindSpeed:   sumWind / n,
		Condition:   bestCond,
	}
}
