package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateReadings(t *testing.T) {
	got := AggregateReadings("Lisbon", []Reading{
		{Temperature: 10, Humidity: 40, WindSpeed: 2, Condition: ConditionRainy},
		{Temperature: 20, Humidity: 51, WindSpeed: 4, Condition: ConditionSunny},
		{Temperature: 30, Humidity: 60, WindSpeed: 6, Condition: ConditionRainy},
	})

	assert.Equal(t, "Lisbon", got.Location)
	assert.InDelta(t, 20.0, got.Temperature, 1e-9)
	assert.Equal(t, 50, got.Humidity)
	assert.InDelta(t, 4.0, got.WindSpeed, 1e-9)
	assert.Equal(t, ConditionRainy, got.Condition)
}

func TestAggregateSingleAndEmpty(t *testing.T) {
	r := Reading{Location: "x", Temperature: 3, Humidity: 33, WindSpeed: 1, Condition: ConditionSnowy}

	got := AggregateReadings("Oslo", []Reading{r})
	r.Location = "Oslo"
	assert.Equal(t, r, got)

	assert.Equal(t, Reading{Location: "Oslo"}, AggregateReadings("Oslo", nil))
}

func TestAggregateTieGoesToFirst(t *testing.T) {
	got := AggregateReadings("Rome", []Reading{
		{Condition: ConditionCloudy},
		{Condition: ConditionWindy},
	})
	assert.Equal(t, ConditionCloudy, got.Condition)
}
