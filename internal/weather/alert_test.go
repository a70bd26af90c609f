package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type labels map[string]string

func (l labels) Label(key string) string {
	if s, ok := l[key]; ok {
		return s
	}
	return key
}

var testLabels = labels{
	LabelSevereAlert: "Severe Weather Alert",
	LabelNoAlerts:    "No severe weather alerts.",
}

func TestEvaluateHotReadingIsSevere(t *testing.T) {
	e := NewAlertEvaluator(testLabels)

	alert := e.Evaluate(Reading{Temperature: 38, Humidity: 50, WindSpeed: 5, Condition: ConditionSunny})

	assert.True(t, alert.Severe)
	assert.Equal(t, "Severe Weather Alert: Sunny!", alert.Message)
	assert.NotEqual(t, e.NoAlerts(), alert)
}

func TestEvaluateAboveMaxTemperature(t *testing.T) {
	e := NewAlertEvaluator(testLabels)
	for _, temp := range []float64{35.0001, 36, 39.9, 50} {
		assert.True(t, e.Evaluate(Reading{Temperature: temp, Condition: ConditionCloudy}).Severe, "temperature %v", temp)
	}
}

func TestEvaluateBenignReadingsReturnSentinel(t *testing.T) {
	e := NewAlertEvaluator(testLabels)
	benign := []Condition{ConditionSunny, ConditionRainy, ConditionCloudy, ConditionWindy}

	for _, temp := range []float64{-5, -4.9, 0, 20, 35} {
		for _, wind := range []float64{0, 7.5, 15} {
			for _, cond := range benign {
				r := Reading{Temperature: temp, WindSpeed: wind, Condition: cond}
				assert.Equal(t, e.NoAlerts(), e.Evaluate(r), "%+v", r)
			}
		}
	}
	assert.Equal(t, "No severe weather alerts.", e.NoAlerts().Message)
	assert.False(t, e.NoAlerts().Severe)
}

func TestEvaluateSevereClauses(t *testing.T) {
	e := NewAlertEvaluator(testLabels)

	tests := []struct {
		name    string
		reading Reading
		message string
	}{
		{"snowy", Reading{Temperature: 0, Condition: ConditionSnowy}, "Severe Weather Alert: Snowy!"},
		{"stormy", Reading{Temperature: 10, Condition: ConditionStormy}, "Severe Weather Alert: Stormy!"},
		{"strong wind", Reading{Temperature: 10, WindSpeed: 15.1, Condition: ConditionWindy}, "Severe Weather Alert: Windy!"},
		{"freezing", Reading{Temperature: -5.1, Condition: ConditionCloudy}, "Severe Weather Alert: Cloudy!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := e.Evaluate(tt.reading)
			assert.True(t, alert.Severe)
			assert.Equal(t, tt.message, alert.Message)
		})
	}
}

func TestSentinelFollowsTranslator(t *testing.T) {
	e := NewAlertEvaluator(labels{LabelNoAlerts: "Keine Unwetterwarnungen.", LabelSevereAlert: "Unwetterwarnung"})

	assert.Equal(t, Alert{Message: "Keine Unwetterwarnungen."}, e.Evaluate(Reading{Temperature: 10, Condition: ConditionSunny}))
	assert.Equal(t, "Unwetterwarnung: Snowy!", e.Evaluate(Reading{Condition: ConditionSnowy}).Message)
}
