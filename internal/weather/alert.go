package weather

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Translation keys used by AlertEvaluator.
const (
	LabelSevereAlert = "severe_alert"
	LabelNoAlerts    = "no_alerts"
)

// Severity thresholds.
const (
	maxCalmWind = 15.0
	maxSafeTemp = 35.0
	minSafeTemp = -5.0
)

// AlertEvaluator flags severe readings.
type AlertEvaluator struct {
	tr Translator
}

func NewAlertEvaluator(tr Translator) *AlertEvaluator {
	return &AlertEvaluator{tr: tr}
}

// NoAlerts returns the sentinel produced for non-severe readings.
func (e *AlertEvaluator) NoAlerts() Alert {
	return Alert{Message: e.tr.Label(LabelNoAlerts)}
}

// Evaluate reports a severe alert when the condition is stormy or snowy,
// the wind exceeds 15 m/s, or the temperature leaves [-5, 35] °C.
func (e *AlertEvaluator) Evaluate(r Reading) Alert {
	if !IsSevere(r) {
		return e.NoAlerts()
	}

	alert := Alert{
		Severe:  true,
		Message: fmt.Sprintf("%s: %s!", e.tr.Label(LabelSevereAlert), r.Condition),
	}
	log.WithFields(log.Fields{
		"service":  "alerts",
		"location": r.Location,
	}).Warn(alert.Message)

	return alert
}

// IsSevere is the language-independent severity predicate.
func IsSevere(r Reading) bool {
	switch {
	case r.Condition == ConditionStormy || r.Condition == ConditionSnowy:
		return true
	case r.WindSpeed > maxCalmWind:
		return true
	case r.Temperature > maxSafeTemp || r.Temperature < minSafeTemp:
		return true
	default:
		return false
	}
}
