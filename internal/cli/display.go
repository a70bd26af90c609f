package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/i474232898/wethr/internal/i18n"
	"github.com/i474232898/wethr/internal/weather"
)

// Labeler resolves localized labels.
type Labeler interface {
	Label(key string) string
}

// Render prints a localized update. The alert is printed only when it
// differs from noAlerts.
func Render(w io.Writer, tr Labeler, u weather.Update, noAlerts weather.Alert) {
	line := func(key string, value interface{}) {
		fmt.Fprintf(w, "%s: %v\n", tr.Label(key), value)
	}

	fmt.Fprintf(w, "\n%s\n", tr.Label(i18n.KeyWeatherUpdate))
	line(i18n.KeyLocation, u.Location)
	line(i18n.KeyCurrentTemp, round(u.Current.Temperature)+"°C")
	line(i18n.KeyCondition, u.Current.Condition)
	line(i18n.KeyHumidity, fmt.Sprintf("%d%%", u.Current.Humidity))
	line(i18n.KeyWindSpeed, round(u.Current.WindSpeed)+" m/s")

	fmt.Fprintf(w, "\n%s\n", tr.Label(i18n.KeyForecast))
	line(i18n.KeyTomorrow, u.Forecast.Tomorrow)
	line(i18n.KeyWeekAhead, u.Forecast.WeekAhead)
	line(i18n.KeyLongTerm, u.Forecast.LongTerm)

	if u.Alert != noAlerts {
		fmt.Fprintf(w, "\n⚠️ %s\n", u.Alert.Message)
	}

	fmt.Fprintf(w, "\n%s\n", tr.Label(i18n.KeyClimateTrends))
	line(i18n.KeyTrend, u.Trend.Trend)
	line(i18n.KeyConfidence, percent(u.Trend.Confidence))
	line(i18n.KeyDatapoints, u.Trend.Datapoints)
}

// round formats v with one decimal place.
func round(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}

// percent formats a [0,1] ratio as a percentage with two decimal places.
func percent(ratio float64) string {
	return decimal.NewFromFloat(ratio).Shift(2).StringFixed(2) + "%"
}
