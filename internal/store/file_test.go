package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/i474232898/wethr/internal/weather"
)

func tickingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T) (*FileStore, string) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := NewFileStore(path)
	s.now = tickingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return s, path
}

func TestAppendThenHistoryFor(t *testing.T) {
	is := is.New(t)
	s, _ := newTestStore(t)

	r := weather.Reading{Temperature: 21.5, Humidity: 40, WindSpeed: 3.2, Condition: weather.ConditionSunny}
	is.NoErr(s.Append("Maceió", r))

	history := s.HistoryFor("Maceió")
	is.Equal(len(history), 1)

	r.Location = "Maceió"
	for ts, got := range history {
		_, err := time.Parse(TimestampLayout, ts)
		is.NoErr(err)
		is.Equal(got, r)
	}
}

func TestAppendGrowsOnlyTouchedLocation(t *testing.T) {
	is := is.New(t)
	s, _ := newTestStore(t)

	for i := 0; i < 5; i++ {
		is.NoErr(s.Append("Paris", weather.Reading{Temperature: float64(i), Condition: weather.ConditionRainy}))
	}

	is.Equal(len(s.HistoryFor("Paris")), 5)
	is.Equal(len(s.HistoryFor("Berlin")), 0)
	is.Equal(s.Locations(), []string{"Paris"})
}

func TestPersistedHistoryRoundTrips(t *testing.T) {
	is := is.New(t)
	s, path := newTestStore(t)

	is.NoErr(s.Append("Paris", weather.Reading{Temperature: 12.25, Humidity: 70, WindSpeed: 1.5, Condition: weather.ConditionCloudy}))
	is.NoErr(s.Append("Paris", weather.Reading{Temperature: -3, Humidity: 88, WindSpeed: 18, Condition: weather.ConditionSnowy}))
	is.NoErr(s.Append("São Paulo", weather.Reading{Temperature: 30, Humidity: 20, WindSpeed: 0, Condition: weather.ConditionSunny}))

	reloaded := NewFileStore(path)
	is.Equal(reloaded.HistoryFor("Paris"), s.HistoryFor("Paris"))
	is.Equal(reloaded.HistoryFor("São Paulo"), s.HistoryFor("São Paulo"))
	is.Equal(reloaded.Locations(), s.Locations())
}

func TestPersistedFormat(t *testing.T) {
	is := is.New(t)
	s, path := newTestStore(t)

	is.NoErr(s.Append("Oslo", weather.Reading{Temperature: 1.5, Humidity: 80, WindSpeed: 4, Condition: weather.ConditionWindy}))

	b, err := os.ReadFile(path)
	is.NoErr(err)

	var doc map[string]map[string]map[string]interface{}
	is.NoErr(json.Unmarshal(b, &doc))
	is.Equal(len(doc["Oslo"]), 1)
	for _, entry := range doc["Oslo"] {
		is.Equal(entry["temperature"], 1.5)
		is.Equal(entry["humidity"], 80.0)
		is.Equal(entry["wind_speed"], 4.0)
		is.Equal(entry["condition"], "Windy")
		is.Equal(len(entry), 4) // location is the map key, not a field
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "history.json")

	for _, content := range []string{"{not json", "[1,2,3]", `{"Paris": "nope"}`} {
		is.NoErr(os.WriteFile(path, []byte(content), 0o644))

		s := NewFileStore(path)
		is.Equal(len(s.Locations()), 0)
		is.Equal(len(s.HistoryFor("Paris")), 0)

		// the next append replaces the corrupt document
		is.NoErr(s.Append("Paris", weather.Reading{Condition: weather.ConditionSunny}))
		is.Equal(len(NewFileStore(path).HistoryFor("Paris")), 1)
	}
}

func TestMissingFileStartsEmpty(t *testing.T) {
	is := is.New(t)
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	is.Equal(len(s.Locations()), 0)
}

func TestIdenticalTimestampOverwrites(t *testing.T) {
	is := is.New(t)
	s, _ := newTestStore(t)
	fixed := time.Date(2024, 2, 2, 2, 2, 2, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	is.NoErr(s.Append("Rome", weather.Reading{Temperature: 1}))
	is.NoErr(s.Append("Rome", weather.Reading{Temperature: 2}))

	history := s.HistoryFor("Rome")
	is.Equal(len(history), 1)
	is.Equal(history[fixed.Format(TimestampLayout)].Temperature, 2.0)
}

func TestAppendWriteErrorIsReturned(t *testing.T) {
	is := is.New(t)
	s := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "history.json"))

	err := s.Append("Rome", weather.Reading{Temperature: 1})
	is.True(err != nil)
	is.Equal(len(s.HistoryFor("Rome")), 0) // memory rolled back
	is.Equal(len(s.Locations()), 0)
}

func TestLookup(t *testing.T) {
	is := is.New(t)
	s, _ := newTestStore(t)
	is.NoErr(s.Append("Nice", weather.Reading{Temperature: 17, Condition: weather.ConditionSunny}))

	ts := Timestamps(s.HistoryFor("Nice"))[0]
	r, err := s.Lookup("Nice", ts)
	is.NoErr(err)
	is.Equal(r.Temperature, 17.0)

	_, err = s.Lookup("Nice", "2000-01-01T00:00:00Z")
	is.Equal(err, ErrNotFound)
	_, err = s.Lookup("Lyon", ts)
	is.Equal(err, ErrNotFound)
}

func TestTimestampsAreChronological(t *testing.T) {
	is := is.New(t)
	history := map[string]weather.Reading{
		"2024-01-01T00:00:10Z":           {},
		"2024-01-01T00:00:02.5Z":         {},
		"2024-01-01T00:00:02Z":           {},
		"2023-12-31T23:59:59.999999999Z": {},
	}

	is.Equal(Timestamps(history), []string{
		"2023-12-31T23:59:59.999999999Z",
		"2024-01-01T00:00:02Z",
		"2024-01-01T00:00:02.5Z",
		"2024-01-01T00:00:10Z",
	})
}
