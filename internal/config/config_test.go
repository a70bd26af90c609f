package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Location)
	assert.Equal(t, "weather_history.json", cfg.HistoryFile)
	assert.Equal(t, 1, cfg.Sources)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Minute, cfg.WatchInterval)
	assert.Equal(t, "https://ipinfo.io/json", cfg.IPInfoURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, FormatTTY, cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WETHR_LOCATION", " Maceió ")
	t.Setenv("WETHR_SOURCES", "3")
	t.Setenv("WETHR_SEED", "42")
	t.Setenv("WETHR_HISTORY_FILE", "/tmp/h.json")
	t.Setenv("WETHR_WATCH_INTERVAL", "30s")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "Maceió", cfg.Location)
	assert.Equal(t, 3, cfg.Sources)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "/tmp/h.json", cfg.HistoryFile)
	assert.Equal(t, 30*time.Second, cfg.WatchInterval)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("WETHR_COUNTRY", "DE")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("country", "", "")
	flags.String("history-file", "", "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--country", "FR"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "FR", cfg.Country)
	// unset flags keep the defaults
	assert.Equal(t, "weather_history.json", cfg.HistoryFile)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"WETHR_SOURCES":        "0",
		"WETHR_SEED":           "-1",
		"WETHR_HTTP_TIMEOUT":   "soon",
		"WETHR_WATCH_INTERVAL": "0s",
	}
	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := Load(NewViper())
			assert.Error(t, err)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetOutput(logrus.StandardLogger().Out)
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	var buf bytes.Buffer
	require.NoError(t, ConfigureLogging(&AppConfig{LogLevel: "debug", LogFormat: FormatJSON}, &buf))
	logrus.WithField("service", "test").Debug("hello")
	assert.Contains(t, buf.String(), `"service":"test"`)

	assert.Error(t, ConfigureLogging(&AppConfig{LogLevel: "loud", LogFormat: FormatTTY}, &buf))
	assert.Error(t, ConfigureLogging(&AppConfig{LogLevel: "info", LogFormat: "xml"}, &buf))
}
