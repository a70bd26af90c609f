package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ApplicationName is used for the environment prefix.
const ApplicationName = "wethr"

// AutoDetect as country asks for the country of the detected location.
const AutoDetect = "00"

// Config keys. Each is also a flag (dashed) and, upper-cased with the
// WETHR_ prefix, an environment variable.
const (
	KeyLocation       = "location"
	KeyCountry        = "country"
	KeyLanguage       = "language"
	KeyHistoryFile    = "history_file"
	KeySources        = "sources"
	KeySeed           = "seed"
	KeyHTTPTimeout    = "http_timeout"
	KeyIPInfoURL      = "ipinfo_url"
	KeyGeocoderAPIKey = "geocoder_api_key"
	KeyWatchInterval  = "watch_interval"
	KeyPort           = "port"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
)

var defaults = map[string]interface{}{
	KeyLocation:       "",
	KeyCountry:        "",
	KeyLanguage:       "",
	KeyHistoryFile:    "weather_history.json",
	KeySources:        1,
	KeySeed:           0,
	KeyHTTPTimeout:    "5s",
	KeyIPInfoURL:      "https://ipinfo.io/json",
	KeyGeocoderAPIKey: "",
	KeyWatchInterval:  "15m",
	KeyPort:           "8080",
	KeyLogLevel:       "info",
	KeyLogFormat:      FormatTTY,
}

type AppConfig struct {
	// Location to report on; empty means detect it from the IP address.
	Location string
	// Country selects the language; empty or AutoDetect uses the detected country.
	Country string
	// Language overrides Country when set (name or country code).
	Language string

	HistoryFile string

	// Sources is the number of simulated weather APIs aggregated per run.
	Sources int
	// Seed fixes the random generators when non-zero.
	Seed uint64

	HTTPTimeout    time.Duration
	IPInfoURL      string
	GeocoderAPIKey string

	WatchInterval time.Duration
	Port          string

	LogLevel  string
	LogFormat string
}

// LoadDotEnv loads a .env file from the working directory if present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}
}

// NewViper returns a viper instance with defaults and environment lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(ApplicationName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

// BindFlags binds every flag whose name, with dashes as underscores, is a
// config key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if _, ok := defaults[key]; !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// Load reads configuration from v.
func Load(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Location:       strings.TrimSpace(v.GetString(KeyLocation)),
		Country:        strings.TrimSpace(v.GetString(KeyCountry)),
		Language:       strings.TrimSpace(v.GetString(KeyLanguage)),
		HistoryFile:    v.GetString(KeyHistoryFile),
		IPInfoURL:      v.GetString(KeyIPInfoURL),
		GeocoderAPIKey: v.GetString(KeyGeocoderAPIKey),
		Port:           v.GetString(KeyPort),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
	}

	var err error
	if cfg.Sources, err = getInt(v, KeySources); err != nil {
		return nil, err
	}
	if cfg.Sources < 1 {
		return nil, fmt.Errorf("invalid %s: must be at least 1, got %d", KeySources, cfg.Sources)
	}

	seed, err := getInt(v, KeySeed)
	if err != nil {
		return nil, err
	}
	if seed < 0 {
		return nil, fmt.Errorf("invalid %s: must not be negative", KeySeed)
	}
	cfg.Seed = uint64(seed)

	if cfg.HTTPTimeout, err = getDuration(v, KeyHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.WatchInterval, err = getDuration(v, KeyWatchInterval); err != nil {
		return nil, err
	}
	if cfg.WatchInterval <= 0 {
		return nil, fmt.Errorf("invalid %s: must be positive", KeyWatchInterval)
	}

	if cfg.HistoryFile == "" {
		return nil, fmt.Errorf("invalid %s: must not be empty", KeyHistoryFile)
	}

	return cfg, nil
}

func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
