package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/wethr/internal/config"
	"github.com/i474232898/wethr/internal/i18n"
	"github.com/i474232898/wethr/internal/location"
	"github.com/i474232898/wethr/internal/store"
	"github.com/i474232898/wethr/internal/weather"
)

// components are built once per command and handed to whoever needs them.
type components struct {
	tr      *i18n.Translator
	store   *store.FileStore
	service *weather.Service
}

func newLocator(cfg *config.AppConfig) *location.Client {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return location.NewClient(client, cfg.IPInfoURL, cfg.GeocoderAPIKey)
}

func buildComponents(cfg *config.AppConfig, lang i18n.Language) (*components, error) {
	tr, err := i18n.New(lang)
	if err != nil {
		return nil, err
	}

	rng := newRNG(cfg.Seed)

	st := store.NewFileStore(cfg.HistoryFile)

	sources := make([]weather.Source, 0, cfg.Sources)
	for i := 0; i < cfg.Sources; i++ {
		sources = append(sources, weather.NewRandomSource(fmt.Sprintf("API%d", i+1), childRNG(rng)))
	}

	service := weather.NewService(
		st,
		sources,
		weather.NewForecaster(childRNG(rng)),
		weather.NewAlertEvaluator(tr),
		weather.NewTrendAnalyzer(st, childRNG(rng)),
	)

	return &components{
		tr:      tr,
		store:   st,
		service: service,
	}, nil
}

// resolveLanguage picks the language from explicit configuration, falling
// back to the detected country for AutoDetect.
func resolveLanguage(ctx context.Context, cfg *config.AppConfig, country string, locator *location.Client) i18n.Language {
	if cfg.Language != "" {
		lang, err := i18n.Parse(cfg.Language)
		if err == nil {
			return lang
		}
		log.WithError(err).Warn("falling back to the default language")
		return i18n.DefaultLanguage
	}

	if country == config.AutoDetect {
		info, err := locator.Detect(ctx)
		if err != nil {
			log.WithError(err).Warn("country detection failed, using the default language")
			return i18n.DefaultLanguage
		}
		country = info.Country
	}
	return i18n.FromCountry(country)
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// childRNG derives an independent generator so each component owns one.
func childRNG(parent *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(parent.Uint64(), parent.Uint64()))
}
