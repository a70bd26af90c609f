package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kelvins/geocoder"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// DefaultURL is the ipinfo endpoint describing the caller's address.
const DefaultURL = "https://ipinfo.io/json"

// ErrDetect is returned when no city could be determined.
var ErrDetect = errors.New("location detection failed")

// Info is the subset of the ipinfo response the CLI uses.
type Info struct {
	IP       string `json:"ip"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"` // "lat,lon"
	Timezone string `json:"timezone"`
}

// Coordinates parses Loc.
func (i Info) Coordinates() (lat, lon float64, err error) {
	parts := strings.Split(i.Loc, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed coordinates %q", i.Loc)
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, err
	}
	if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// ReverseGeocoder resolves coordinates to a city name.
type ReverseGeocoder func(ctx context.Context, lat, lon float64) (string, error)

// Client detects the caller's location from its public IP address.
type Client struct {
	url     string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	reverse ReverseGeocoder
}

// NewClient creates a Client. When geocoderAPIKey is set, responses without
// a city are resolved through reverse geocoding of their coordinates.
func NewClient(client *http.Client, url, geocoderAPIKey string) *Client {
	if url == "" {
		url = DefaultURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ipinfo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	c := &Client{
		url: url,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
	if geocoderAPIKey != "" {
		c.reverse = googleReverseGeocoder(geocoderAPIKey)
	}
	return c
}

// Detect looks up the caller's location.
func (c *Client) Detect(ctx context.Context) (Info, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrDetect, err)
	}
	defer resp.Body.Close()

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Info{}, fmt.Errorf("%w: decode response: %v", ErrDetect, err)
	}

	if info.City == "" && c.reverse != nil {
		lat, lon, err := info.Coordinates()
		if err == nil {
			city, gerr := c.reverse(ctx, lat, lon)
			if gerr != nil {
				log.WithError(gerr).Warn("reverse geocoding failed")
			}
			info.City = city
		}
	}

	if info.City == "" {
		return Info{}, fmt.Errorf("%w: no city in response", ErrDetect)
	}

	log.WithFields(log.Fields{
		"city":    info.City,
		"country": info.Country,
	}).Debug("location detected")

	return info, nil
}

// geocoder keeps its API key in a package variable.
var geocoderMu sync.Mutex

func googleReverseGeocoder(apiKey string) ReverseGeocoder {
	return func(ctx context.Context, lat, lon float64) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		geocoderMu.Lock()
		defer geocoderMu.Unlock()

		geocoder.ApiKey = apiKey
		addresses, err := geocoder.GeocodingReverse(geocoder.Location{
			Latitude:  lat,
			Longitude: lon,
		})
		if err != nil {
			return "", err
		}
		for _, a := range addresses {
			if a.City != "" {
				return a.City, nil
			}
		}
		return "", fmt.Errorf("no city at %f,%f", lat, lon)
	}
}
