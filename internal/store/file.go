package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/i474232898/wethr/internal/weather"
)

var (
	// ErrNotFound is returned when no data is available for a given location or timestamp.
	ErrNotFound = errors.New("no weather data for location")
)

// TimestampLayout is the ISO-8601 layout of history keys.
const TimestampLayout = time.RFC3339Nano

// HistoryLog maps location -> timestamp -> reading.
type HistoryLog map[string]map[string]weather.Reading

// FileStore is an append-only history persisted as one JSON document.
// Every Append rewrites the whole file before returning.
type FileStore struct {
	mu sync.RWMutex

	path string
	data HistoryLog

	now func() time.Time
}

// NewFileStore opens the history at path. A missing file yields an empty
// history; an unreadable or malformed one is logged and replaced by an
// empty history on the next write.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path: path,
		now:  time.Now,
	}
	s.data = s.load()
	return s
}

func (s *FileStore) load() HistoryLog {
	logger := log.WithFields(log.Fields{"service": "history", "path": s.path})

	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.WithError(err).Warn("cannot read history, starting empty")
		}
		return HistoryLog{}
	}

	var raw HistoryLog
	if err := json.Unmarshal(b, &raw); err != nil {
		logger.WithError(err).Warn("malformed history, starting empty")
		return HistoryLog{}
	}

	data := make(HistoryLog, len(raw))
	for loc, entries := range raw {
		if entries == nil {
			continue
		}
		for ts, r := range entries {
			r.Location = loc
			entries[ts] = r
		}
		data[loc] = entries
	}
	logger.WithField("locations", len(data)).Debug("history loaded")
	return data
}

// Append stamps reading with the current time and persists the full history.
// An identical timestamp overwrites the previous entry.
func (s *FileStore) Append(location string, reading weather.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UTC().Format(TimestampLayout)
	reading.Location = location

	entries, ok := s.data[location]
	if !ok {
		entries = make(map[string]weather.Reading)
		s.data[location] = entries
	}
	prev, existed := entries[ts]
	entries[ts] = reading

	if err := s.persist(); err != nil {
		// Keep memory consistent with the file.
		if existed {
			entries[ts] = prev
		} else {
			delete(entries, ts)
		}
		if len(entries) == 0 {
			delete(s.data, location)
		}
		return err
	}

	log.WithFields(log.Fields{
		"service":   "history",
		"location":  location,
		"timestamp": ts,
	}).Debug("data stored")
	return nil
}

// persist writes the history to a temporary file and renames it over the
// target so a failed write never truncates the previous document.
func (s *FileStore) persist() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close history: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// HistoryFor returns a copy of all readings stored for location, keyed by
// timestamp. Unknown locations yield an empty map.
func (s *FileStore) HistoryFor(location string) map[string]weather.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.data[location]
	out := make(map[string]weather.Reading, len(entries))
	for ts, r := range entries {
		out[ts] = r
	}
	return out
}

// Lookup returns the reading stored for location at exactly timestamp.
func (s *FileStore) Lookup(location, timestamp string) (weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data[location][timestamp]
	if !ok {
		return weather.Reading{}, ErrNotFound
	}
	return r, nil
}

// Locations returns the stored location names in lexical order.
func (s *FileStore) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locs := make([]string, 0, len(s.data))
	for loc := range s.data {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// Timestamps returns the keys of history in chronological order.
func Timestamps(history map[string]weather.Reading) []string {
	keys := make([]string, 0, len(history))
	for ts := range history {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, errI := time.Parse(TimestampLayout, keys[i])
		tj, errJ := time.Parse(TimestampLayout, keys[j])
		if errI != nil || errJ != nil {
			return keys[i] < keys[j]
		}
		return ti.Before(tj)
	})
	return keys
}
