package feedback

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrEmptyReport is returned for blank reports or locations.
var ErrEmptyReport = errors.New("feedback report must not be empty")

// Report is a user's own description of the local weather.
type Report struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Text        string    `json:"report"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Box collects reports in memory for the lifetime of the process.
type Box struct {
	mu      sync.RWMutex
	reports []Report

	now func() time.Time
}

func NewBox() *Box {
	return &Box{now: time.Now}
}

// Submit records a report for location.
func (b *Box) Submit(location, text string) (Report, error) {
	location = strings.TrimSpace(location)
	text = strings.TrimSpace(text)
	if location == "" || text == "" {
		return Report{}, ErrEmptyReport
	}

	r := Report{
		ID:          uuid.NewString(),
		Location:    location,
		Text:        text,
		SubmittedAt: b.now().UTC(),
	}

	b.mu.Lock()
	b.reports = append(b.reports, r)
	b.mu.Unlock()

	log.WithFields(log.Fields{
		"service":  "feedback",
		"location": location,
		"id":       r.ID,
	}).Info("user report submitted")

	return r, nil
}

// ForLocation returns the reports for location in submission order.
func (b *Box) ForLocation(location string) []Report {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Report
	for _, r := range b.reports {
		if r.Location == location {
			out = append(out, r)
		}
	}
	return out
}
