package performance

import (
	"fmt"
	"sync"
	"time"
)

// Tracker manages performance markers and provides metrics aggregation
type Tracker struct {
	markers map[string]*Marker // Active and completed markers by unique ID
	order   []string           // Marker IDs in creation order, for bounded retention
	mu      sync.RWMutex       // Protects concurrent access
	started time.Time          // When tracking started
	config  *TrackerConfig     // Tracker configuration
	counter uint64             // Monotonic marker counter
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers int `json:"maxMarkers"` // Maximum number of markers to retain
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers: 10000,
	}
}

// NewTracker creates a performance tracker with the given configuration
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}

	return &Tracker{
		markers: make(map[string]*Marker),
		config:  config,
		started: time.Now(),
	}
}

// StartOperation begins tracking a new operation and returns its marker
func (t *Tracker) StartOperation(operation, siteID string) *Marker {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counter++
	id := fmt.Sprintf("%s-%s-%d", operation, siteID, t.counter)

	marker := &Marker{
		Operation: operation,
		SiteID:    siteID,
		StartTime: time.Now(),
		Success:   true,
	}

	t.markers[id] = marker
	t.order = append(t.order, id)

	// Bounded retention, oldest first
	if len(t.order) > t.config.MaxMarkers {
		evict := t.order[0]
		t.order = t.order[1:]
		delete(t.markers, evict)
	}

	return marker
}

// GetMetrics returns a copy of all completed markers for a site
func (t *Tracker) GetMetrics(siteID string) []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []Marker
	for _, id := range t.order {
		marker := t.markers[id]
		if marker.SiteID == siteID && marker.Completed {
			result = append(result, *marker)
		}
	}
	return result
}

// GetRecentMetrics returns completed markers for a site within the given window
func (t *Tracker) GetRecentMetrics(siteID string, within time.Duration) []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cutoff := time.Now().Add(-within)
	var result []Marker
	for _, id := range t.order {
		marker := t.markers[id]
		if marker.SiteID == siteID && marker.Completed && marker.EndTime.After(cutoff) {
			result = append(result, *marker)
		}
	}
	return result
}

// Uptime reports how long the tracker has been running
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
