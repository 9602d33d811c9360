package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/2beens/workoutworks/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultTrackerCapacity  = 100
	DefaultTrackerWindow    = 10 * time.Second
	DefaultTrackerThreshold = 10

	statsSourcesCount = 10
	burstSourcesCount = 5
)

type TrackerStats struct {
	Total   int      `json:"total"`
	Recent  int      `json:"recent"`
	Sources []string `json:"sources"`
}

// RequestTracker remembers the latest auth requests and warns when too many
// of them land within a short window.
type RequestTracker struct {
	mutex          sync.Mutex
	capacity       int
	window         time.Duration
	threshold      int
	total          int
	times          []time.Time
	sources        []string
	metricsManager *metrics.Manager
	// injectable clock, for tests
	Now func() time.Time
}

func NewRequestTracker(capacity int, window time.Duration, threshold int, metricsManager *metrics.Manager) *RequestTracker {
	if capacity <= 0 {
		capacity = DefaultTrackerCapacity
	}
	return &RequestTracker{
		capacity:       capacity,
		window:         window,
		threshold:      threshold,
		times:          make([]time.Time, 0, capacity),
		sources:        make([]string, 0, capacity),
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

func NewDefaultRequestTracker(metricsManager *metrics.Manager) *RequestTracker {
	return NewRequestTracker(DefaultTrackerCapacity, DefaultTrackerWindow, DefaultTrackerThreshold, metricsManager)
}

// Track records one request from source and returns the total seen so far.
func (t *RequestTracker) Track(source string) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.Now()
	t.total++
	t.times = append(t.times, now)
	t.sources = append(t.sources, source)
	if len(t.times) > t.capacity {
		t.times = t.times[1:]
		t.sources = t.sources[1:]
	}

	if t.metricsManager != nil {
		t.metricsManager.CounterAuthRequests.Inc()
	}

	if recent := t.recentLocked(now); recent > t.threshold {
		log.Warnf("high auth request frequency detected: %d requests in the last %s", recent, t.window)
		log.Warnf("last %d sources: %s", burstSourcesCount, strings.Join(lastN(t.sources, burstSourcesCount), ", "))
		if t.metricsManager != nil {
			t.metricsManager.CounterAuthRequestBursts.Inc()
		}
	}

	return t.total
}

func (t *RequestTracker) Stats() TrackerStats {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return TrackerStats{
		Total:   t.total,
		Recent:  t.recentLocked(t.Now()),
		Sources: append([]string{}, lastN(t.sources, statsSourcesCount)...),
	}
}

func (t *RequestTracker) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.total = 0
	t.times = t.times[:0]
	t.sources = t.sources[:0]
}

func (t *RequestTracker) recentLocked(now time.Time) int {
	recent := 0
	for _, ts := range t.times {
		if now.Sub(ts) < t.window {
			recent++
		}
	}
	return recent
}

func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
