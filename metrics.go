package pmclient

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a gateway counter.
type MetricID uint16

const (
	// MetricRequests counts every request the gateway dispatched.
	MetricRequests MetricID = iota
	// MetricRequestFailures counts requests that ended in a non-2xx response
	// or a transport error, after any redirect retry.
	MetricRequestFailures
	// MetricRetriedRedirects counts 301/302/307 responses retried with the
	// bearer reattached.
	MetricRetriedRedirects
	// MetricUnauthorized counts 401 responses (each one also cleared the
	// persisted credential).
	MetricUnauthorized
	// MetricTokenMissing counts requests dispatched without a persisted token.
	MetricTokenMissing
	// MetricRequestLatency indexes the request-duration histogram.
	MetricRequestLatency
	metricIDCount
)

const histBucketCount = 8

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

// Metrics holds lock-free gateway counters plus a request-latency histogram.
// The zero value is disabled; all methods are nil-safe.
type Metrics struct {
	enabled    bool
	counters   [metricIDCount]uint64
	histograms [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

func newMetrics() *Metrics {
	return &Metrics{enabled: true}
}

func (m *Metrics) inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id], 1)
}

func (m *Metrics) observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || id != MetricRequestLatency {
		return
	}
	atomic.AddUint64(&m.histograms[id].buckets[bucketIndex(d)], 1)
}

// Value reads a single counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id])
}

// Snapshot copies every counter and the latency histogram.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}
	if m == nil || !m.enabled {
		return s
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id])
	}

	buckets := make([]uint64, histBucketCount)
	for i := 0; i < histBucketCount; i++ {
		buckets[i] = atomic.LoadUint64(&m.histograms[MetricRequestLatency].buckets[i])
	}
	s.Histograms[MetricRequestLatency] = buckets
	return s
}

// Bucket upper bounds: 5/10/25/50/100/250/500ms, then overflow.
func bucketIndex(d time.Duration) int {
	ms := d.Milliseconds()

	switch {
	case ms <= 5:
		return 0
	case ms <= 10:
		return 1
	case ms <= 25:
		return 2
	case ms <= 50:
		return 3
	case ms <= 100:
		return 4
	case ms <= 250:
		return 5
	case ms <= 500:
		return 6
	default:
		return 7
	}
}
