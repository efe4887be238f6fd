package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "rsvpportal"
	metricsSubsystem = "cache"
	labelStore       = "store"
)

// Metrics counts cache hits, misses and fetch failures per store. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	hits    *prometheus.CounterVec
	misses  *prometheus.CounterVec
	errors  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics creates the cache collectors and registers them on reg when reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "hits_total",
			Help:      "Number of reads served from a fresh cache entry",
		}, []string{labelStore}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "misses_total",
			Help:      "Number of reads that required a remote fetch",
		}, []string{labelStore}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "errors_total",
			Help:      "Number of failed remote fetches",
		}, []string{labelStore}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "fetch_duration_seconds",
			Help:      "Distribution of remote fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{labelStore}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.errors, m.latency)
	}
	return m
}

func (m *Metrics) hit(store string) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(store).Inc()
}

func (m *Metrics) miss(store string) {
	if m == nil {
		return
	}
	m.misses.WithLabelValues(store).Inc()
}

func (m *Metrics) fail(store string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(store).Inc()
}

func (m *Metrics) observe(store string, begin time.Time) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(store).Observe(time.Since(begin).Seconds())
}
