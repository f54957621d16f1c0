package prom

import (
	"time"

	"garden-assets/core/assets"

	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements assets.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	failures  *prometheus.CounterVec
	fallbacks prometheus.Counter
	exhausted prometheus.Counter
	loadTime  prometheus.Histogram
	entries   prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cache_hits_total",
			Help:        "Model cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cache_misses_total",
			Help:        "Model cache misses",
			ConstLabels: constLabels,
		}),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "attempt_failures_total",
				Help:        "Failed load attempts by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "fallbacks_total",
			Help:        "Placeholder models served after exhausted retries",
			ConstLabels: constLabels,
		}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "failures_total",
			Help:        "Loads that failed with fallbacks disabled",
			ConstLabels: constLabels,
		}),
		loadTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "load_duration_seconds",
			Help:        "Time to load a model that was not cached, retries included",
			Buckets:     prometheus.ExponentialBuckets(0.01, 2, 12),
			ConstLabels: constLabels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cache_entries",
			Help:        "Number of cached models",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.failures, a.fallbacks, a.exhausted, a.loadTime, a.entries)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// AttemptFailed increments the attempt failure counter with a reason label.
func (a *Adapter) AttemptFailed(timeout bool) {
	a.failures.WithLabelValues(reason(timeout)).Inc()
}

// Fallback increments the fallback counter.
func (a *Adapter) Fallback() { a.fallbacks.Inc() }

// Failure increments the exhausted-load counter.
func (a *Adapter) Failure() { a.exhausted.Inc() }

// Loaded observes the duration of a successful uncached load.
func (a *Adapter) Loaded(d time.Duration) { a.loadTime.Observe(d.Seconds()) }

// Size updates the cache entries gauge.
func (a *Adapter) Size(entries int) { a.entries.Set(float64(entries)) }

func reason(timeout bool) string {
	if timeout {
		return "timeout"
	}
	return "error"
}

// Compile-time check: ensure Adapter implements assets.Metrics.
var _ assets.Metrics = (*Adapter)(nil)
