// Package metrics exports search statistics to Prometheus.
//
// A Collector implements search.Observer; pass it to any search call with
// search.WithObserver and every finished search is counted.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tollway/search"
)

// ErrNilRegisterer is returned by NewCollector when reg is nil.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Outcome label values.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
)

// Collector holds the search metric vectors. All methods are safe for
// concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	reopened *prometheus.CounterVec
	settled  *prometheus.HistogramVec
	relaxed  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewCollector creates the search metrics under namespace and registers them
// with reg. Registration failures (e.g. a second collector with the same
// namespace on one registry) are returned wrapped.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by mode and outcome",
		}, []string{"mode", "outcome"}),
		reopened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reopened_states_total",
			Help:      "Settled states improved again (inconsistent heuristic)",
		}, []string{"mode"}),
		settled: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settled_states",
			Help:      "Queue extractions per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"mode"}),
		relaxed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "relaxations",
			Help:      "Successful relaxations per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"mode"}),
	}

	for _, col := range []prometheus.Collector{c.searches, c.reopened, c.settled, c.relaxed, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSearch records one finished search.
func (c *Collector) ObserveSearch(s search.Stats) {
	mode := string(s.Mode)
	outcome := OutcomeUnreachable
	if s.Found {
		outcome = OutcomeFound
	}

	c.searches.WithLabelValues(mode, outcome).Inc()
	if s.Reopened > 0 {
		c.reopened.WithLabelValues(mode).Add(float64(s.Reopened))
	}
	c.settled.WithLabelValues(mode).Observe(float64(s.Settled))
	c.relaxed.WithLabelValues(mode).Observe(float64(s.Relaxed))
	c.duration.WithLabelValues(mode).Observe(s.Duration.Seconds())
}

var _ search.Observer = (*Collector)(nil)
