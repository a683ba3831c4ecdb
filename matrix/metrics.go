// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type engineMetrics struct {
	multiplies *prometheus.CounterVec // by outcome
	products   prometheus.Counter
	baseCases  prometheus.Counter
	paddings   *prometheus.CounterVec // by padding kind
	duration   prometheus.Histogram
}

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

func newEngineMetrics(reg prometheus.Registerer) *engineMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &engineMetrics{
		multiplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strassen",
			Name:      "multiplies_total",
			Help:      "Top-level Strassen multiplications by outcome.",
		}, []string{"outcome"}),
		products: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strassen",
			Name:      "products_total",
			Help:      "Recursive half-size products computed (seven per split level).",
		}),
		baseCases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "strassen",
			Name:      "base_cases_total",
			Help:      "Products delegated to direct multiplication at or below the cutoff.",
		}),
		paddings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strassen",
			Name:      "paddings_total",
			Help:      "Odd-dimension paddings applied before a split, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "strassen",
			Name:      "multiply_duration_seconds",
			Help:      "Wall time of top-level Strassen multiplications.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	m.multiplies = registerOrReuse(reg, m.multiplies)
	m.products = registerOrReuse(reg, m.products)
	m.baseCases = registerOrReuse(reg, m.baseCases)
	m.paddings = registerOrReuse(reg, m.paddings)
	m.duration = registerOrReuse(reg, m.duration)

	return m
}

// registerOrReuse registers c, or returns the collector already registered
// under the same descriptor. Any other registration error panics, as
// MustRegister would.
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}
