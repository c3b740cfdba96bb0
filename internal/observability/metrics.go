package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for sounding cycles.
type Metrics struct {
	Cycles         *prometheus.CounterVec // labels: outcome={success,extract_error,transform_error,load_error}
	FixesLoaded    prometheus.Counter
	ReadingsLoaded prometheus.Counter
	CycleDuration  prometheus.Histogram

	// Profile quality.
	UnbracketedLevels prometheus.Gauge
	TempZonesFilled   prometheus.Gauge

	// Delivery.
	Loads *prometheus.CounterVec // labels: loader, outcome={success,error}
}

// NewMetrics creates and registers all cycle metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Cycles,
		m.FixesLoaded,
		m.ReadingsLoaded,
		m.CycleDuration,
		m.UnbracketedLevels,
		m.TempZonesFilled,
		m.Loads,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "cycles_total",
			Help:      "Computation cycles by outcome.",
		}, []string{"outcome"}),
		FixesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "fixes_loaded_total",
			Help:      "Radar tracking fixes read from the wind input.",
		}),
		ReadingsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "readings_loaded_total",
			Help:      "Temperature channel readings read from the temperature input.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sounding",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete extract-compute-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		UnbracketedLevels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sounding",
			Name:      "unbracketed_levels",
			Help:      "Actual report levels of the last cycle left without interpolated wind.",
		}),
		TempZonesFilled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sounding",
			Name:      "temp_zones_filled",
			Help:      "Temperature zones of the last cycle that received at least one reading.",
		}),
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "loads_total",
			Help:      "Profile deliveries by loader and outcome.",
		}, []string{"loader", "outcome"}),
	}
}

// WriteTextfile dumps the default registry in the text exposition format for
// the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
