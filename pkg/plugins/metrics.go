package plugins

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the registry's Prometheus metrics.
type Metrics struct {
	LoadsTotal    *prometheus.CounterVec
	UnloadsTotal  prometheus.Counter
	LoadDuration  prometheus.Histogram
	PluginsLive   prometheus.Gauge
	LibrariesLive prometheus.Gauge
}

// NewMetrics creates and registers the registry metrics.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plugforge_plugin_loads_total",
				Help: "Total number of plugin load attempts",
			},
			[]string{"result"},
		),
		UnloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "plugforge_plugin_unloads_total",
				Help: "Total number of plugin unload hooks fired",
			},
		),
		LoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "plugforge_plugin_load_duration_seconds",
				Help:    "Plugin load duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		PluginsLive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "plugforge_plugins_live",
				Help: "Number of live plugin instances",
			},
		),
		LibrariesLive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "plugforge_libraries_live",
				Help: "Number of registered plugin library handles",
			},
		),
	}

	registry.MustRegister(
		m.LoadsTotal,
		m.UnloadsTotal,
		m.LoadDuration,
		m.PluginsLive,
		m.LibrariesLive,
	)

	return m
}

func (m *Metrics) observeLoad(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.LoadsTotal.WithLabelValues(result).Inc()
	m.LoadDuration.Observe(d.Seconds())
}

func (m *Metrics) observeUnload() {
	if m == nil {
		return
	}
	m.UnloadsTotal.Inc()
}

func (m *Metrics) setLive(plugins, libraries int) {
	if m == nil {
		return
	}
	m.PluginsLive.Set(float64(plugins))
	m.LibrariesLive.Set(float64(libraries))
}
