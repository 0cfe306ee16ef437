// file: internal/metrics/metrics.go

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution roots reported on rules_merge_files_total.
const (
	RootBuild  = "build"
	RootSource = "source"
)

// Metrics collects counters for a single merge run. Nothing is served over
// HTTP; the snapshot is written for a node_exporter textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	filesTotal    *prometheus.CounterVec
	sectionsTotal prometheus.Gauge
	bytesWritten  prometheus.Counter
	duration      prometheus.Gauge
}

// NewMetrics creates a new metrics instance with all collectors registered
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		registry: registry,

		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rules_merge_files_total",
				Help: "Total number of fragment files merged by resolution root",
			},
			[]string{"root"},
		),
		sectionsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "rules_merge_sections_total",
				Help: "Number of non-empty sections written",
			},
		),
		bytesWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rules_merge_bytes_written_total",
				Help: "Total number of bytes written to the merged output",
			},
		),
		duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "rules_merge_duration_seconds",
				Help: "Wall time of the last merge",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.filesTotal,
		m.sectionsTotal,
		m.bytesWritten,
		m.duration,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

// IncFiles counts one resolved fragment under the given root.
func (m *Metrics) IncFiles(root string) {
	m.filesTotal.WithLabelValues(root).Inc()
}

func (m *Metrics) SetSections(n int) {
	m.sectionsTotal.Set(float64(n))
}

func (m *Metrics) AddBytes(n int64) {
	m.bytesWritten.Add(float64(n))
}

func (m *Metrics) ObserveDuration(d time.Duration) {
	m.duration.Set(d.Seconds())
}

// WriteTextfile writes the registry in Prometheus text format to path,
// replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
