// Package metrics exposes frame loop counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one frame loop, registered on a private
// registry.
type Metrics struct {
	registry *prometheus.Registry

	framesTotal   prometheus.Counter
	fillDuration  prometheus.Histogram
	fps           prometheus.Gauge
	bufferBytes   prometheus.Gauge
	eventsTotal   *prometheus.CounterVec
	snapshotTotal prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		framesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pixelplay_frames_total",
			Help: "Total number of frames produced",
		}),
		fillDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pixelplay_fill_duration_seconds",
			Help:    "Time spent randomizing the buffer per frame",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		fps: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pixelplay_fps",
			Help: "Frames per second measured over the last frame",
		}),
		bufferBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pixelplay_buffer_bytes",
			Help: "Size of the owned pixel buffer in bytes",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pixelplay_input_events_total",
			Help: "Input events handled by the frame loop",
		}, []string{"event"}),
		snapshotTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pixelplay_snapshots_total",
			Help: "Frame snapshots served",
		}),
	}
}

func (m *Metrics) RecordFrame(fill time.Duration, fps float64) {
	m.framesTotal.Inc()
	m.fillDuration.Observe(fill.Seconds())
	m.fps.Set(fps)
}

func (m *Metrics) SetBufferBytes(n uint32) { m.bufferBytes.Set(float64(n)) }

func (m *Metrics) RecordEvent(event string) { m.eventsTotal.WithLabelValues(event).Inc() }

func (m *Metrics) RecordSnapshot() { m.snapshotTotal.Inc() }

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
