// Package prom implements the metrics.Provider interface on top of
// Prometheus collectors, so cmdpool instruments export through a standard
// Prometheus registry.
package prom

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sheverev/cmdpool/metrics"
)

// defaultBuckets suit handoff latencies, which sit in the microsecond to
// low-millisecond range on a healthy pipeline.
var defaultBuckets = prometheus.ExponentialBuckets(1e-6, 10, 8)

// Provider builds Prometheus-backed instruments. Instruments are registered
// on first request by name and reused afterwards. Safe for concurrent use.
type Provider struct {
	reg       prometheus.Registerer
	namespace string
	buckets   []float64

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Option configures a Provider.
type Option func(*Provider)

// WithNamespace prefixes every collector name with ns.
func WithNamespace(ns string) Option {
	return func(p *Provider) { p.namespace = ns }
}

// WithBuckets overrides the histogram buckets (default: exponential from
// 1µs through tens of seconds).
func WithBuckets(buckets []float64) Option {
	return func(p *Provider) { p.buckets = buckets }
}

// New constructs a Provider registering collectors with reg. A nil reg falls
// back to the process-default registerer.
func New(reg prometheus.Registerer, opts ...Option) *Provider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Provider{
		reg:        reg,
		buckets:    defaultBuckets,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

var _ metrics.Provider = (*Provider)(nil)

// Counter returns a monotonic counter collector for name.
func (p *Provider) Counter(name string, opts ...metrics.InstrumentOption) metrics.Counter {
	cfg := buildConfig(opts)
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counters[name]
	if !ok {
		c = promauto.With(p.reg).NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      cfg.Description,
		})
		p.counters[name] = c
	}
	return counter{c}
}

// UpDownCounter returns a gauge collector for name.
func (p *Provider) UpDownCounter(name string, opts ...metrics.InstrumentOption) metrics.UpDownCounter {
	cfg := buildConfig(opts)
	p.mu.Lock()
	defer p.mu.Unlock()
	g, ok := p.gauges[name]
	if !ok {
		g = promauto.With(p.reg).NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      cfg.Description,
		})
		p.gauges[name] = g
	}
	return gauge{g}
}

// Histogram returns a histogram collector for name.
func (p *Provider) Histogram(name string, opts ...metrics.InstrumentOption) metrics.Histogram {
	cfg := buildConfig(opts)
	p.mu.Lock()
	defer p.mu.Unlock()
	h, ok := p.histograms[name]
	if !ok {
		h = promauto.With(p.reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      cfg.Description,
			Buckets:   p.buckets,
		})
		p.histograms[name] = h
	}
	return histogram{h}
}

func buildConfig(opts []metrics.InstrumentOption) metrics.InstrumentConfig {
	var cfg metrics.InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

type counter struct{ c prometheus.Counter }

// Add increments the counter. Prometheus counters are monotonic; negative
// deltas are ignored rather than allowed to panic the caller.
func (w counter) Add(n int64) {
	if n < 0 {
		return
	}
	w.c.Add(float64(n))
}

type gauge struct{ g prometheus.Gauge }

func (w gauge) Add(n int64) { w.g.Add(float64(n)) }

type histogram struct{ h prometheus.Histogram }

func (w histogram) Record(v float64) { w.h.Observe(v) }
