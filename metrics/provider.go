// Package metrics defines the instrument-provider abstraction cmdpool
// records its observability signals through, with a no-op default, an
// in-memory implementation for tests, and a Prometheus-backed implementation
// in the prom subpackage.
package metrics

// Provider constructs instruments used to record measurements.
// Implementations must be safe for concurrent use and must return the same
// instrument for repeated requests of the same name.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts. Safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move up and down, e.g. queue depth.
// Safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, e.g. handoff
// latency in seconds. Safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries advisory instrument metadata. Implementations may
// ignore it.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g. "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

// applyOptions builds InstrumentConfig from options.
func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
