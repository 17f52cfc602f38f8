package metrics

import (
	"sync"
	"sync/atomic"
)

// InMemoryProvider is a concurrency-safe Provider that keeps all
// measurements in process memory. It is intended for tests, examples, and
// lightweight applications that want to inspect instrument values directly.
// Instruments are created on first request by name and reused afterwards.
type InMemoryProvider struct {
	mu         sync.RWMutex
	counters   map[string]*InMemoryCounter
	updowns    map[string]*InMemoryUpDownCounter
	histograms map[string]*InMemoryHistogram
	meta       map[string]InstrumentConfig
}

// NewInMemoryProvider constructs an empty InMemoryProvider.
func NewInMemoryProvider() *InMemoryProvider {
	return &InMemoryProvider{
		counters:   make(map[string]*InMemoryCounter),
		updowns:    make(map[string]*InMemoryUpDownCounter),
		histograms: make(map[string]*InMemoryHistogram),
		meta:       make(map[string]InstrumentConfig),
	}
}

// Counter returns the monotonic counter registered under name, creating it
// on first use.
func (p *InMemoryProvider) Counter(name string, opts ...InstrumentOption) Counter {
	p.mu.RLock()
	c, ok := p.counters[name]
	p.mu.RUnlock()
	if ok {
		return c
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok = p.counters[name]; ok {
		return c
	}
	p.meta[name] = applyOptions(opts)
	c = &InMemoryCounter{}
	p.counters[name] = c
	return c
}

// UpDownCounter returns the up/down counter registered under name, creating
// it on first use.
func (p *InMemoryProvider) UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter {
	p.mu.RLock()
	u, ok := p.updowns[name]
	p.mu.RUnlock()
	if ok {
		return u
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok = p.updowns[name]; ok {
		return u
	}
	p.meta[name] = applyOptions(opts)
	u = &InMemoryUpDownCounter{}
	p.updowns[name] = u
	return u
}

// Histogram returns the histogram registered under name, creating it on
// first use.
func (p *InMemoryProvider) Histogram(name string, opts ...InstrumentOption) Histogram {
	p.mu.RLock()
	h, ok := p.histograms[name]
	p.mu.RUnlock()
	if ok {
		return h
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if h, ok = p.histograms[name]; ok {
		return h
	}
	p.meta[name] = applyOptions(opts)
	h = &InMemoryHistogram{}
	p.histograms[name] = h
	return h
}

// CounterValue returns the current value of the named counter, or 0 if it
// was never created.
func (p *InMemoryProvider) CounterValue(name string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if c, ok := p.counters[name]; ok {
		return c.Value()
	}
	return 0
}

// UpDownValue returns the current value of the named up/down counter, or 0
// if it was never created.
func (p *InMemoryProvider) UpDownValue(name string) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if u, ok := p.updowns[name]; ok {
		return u.Value()
	}
	return 0
}

// HistogramSnapshot returns a snapshot of the named histogram, or a zero
// snapshot if it was never created.
func (p *InMemoryProvider) HistogramSnapshot(name string) HistSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if h, ok := p.histograms[name]; ok {
		return h.Snapshot()
	}
	return HistSnapshot{}
}

// InMemoryCounter is a thread-safe monotonic counter.
type InMemoryCounter struct {
	val atomic.Int64
}

// Add increments the counter by n.
func (c *InMemoryCounter) Add(n int64) { c.val.Add(n) }

// Value returns the current value.
func (c *InMemoryCounter) Value() int64 { return c.val.Load() }

// InMemoryUpDownCounter is a thread-safe up/down counter.
type InMemoryUpDownCounter struct {
	val atomic.Int64
}

// Add adds n (positive or negative) to the current value.
func (u *InMemoryUpDownCounter) Add(n int64) { u.val.Add(n) }

// Value returns the current value.
func (u *InMemoryUpDownCounter) Value() int64 { return u.val.Load() }

// InMemoryHistogram tracks count, sum, min, and max of recorded values.
// It keeps no buckets; it is a lightweight aggregator for assertions.
type InMemoryHistogram struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Record adds a measurement.
func (h *InMemoryHistogram) Record(v float64) {
	h.mu.Lock()
	if h.count == 0 {
		h.min, h.max = v, v
	} else {
		if v < h.min {
			h.min = v
		}
		if v > h.max {
			h.max = v
		}
	}
	h.count++
	h.sum += v
	h.mu.Unlock()
}

// HistSnapshot is an immutable view of an InMemoryHistogram.
type HistSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Snapshot returns the histogram state at the time of call.
func (h *InMemoryHistogram) Snapshot() HistSnapshot {
	h.mu.Lock()
	s := HistSnapshot{Count: h.count, Sum: h.sum, Min: h.min, Max: h.max}
	h.mu.Unlock()
	if s.Count > 0 {
		s.Mean = s.Sum / float64(s.Count)
	}
	return s
}
