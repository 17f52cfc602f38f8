package cmdpool

import (
	"sync"
	"time"

	"github.com/sheverev/cmdpool/metrics"
)

// entry wraps a pending value with its enqueue time so the channel can
// measure producer-to-consumer handoff latency.
type entry[T any] struct {
	value      T
	enqueuedAt time.Time
}

// Channel is an order-preserving, condition-signaled handoff queue between
// one or more producers and any number of consumers.
// Methods are safe for concurrent use.
//
// A Channel must be created with NewChannel and must not be copied.
type Channel[T any] struct {
	// noCopy prevents accidental copying of the channel.
	//go:nocopy
	nc noCopy

	mu      sync.Mutex
	cond    *sync.Cond
	pending []entry[T]
	stopped bool

	// capacity bounds pending; zero means unbounded.
	capacity uint

	inst channelInstruments
}

type channelInstruments struct {
	submitted   metrics.Counter
	delivered   metrics.Counter
	droppedStop metrics.Counter
	droppedFull metrics.Counter
	depth       metrics.UpDownCounter
	handoff     metrics.Histogram
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
// It works with the "-copylocks" analyzer via the presence of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewChannel creates a Channel using functional options.
// The channel is unbounded unless WithCapacity is given.
func NewChannel[T any](opts ...Option) (*Channel[T], error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	c := &Channel[T]{capacity: cfg.Capacity}
	c.cond = sync.NewCond(&c.mu)
	c.inst = channelInstruments{
		submitted: cfg.Metrics.Counter("channel_submitted_total",
			metrics.WithDescription("values accepted by Submit"), metrics.WithUnit("1")),
		delivered: cfg.Metrics.Counter("channel_delivered_total",
			metrics.WithDescription("values handed to a consumer by Take"), metrics.WithUnit("1")),
		droppedStop: cfg.Metrics.Counter("channel_dropped_after_stop_total",
			metrics.WithDescription("values submitted after Stop and discarded"), metrics.WithUnit("1")),
		droppedFull: cfg.Metrics.Counter("channel_dropped_full_total",
			metrics.WithDescription("values discarded because the capacity bound was reached"), metrics.WithUnit("1")),
		depth: cfg.Metrics.UpDownCounter("channel_depth",
			metrics.WithDescription("values currently pending"), metrics.WithUnit("1")),
		handoff: cfg.Metrics.Histogram("channel_handoff_seconds",
			metrics.WithDescription("time between Submit and Take per value"), metrics.WithUnit("seconds")),
	}
	return c, nil
}

// Submit appends v to the pending sequence and wakes one blocked Take.
//
// Submit never blocks beyond the channel's internal critical section:
//   - After Stop, the value is silently discarded. Producers may race the
//     shutdown signal; that race is expected and is not an error.
//   - On a capacity-bounded channel that is full, the value is discarded
//     and counted rather than blocking the producer.
func (c *Channel[T]) Submit(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		c.inst.droppedStop.Add(1)
		return
	}
	if c.capacity > 0 && uint(len(c.pending)) >= c.capacity {
		c.inst.droppedFull.Add(1)
		return
	}

	c.pending = append(c.pending, entry[T]{value: v, enqueuedAt: time.Now()})
	c.inst.submitted.Add(1)
	c.inst.depth.Add(1)
	c.cond.Signal()
}

// Take blocks until a value is available or the channel is stopped and
// drained. It removes and returns the head of the pending sequence with
// more = true, preserving submission order. Once the channel is stopped and
// empty it returns the zero value with more = false; that is the sole
// termination signal for a consumption loop.
func (c *Channel[T]) Take() (value T, more bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Wait predicate: stopped || non-empty. Loop re-checks after every
	// wakeup, spurious or not.
	for !c.stopped && len(c.pending) == 0 {
		c.cond.Wait()
	}

	if len(c.pending) == 0 {
		// stopped and drained
		return value, false
	}

	head := c.pending[0]
	c.pending[0] = entry[T]{} // release the slot for GC
	c.pending = c.pending[1:]

	c.inst.depth.Add(-1)
	c.inst.delivered.Add(1)
	c.inst.handoff.Record(time.Since(head.enqueuedAt).Seconds())

	return head.value, true
}

// Stop marks the channel as terminated and wakes every blocked Take.
// All pending values remain removable; once they are drained, Take reports
// more = false. Stop is idempotent and the transition never reverts.
//
// A broadcast is required here: all consumers may be blocked simultaneously
// and every one of them must observe the stop.
func (c *Channel[T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	c.cond.Broadcast()
}

// Stopped reports whether Stop has been called.
func (c *Channel[T]) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Len returns the number of pending values. The value is a point-in-time
// snapshot and may be stale by the time the caller observes it.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
