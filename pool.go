package cmdpool

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/errorc"

	"github.com/sheverev/cmdpool/metrics"
)

// Pool owns a fixed set of worker goroutines, each running one Consumer
// against the same Channel. Construction is side-effect-free; no goroutine
// exists until Start. Methods are safe for concurrent use.
//
// The orchestrator must run the shutdown sequence in order: stop the
// channel, Join the pool, and only then discard the channel or any state the
// consumer touches. Join returning is the guarantee that no worker goroutine
// launched by this pool is still running.
type Pool[T any] struct {
	// noCopy prevents accidental copying of the pool.
	//go:nocopy
	nc noCopy

	size     uint
	channel  *Channel[T]
	consumer Consumer[T]

	startOnce sync.Once
	joinOnce  sync.Once

	started atomic.Bool
	joined  atomic.Bool

	wg sync.WaitGroup

	logger *slog.Logger

	active metrics.UpDownCounter
}

// NewPool creates a Pool of size worker goroutines bound to ch and consumer.
// size must be > 0; ch and consumer must be non-nil. Nothing starts until
// Start is called, so the orchestrator fully controls when execution begins.
func NewPool[T any](size uint, ch *Channel[T], consumer Consumer[T], opts ...Option) (*Pool[T], error) {
	if size == 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "NewPool requires size > 0"))
	}
	if ch == nil {
		return nil, ErrNilChannel
	}
	if consumer == nil {
		return nil, ErrNilConsumer
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Pool[T]{
		size:     size,
		channel:  ch,
		consumer: consumer,
		logger:   cfg.logger(),
		active: cfg.Metrics.UpDownCounter("pool_workers_active",
			metrics.WithDescription("worker goroutines currently running"), metrics.WithUnit("1")),
	}, nil
}

// Size returns the fixed worker count chosen at construction.
func (p *Pool[T]) Size() uint { return p.size }

// Start launches exactly Size worker goroutines, each invoking the consumer
// once for its entire lifetime. Start is idempotent; only the first call
// launches anything.
func (p *Pool[T]) Start() {
	p.startOnce.Do(func() {
		p.wg.Add(int(p.size))
		for i := uint(0); i < p.size; i++ {
			go p.run()
		}
		p.started.Store(true)
	})
}

// run is the body of one worker goroutine.
func (p *Pool[T]) run() {
	defer p.wg.Done()
	p.active.Add(1)
	defer p.active.Add(-1)
	p.consumer.Consume(p.channel)
}

// Join blocks until every worker goroutine has returned from its consumer
// invocation. It is idempotent: concurrent and repeated calls all return
// once the first join completes, and a call after a completed join returns
// immediately. After Join returns, no goroutine launched by this pool is
// running, so the orchestrator may safely discard the channel and any shared
// state the consumer touched.
//
// Join on a never-started pool returns immediately: there is nothing to
// wait for, and the started/joined accounting still transitions so a later
// Teardown reports a clean outcome.
func (p *Pool[T]) Join() {
	p.joinOnce.Do(func() {
		p.wg.Wait()
		p.joined.Store(true)
	})
}

// Joined reports whether Join has completed.
func (p *Pool[T]) Joined() bool { return p.joined.Load() }

// Teardown releases the pool and reports how. It models end-of-life for the
// pool object:
//   - If Join has completed (or the pool never started), workers are known
//     to be finished and Teardown returns OutcomeJoined.
//   - Otherwise the orchestrator violated the shutdown contract. Teardown
//     must not block here: the channel or shared state may already be
//     partially discarded, so joining is unsafe. The workers are abandoned
//     to run to completion untracked, a diagnostic is logged, and
//     OutcomeDetached is returned.
//
// Teardown never panics and never escalates misuse to a crash.
func (p *Pool[T]) Teardown() Outcome {
	if p.joined.Load() || !p.started.Load() {
		return OutcomeJoined
	}

	p.logger.Warn(Namespace+": pool torn down without Join; detaching workers",
		slog.Uint64("workers", uint64(p.size)))
	return OutcomeDetached
}
