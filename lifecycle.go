package cmdpool

import "sync"

// Outcome tags how a pool's lifetime ended, so orchestrators and tests can
// assert on the shutdown path deterministically instead of parsing logs.
type Outcome int

const (
	// OutcomeJoined means every worker was waited for before release.
	OutcomeJoined Outcome = iota
	// OutcomeDetached means the pool was released without a prior Join and
	// its workers were abandoned to finish on their own.
	OutcomeDetached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeJoined:
		return "joined"
	case OutcomeDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// shutdownSequence encapsulates the contractual shutdown order for one
// channel/pool pair. It is a wiring helper: it owns neither component, it
// only orders the steps. The sequence executes exactly once; concurrent
// callers of run block until the first execution finishes and then observe
// the same outcome.
type shutdownSequence struct {
	stop     func()
	join     func()
	teardown func() Outcome

	once    sync.Once
	outcome Outcome
}

func newShutdownSequence(stop, join func(), teardown func() Outcome) *shutdownSequence {
	return &shutdownSequence{stop: stop, join: join, teardown: teardown}
}

// run executes the shutdown sequence exactly once:
// 1) stop the channel so no further values are accepted and blocked
//    consumers wake,
// 2) join the pool so no worker is still touching the channel or shared
//    state,
// 3) tear the pool down, recording the outcome.
func (s *shutdownSequence) run() Outcome {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop()
		}
		if s.join != nil {
			s.join()
		}
		if s.teardown != nil {
			s.outcome = s.teardown()
		}
	})
	return s.outcome
}

// Shutdown runs the required shutdown sequence for ch and p: Stop, Join,
// Teardown. After it returns the caller may discard ch and any shared state
// the pool's consumer touched. The returned Outcome is OutcomeJoined on this
// path; it exists so callers keep a single teardown result type whether they
// shut down through Shutdown or by hand.
func Shutdown[T any](ch *Channel[T], p *Pool[T]) Outcome {
	return newShutdownSequence(ch.Stop, p.Join, p.Teardown).run()
}
