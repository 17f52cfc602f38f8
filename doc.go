// Package cmdpool provides a thread-safe command channel and a fixed-size
// worker pool for handing discrete command values from a latency-sensitive
// producer to a set of consumer goroutines.
//
// Components
//   - Channel: an order-preserving, condition-signaled queue with blocking
//     removal and a one-shot stop signal. Submit never blocks the producer;
//     Take blocks until a value is available or the channel is stopped and
//     drained.
//   - Pool: a fixed set of goroutines, each running one Consumer against the
//     same Channel. Start launches them, Join waits for all of them,
//     Teardown reports whether the pool was joined cleanly or had to be
//     detached.
//
// Shutdown contract
// The orchestrator owns the sequence: Channel.Stop, then Pool.Join, and only
// after Join returns may the channel or any state the consumer touches be
// discarded. Shutdown wraps that sequence. Submitting after Stop is an
// expected race between producer and shutdown and is silently dropped; it is
// never an error.
//
// Defaults
// Unless overridden, a new Channel is unbounded and both Channel and Pool
// use a no-op metrics provider and the process-default slog logger.
package cmdpool
