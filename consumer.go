package cmdpool

// Consumer consumes a channel to completion. A Pool runs Consume exactly once
// per worker goroutine; the implementation is expected to loop on Take until
// it reports more = false and to apply each value through the shared state's
// own synchronization. The pool imposes no loop structure of its own.
type Consumer[T any] interface {
	Consume(ch *Channel[T])
}

// ConsumerFunc adapts a plain function to the Consumer interface.
type ConsumerFunc[T any] func(ch *Channel[T])

func (f ConsumerFunc[T]) Consume(ch *Channel[T]) { f(ch) }

// Drain is the canonical consumption loop: it removes values from ch in
// order and applies each one until the channel is stopped and empty.
// Use it directly as a Consumer via NewDrainConsumer, or call it from a
// custom Consume implementation.
func Drain[T any](ch *Channel[T], apply func(T)) {
	for {
		v, more := ch.Take()
		if !more {
			return
		}
		apply(v)
	}
}

// NewDrainConsumer returns a Consumer that runs Drain with the given apply
// function.
func NewDrainConsumer[T any](apply func(T)) Consumer[T] {
	return ConsumerFunc[T](func(ch *Channel[T]) { Drain(ch, apply) })
}
