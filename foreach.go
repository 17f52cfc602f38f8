package cmdpool

// ForEach applies fn to every value in values using size worker goroutines
// pulling from a freshly built channel, then runs the full shutdown
// sequence. It returns only construction errors; fn application is
// infallible by contract (wrap errors into the values if callers need them).
//
// Values are delivered exactly once across the workers, in submission order
// per the channel's FIFO guarantee; the order in which workers apply them is
// not coordinated. A WithCapacity bound applies here too and may drop values
// when producers outrun the workers; leave the channel unbounded for strict
// exactly-once batches.
func ForEach[T any](size uint, values []T, fn func(T), opts ...Option) error {
	ch, err := NewChannel[T](opts...)
	if err != nil {
		return err
	}
	p, err := NewPool(size, ch, NewDrainConsumer(fn), opts...)
	if err != nil {
		return err
	}

	p.Start()
	for _, v := range values {
		ch.Submit(v)
	}
	Shutdown(ch, p)
	return nil
}
