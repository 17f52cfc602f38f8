package cmdpool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "joined", OutcomeJoined.String())
	require.Equal(t, "detached", OutcomeDetached.String())
	require.Equal(t, "unknown", Outcome(99).String())
}

func TestShutdownSequence_Order(t *testing.T) {
	steps := make(chan string, 3)

	s := newShutdownSequence(
		func() { steps <- "stop" },
		func() { steps <- "join" },
		func() Outcome { steps <- "teardown"; return OutcomeJoined },
	)

	require.Equal(t, OutcomeJoined, s.run())

	for _, want := range []string{"stop", "join", "teardown"} {
		select {
		case got := <-steps:
			require.Equal(t, want, got)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("missing step %q", want)
		}
	}
}

func TestShutdownSequence_RunsOnce(t *testing.T) {
	var stops, joins int
	s := newShutdownSequence(
		func() { stops++ },
		func() { joins++ },
		func() Outcome { return OutcomeJoined },
	)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := s.run()
			if got != OutcomeJoined {
				t.Errorf("unexpected outcome: %v", got)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, stops, "stop must execute exactly once")
	require.Equal(t, 1, joins, "join must execute exactly once")
}

func TestShutdown_EndToEnd(t *testing.T) {
	ch, err := NewChannel[int]()
	require.NoError(t, err)

	var mu sync.Mutex
	applied := 0

	p, err := NewPool[int](4, ch, NewDrainConsumer(func(int) {
		mu.Lock()
		applied++
		mu.Unlock()
	}))
	require.NoError(t, err)

	p.Start()
	for i := 0; i < 50; i++ {
		ch.Submit(i)
	}

	outcome := Shutdown(ch, p)
	require.Equal(t, OutcomeJoined, outcome)
	require.True(t, ch.Stopped())
	require.True(t, p.Joined())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 50, applied, "every value submitted before Stop must be applied")
}
