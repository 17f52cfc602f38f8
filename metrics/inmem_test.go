package metrics

import (
	"sync"
	"testing"
)

func TestInMemoryProvider_InstrumentsAreReusedByName(t *testing.T) {
	p := NewInMemoryProvider()

	c1 := p.Counter("ops")
	c2 := p.Counter("ops")
	if c1 != c2 {
		t.Fatalf("expected the same counter instance for the same name")
	}

	u1 := p.UpDownCounter("depth")
	u2 := p.UpDownCounter("depth")
	if u1 != u2 {
		t.Fatalf("expected the same updown instance for the same name")
	}

	h1 := p.Histogram("latency")
	h2 := p.Histogram("latency")
	if h1 != h2 {
		t.Fatalf("expected the same histogram instance for the same name")
	}
}

func TestInMemoryProvider_CounterAndUpDown(t *testing.T) {
	p := NewInMemoryProvider()

	p.Counter("ops").Add(3)
	p.Counter("ops").Add(2)
	if got := p.CounterValue("ops"); got != 5 {
		t.Fatalf("counter value: got=%d want=5", got)
	}

	d := p.UpDownCounter("depth")
	d.Add(4)
	d.Add(-1)
	if got := p.UpDownValue("depth"); got != 3 {
		t.Fatalf("updown value: got=%d want=3", got)
	}

	// never-created instruments read as zero
	if got := p.CounterValue("missing"); got != 0 {
		t.Fatalf("missing counter: got=%d want=0", got)
	}
}

func TestInMemoryHistogram_Snapshot(t *testing.T) {
	p := NewInMemoryProvider()
	h := p.Histogram("latency", WithDescription("test"), WithUnit("seconds"))

	for _, v := range []float64{0.5, 1.5, 1.0} {
		h.Record(v)
	}

	s := p.HistogramSnapshot("latency")
	if s.Count != 3 {
		t.Fatalf("count: got=%d want=3", s.Count)
	}
	if s.Min != 0.5 || s.Max != 1.5 {
		t.Fatalf("min/max: got=(%v,%v) want=(0.5,1.5)", s.Min, s.Max)
	}
	if s.Sum != 3.0 || s.Mean != 1.0 {
		t.Fatalf("sum/mean: got=(%v,%v) want=(3,1)", s.Sum, s.Mean)
	}

	if empty := p.HistogramSnapshot("missing"); empty.Count != 0 || empty.Mean != 0 {
		t.Fatalf("missing histogram must snapshot to zero, got %+v", empty)
	}
}

func TestInMemoryProvider_ConcurrentUse(t *testing.T) {
	p := NewInMemoryProvider()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Counter("ops").Add(1)
				p.UpDownCounter("depth").Add(1)
				p.UpDownCounter("depth").Add(-1)
				p.Histogram("latency").Record(float64(j))
			}
		}()
	}
	wg.Wait()

	if got := p.CounterValue("ops"); got != 1600 {
		t.Fatalf("counter after concurrent adds: got=%d want=1600", got)
	}
	if got := p.UpDownValue("depth"); got != 0 {
		t.Fatalf("updown after balanced adds: got=%d want=0", got)
	}
	if got := p.HistogramSnapshot("latency").Count; got != 1600 {
		t.Fatalf("histogram count: got=%d want=1600", got)
	}
}

func TestNoopProvider_DoesNothing(t *testing.T) {
	p := NewNoopProvider()

	// must be callable without effect or panic
	p.Counter("ops").Add(1)
	p.UpDownCounter("depth").Add(-1)
	p.Histogram("latency").Record(0.1)
}
