package cmdpool

import (
	"log/slog"
	"os"
	"testing"

	"github.com/sheverev/cmdpool/metrics"
)

func TestNewChannel_InvalidOptions_ReturnsError(t *testing.T) {
	t.Parallel()

	ch, err := NewChannel[int](WithMetrics(nil))
	if err == nil {
		t.Fatalf("expected error from NewChannel with nil metrics provider, got nil (ch=%v)", ch)
	}
	if ch != nil {
		t.Fatalf("expected nil channel on error, got: %v", ch)
	}

	ch, err = NewChannel[int](WithLogger(nil))
	if err == nil {
		t.Fatalf("expected error from NewChannel with nil logger, got nil (ch=%v)", ch)
	}
	if ch != nil {
		t.Fatalf("expected nil channel on error, got: %v", ch)
	}
}

func TestNewChannel_ValidOptions_Succeeds(t *testing.T) {
	t.Parallel()

	ch, err := NewChannel[int](
		WithCapacity(16),
		WithMetrics(metrics.NewInMemoryProvider()),
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	)
	if err != nil {
		t.Fatalf("unexpected error from NewChannel with valid options: %v", err)
	}
	if ch == nil {
		t.Fatalf("expected non-nil channel instance")
	}
}

func TestNilOptionIsIgnored(t *testing.T) {
	t.Parallel()

	ch, err := NewChannel[int](nil, WithCapacity(4), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch == nil {
		t.Fatalf("expected non-nil channel instance")
	}
}
