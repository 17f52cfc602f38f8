package cmdpool

import (
	"log/slog"

	"github.com/ygrebnov/errorc"

	"github.com/sheverev/cmdpool/metrics"
)

// config holds Channel and Pool configuration.
type config struct {
	// Capacity bounds the number of pending values a Channel holds.
	// Zero (default) means unbounded. When the bound is reached, Submit
	// drops the value and counts it; it never blocks the producer.
	Capacity uint

	// Metrics provides instruments for channel and pool observability.
	// Default: a no-op provider.
	Metrics metrics.Provider

	// Logger receives diagnostics on abnormal teardown paths.
	// Default: slog.Default().
	Logger *slog.Logger
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Capacity: 0, // unbounded
		Metrics:  metrics.NewNoopProvider(),
		Logger:   nil, // resolved to slog.Default() at use
	}
}

func buildConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c *config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Option configures a Channel or a Pool. Options that do not apply to the
// component being constructed are recorded and ignored by it.
type Option func(*config) error

// WithCapacity bounds the channel's pending sequence to n values (must be > 0).
// A full channel drops newly submitted values rather than blocking the producer.
func WithCapacity(n uint) Option {
	return func(cfg *config) error {
		if n == 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithCapacity requires n > 0"))
		}
		cfg.Capacity = n
		return nil
	}
}

// WithMetrics sets the metrics provider used to build instruments.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithLogger sets the logger used for teardown diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.Logger = l
		return nil
	}
}
